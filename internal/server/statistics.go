package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Statistics endpoints never surface storage failures as HTTP errors: the
// aggregation service folds them into the result object, so every handler
// below answers 200 with Success reporting the outcome.

func (s *Server) OverallStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, s.statsSvc.Overall(c.Request.Context()))
}

func (s *Server) DateRangeStatistics(c *gin.Context) {
	start, err := parseRequiredDate(c.Query("startDate"))
	if err != nil {
		AbortWithError(c, newValidationError("startDate", "invalid_date", "startDate must be YYYY-MM-DD"))
		return
	}
	end, err := parseRequiredDate(c.Query("endDate"))
	if err != nil {
		AbortWithError(c, newValidationError("endDate", "invalid_date", "endDate must be YYYY-MM-DD"))
		return
	}
	if end.Before(start) {
		AbortWithError(c, newValidationError("endDate", "invalid_range", "endDate must not precede startDate"))
		return
	}

	c.JSON(http.StatusOK, s.statsSvc.DateRange(c.Request.Context(), start, end))
}

func (s *Server) ByTypeStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, s.statsSvc.ByType(c.Request.Context()))
}

func (s *Server) RecentActivities(c *gin.Context) {
	limit := parseClampedInt(c.Query("limit"), 10, 100)
	c.JSON(http.StatusOK, s.statsSvc.Recent(c.Request.Context(), limit))
}

func (s *Server) MonthlyTrend(c *gin.Context) {
	months := parseClampedInt(c.Query("months"), 6, 24)
	c.JSON(http.StatusOK, s.statsSvc.MonthlyTrend(c.Request.Context(), months))
}

func (s *Server) HeartRateZones(c *gin.Context) {
	c.JSON(http.StatusOK, s.statsSvc.HeartRateZones(c.Request.Context()))
}

func (s *Server) PaceZones(c *gin.Context) {
	c.JSON(http.StatusOK, s.statsSvc.PaceZones(c.Request.Context()))
}
