package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	activitydomain "github.com/strideworks/paceline/internal/activity/domain"
)

func (s *Server) ListActivities(c *gin.Context) {
	var query struct {
		Type      string `form:"type"`
		StartDate string `form:"startDate"`
		EndDate   string `form:"endDate"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	start, err := parseOptionalDate(query.StartDate)
	if err != nil {
		AbortWithError(c, newValidationError("startDate", "invalid_date", "startDate must be YYYY-MM-DD"))
		return
	}
	end, err := parseOptionalDate(query.EndDate)
	if err != nil {
		AbortWithError(c, newValidationError("endDate", "invalid_date", "endDate must be YYYY-MM-DD"))
		return
	}
	if end != nil {
		// The filter bound is an inclusive calendar day.
		eod := end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		end = &eod
	}

	activities, err := s.activitySvc.GetAll(c.Request.Context(), activitydomain.ListActivityFilter{
		Type:      strings.TrimSpace(query.Type),
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if activities == nil {
		activities = []activitydomain.Activity{}
	}

	c.JSON(http.StatusOK, gin.H{"data": activities})
}

func (s *Server) CountActivities(c *gin.Context) {
	count, err := s.activitySvc.Count(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (s *Server) GetActivity(c *gin.Context) {
	id, err := parseSnowflakeID(c.Param("id"))
	if err != nil {
		AbortWithError(c, activitydomain.ErrInvalidID)
		return
	}

	activity, err := s.activitySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": activity})
}

func (s *Server) DeleteActivity(c *gin.Context) {
	id, err := parseSnowflakeID(c.Param("id"))
	if err != nil {
		AbortWithError(c, activitydomain.ErrInvalidID)
		return
	}

	if err := s.activitySvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
