package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	importerdomain "github.com/strideworks/paceline/internal/importer/domain"
)

// UploadImport accepts one multipart CSV file under the "file" field and
// runs it through the import pipeline.
func (s *Server) UploadImport(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		AbortWithError(c, newValidationError("file", "missing_file", "multipart field \"file\" is required"))
		return
	}
	if header.Size > s.cfg.MaxUploadBytes {
		AbortWithError(c, newValidationError("file", "file_too_large", "uploaded file exceeds the size limit"))
		return
	}

	file, err := header.Open()
	if err != nil {
		AbortWithError(c, importerdomain.ErrUnreadableFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		AbortWithError(c, importerdomain.ErrUnreadableFile)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		AbortWithError(c, newValidationError("file", "file_too_large", "uploaded file exceeds the size limit"))
		return
	}

	req := importerdomain.ImportRequest{
		FileName: header.Filename,
		FileSize: int64(len(data)),
		Data:     data,
	}

	if err := s.importSvc.Validate(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	summary, err := s.importSvc.Import(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if !summary.Success {
		// Pipeline failures still answer with the summary so the caller sees
		// the persisted record ID.
		c.JSON(http.StatusInternalServerError, summary)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (s *Server) ListImportRecords(c *gin.Context) {
	limit := parseClampedInt(c.Query("limit"), 10, 100)

	records, err := s.importSvc.RecentImports(c.Request.Context(), limit)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if records == nil {
		records = []importerdomain.ImportRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}

// DeleteImportRecord removes one import record and every activity it
// produced.
func (s *Server) DeleteImportRecord(c *gin.Context) {
	id, err := parseSnowflakeID(c.Param("id"))
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid import record id"))
		return
	}

	if err := s.importSvc.DeleteImport(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
