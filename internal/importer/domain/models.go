package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Status of an import run. Partial success (some rows rejected, the file
// itself processed) still reports StatusSuccess; callers read FailureCount
// for row-level rejections.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// ImportRecord is the audit trail of one file-upload event. It owns the
// activities it produced: deleting a record cascades to them.
type ImportRecord struct {
	ID            snowflake.ID   `gorm:"primaryKey" json:"id"`
	FileName      string         `gorm:"column:file_name;not null" json:"fileName"`
	FileSize      int64          `gorm:"column:file_size;not null" json:"fileSize"`
	ImportTime    time.Time      `gorm:"column:import_time;not null;index" json:"importTime"`
	Status        Status         `gorm:"column:status;not null" json:"status"`
	ErrorMessage  *string        `gorm:"column:error_message" json:"errorMessage,omitempty"`
	ActivityCount int            `gorm:"column:activity_count;not null;default:0" json:"activityCount"`
	RowErrors     datatypes.JSON `gorm:"column:row_errors" json:"rowErrors,omitempty"`
}

func (ImportRecord) TableName() string {
	return "import_records"
}

// ImportSummary is the caller-facing outcome of one import call.
type ImportSummary struct {
	Success        bool         `json:"success"`
	Message        string       `json:"message"`
	SuccessCount   int          `json:"successCount"`
	FailureCount   int          `json:"failureCount"`
	ImportRecordID snowflake.ID `json:"importRecordId"`
	Errors         []string     `json:"errors,omitempty"`
}
