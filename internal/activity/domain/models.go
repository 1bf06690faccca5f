package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Activity is the canonical record produced by CSV normalization. Optional
// metrics stay nil when the source row omitted them; the statistics engine
// skips nil fields rather than treating them as zero.
type Activity struct {
	ID               snowflake.ID `gorm:"primaryKey" json:"id"`
	Name             *string      `gorm:"column:activity_name" json:"activityName,omitempty"`
	Type             string       `gorm:"column:activity_type;not null;index" json:"activityType"`
	StartTime        time.Time    `gorm:"column:start_time;not null;index" json:"startTime"`
	EndTime          *time.Time   `gorm:"column:end_time" json:"endTime,omitempty"`
	DurationSeconds  *int64       `gorm:"column:duration_seconds" json:"duration,omitempty"`
	DistanceMeters   *float64     `gorm:"column:distance_meters" json:"distance,omitempty"`
	Calories         *int         `gorm:"column:calories" json:"calories,omitempty"`
	AverageHeartRate *int         `gorm:"column:average_heart_rate" json:"averageHeartRate,omitempty"`
	MaxHeartRate     *int         `gorm:"column:max_heart_rate" json:"maxHeartRate,omitempty"`
	AveragePace      *float64     `gorm:"column:average_pace" json:"averagePace,omitempty"`
	SourceActivityID *string      `gorm:"column:source_activity_id" json:"sourceActivityId,omitempty"`
	ImportDate       time.Time    `gorm:"column:import_date;not null" json:"importDate"`
	ImportRecordID   snowflake.ID `gorm:"column:import_record_id;not null;index" json:"importRecordId"`
}

func (Activity) TableName() string {
	return "activities"
}
