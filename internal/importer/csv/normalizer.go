package csv

import (
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

// Field aliases, ordered: English export header first, Chinese second.
// Heart-rate columns appear under two English spellings across export
// generations.
var (
	aliasType     = []string{"Activity Type", "活动类型"}
	aliasDate     = []string{"Date", "日期"}
	aliasName     = []string{"Activity Name", "活动名称"}
	aliasDistance = []string{"Distance", "距离"}
	aliasDuration = []string{"Duration", "持续时间"}
	aliasCalories = []string{"Calories", "卡路里"}
	aliasAvgHR    = []string{"Avg HR", "Avg Heart Rate", "平均心率"}
	aliasMaxHR    = []string{"Max HR", "Max Heart Rate", "最大心率"}
	aliasPace     = []string{"Avg Pace", "平均配速"}
	aliasSourceID = []string{"Activity ID", "活动ID"}
)

// KeyHeaders are the columns at least one of which must be present for a
// file to be treated as an activity export.
var KeyHeaders = append(append(append([]string{}, aliasType...), aliasDate...), aliasDistance...)

// NormalizedActivity is one successfully normalized row. Optional fields are
// nil when the source cell was blank or unparsable; distance has already
// been converted from kilometers to meters.
type NormalizedActivity struct {
	Name             *string
	Type             string
	StartTime        time.Time
	DurationSeconds  *int64
	DistanceMeters   *float64
	Calories         *int
	AverageHeartRate *int
	MaxHeartRate     *int
	AveragePace      *float64
	SourceActivityID *string
}

// Result carries the outcome of one normalization pass. Every data row ends
// up in exactly one of Rows or RowErrors.
type Result struct {
	Headers   []string
	Rows      []NormalizedActivity
	RowErrors []string
}

// HasKeyHeader reports whether the parsed header row contained any of the
// recognized type/date/distance columns.
func (r Result) HasKeyHeader() bool {
	for _, header := range r.Headers {
		for _, key := range KeyHeaders {
			if strings.EqualFold(header, key) {
				return true
			}
		}
	}
	return false
}

// RowCount is the number of data rows seen, successful or not.
func (r Result) RowCount() int {
	return len(r.Rows) + len(r.RowErrors)
}

// Normalizer converts a delimited byte stream into canonical activity rows.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize reads a comma-delimited stream with a mandatory header row and
// normalizes every data record. Row-level problems are collected as error
// strings and never abort the batch; only an unreadable stream returns a
// non-nil error.
func (n *Normalizer) Normalize(r io.Reader) (Result, error) {
	reader := stdcsv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return Result{}, fmt.Errorf("missing header row")
	}
	if err != nil {
		return Result{}, fmt.Errorf("read header: %w", err)
	}

	headers := make([]string, len(header))
	for i, cell := range header {
		headers[i] = strings.TrimSpace(cell)
	}

	result := Result{Headers: headers}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			// Malformed records (bare quotes, etc.) are row-level failures.
			result.RowErrors = append(result.RowErrors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}

		row := make(Row, len(headers))
		for i, cell := range record {
			if i >= len(headers) {
				break
			}
			row[strings.ToLower(headers[i])] = strings.TrimSpace(cell)
		}

		normalized, err := normalizeRow(row)
		if err != nil {
			result.RowErrors = append(result.RowErrors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		result.Rows = append(result.Rows, *normalized)
	}

	return result, nil
}

func normalizeRow(row Row) (*NormalizedActivity, error) {
	activityType, _ := Resolve(row, aliasType...)
	if strings.TrimSpace(activityType) == "" {
		return nil, fmt.Errorf("missing activity type")
	}

	rawDate, ok := Resolve(row, aliasDate...)
	if !ok {
		return nil, fmt.Errorf("missing date")
	}
	startTime, err := ToDateTime(rawDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	normalized := &NormalizedActivity{
		Type:      strings.TrimSpace(activityType),
		StartTime: startTime,
	}

	if name, ok := Resolve(row, aliasName...); ok && strings.TrimSpace(name) != "" {
		trimmed := strings.TrimSpace(name)
		normalized.Name = &trimmed
	}
	if sourceID, ok := Resolve(row, aliasSourceID...); ok && strings.TrimSpace(sourceID) != "" {
		trimmed := strings.TrimSpace(sourceID)
		normalized.SourceActivityID = &trimmed
	}

	// Source distance is kilometers; store meters. The conversion happens
	// here exactly once and is never re-applied downstream.
	if raw, ok := Resolve(row, aliasDistance...); ok {
		if km := ToDecimal(raw); km != nil {
			meters := *km * 1000
			normalized.DistanceMeters = &meters
		}
	}
	if raw, ok := Resolve(row, aliasDuration...); ok {
		normalized.DurationSeconds = ToDuration(raw)
	}
	if raw, ok := Resolve(row, aliasCalories...); ok {
		normalized.Calories = ToInteger(raw)
	}
	if raw, ok := Resolve(row, aliasAvgHR...); ok {
		normalized.AverageHeartRate = ToInteger(raw)
	}
	if raw, ok := Resolve(row, aliasMaxHR...); ok {
		normalized.MaxHeartRate = ToInteger(raw)
	}
	if raw, ok := Resolve(row, aliasPace...); ok {
		normalized.AveragePace = ToDecimal(raw)
	}

	return normalized, nil
}
