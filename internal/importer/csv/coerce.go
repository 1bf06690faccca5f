package csv

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date layouts tried in order: the Garmin export default, then ISO-8601
// date and datetime forms.
var dateTimeLayouts = []string{
	"01/02/2006",
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// ToDecimal parses a decimal value, returning nil on blank or unparsable
// input. No range clamping is applied.
func ToDecimal(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

// ToInteger parses an integer value, returning nil on blank or unparsable
// input.
func ToInteger(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &parsed
}

// ToDuration parses a raw numeric token as whole seconds. HH:MM:SS forms are
// not understood; such values coerce to nil.
func ToDuration(raw string) *int64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	parsed, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

// ToDateTime parses the activity date. Unlike the other coercers it returns
// an error when every layout fails: the date anchors range queries and trend
// bucketing, so a row without one cannot be kept.
func ToDateTime(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date value")
	}
	for _, layout := range dateTimeLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", trimmed)
}
