package server

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

const dateOnlyLayout = "2006-01-02"

func parseRequiredDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, errors.New("missing_date")
	}
	parsed, err := time.Parse(dateOnlyLayout, trimmed)
	if err != nil {
		return time.Time{}, errors.New("invalid_date")
	}
	return parsed, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateOnlyLayout, trimmed)
	if err != nil {
		return nil, errors.New("invalid_date")
	}
	return &parsed, nil
}

func parseSnowflakeID(value string) (snowflake.ID, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid_snowflake_id")
	}
	return parsed, nil
}

// parseClampedInt parses value and falls back to def when it is absent,
// malformed or outside (0, max].
func parseClampedInt(value string, def, max int) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil || parsed <= 0 || parsed > max {
		return def
	}
	return parsed
}
