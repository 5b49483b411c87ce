// Package parsing handles parsing of user-supplied strings (command lines, dates, paths).
package parsing

import (
	"fmt"
	"strings"
	"time"

	"subgrab/internal/domain/consts"

	"github.com/araddon/dateparse"
)

// ParseRunDate parses a free-form date (e.g. "2024-02-29", "Feb 29, 2024") in the local time zone.
func ParseRunDate(dateString string) (time.Time, error) {
	dateString = strings.TrimSpace(dateString)
	if dateString == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := dateparse.ParseLocal(dateString)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", dateString, err)
	}
	return t, nil
}

// DateLabel formats t as YYYYMMDD.
func DateLabel(t time.Time) string {
	return t.Format(consts.DateLabelFormat)
}
