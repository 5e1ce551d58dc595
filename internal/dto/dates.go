package dto

import (
	"fmt"
	"time"
)

// DateLayout is how plain dates are written in responses.
const DateLayout = "2006-01-02"

// ParseISODate accepts a full RFC 3339 timestamp or a plain YYYY-MM-DD date.
func ParseISODate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}
