package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	monthDateLayout = "2006-01"
)

// Date is a calendar day with no time-of-day component.
type Date struct {
	time.Time
}

// NewDate builds a Date in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MonthYear formats the date as MM/YYYY.
func (d Date) MonthYear() string {
	return d.Format("01/2006")
}

// MarshalJSON emits YYYY-MM-DD, or null for the zero date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON accepts YYYY-MM-DD and YYYY-MM (first of the month).
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	for _, layout := range []string{dateLayout, monthDateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			*d = Date{Time: t}
			return nil
		}
	}
	return fmt.Errorf("date %q must be YYYY-MM-DD or YYYY-MM", raw)
}
