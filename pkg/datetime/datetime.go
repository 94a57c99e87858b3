// Package datetime provides standardized date and month-key handling across the
// application. All dates are stored and transmitted in UTC using ISO 8601 format.
package datetime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Standard formats used throughout the application.
const (
	// DateFormat is the standard date-only format (YYYY-MM-DD).
	DateFormat = "2006-01-02"

	// MonthFormat is the budgeting period format (YYYY-MM).
	MonthFormat = "2006-01"

	// DateTimeFormat is the standard datetime format (ISO 8601 / RFC3339).
	DateTimeFormat = time.RFC3339
)

// Date represents a date-only value (no time component).
// It serializes to/from JSON as "YYYY-MM-DD" format.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns today's date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses a date string in YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateFormat))
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), "\"")
	if s == "" || s == "null" {
		return nil
	}

	// Try date-only format first
	t, err := time.Parse(DateFormat, s)
	if err == nil {
		d.Time = t
		return nil
	}

	// Fall back to RFC3339 (extract date portion)
	t, err = time.Parse(time.RFC3339, s)
	if err == nil {
		d.Time = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	}

	return err
}

// String returns the date in YYYY-MM-DD format.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateFormat)
}

// Value implements driver.Valuer, storing the date as "YYYY-MM-DD" text.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Format(DateFormat), nil
}

// Scan implements sql.Scanner for TEXT and time-typed columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case string:
		t, err := time.Parse(DateFormat, v)
		if err != nil {
			return fmt.Errorf("scan date %q: %w", v, err)
		}
		d.Time = t
		return nil
	case []byte:
		return d.Scan(string(v))
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// MonthKey returns the budgeting period the date belongs to.
func (d Date) MonthKey() MonthKey {
	return MonthKey(d.Format(MonthFormat))
}

// MonthKey identifies a budgeting period as a "YYYY-MM" string.
// It is the unit of closure and archival, and the sole partitioning key
// for expenses.
type MonthKey string

// CurrentMonth returns the real-world current month in UTC.
func CurrentMonth() MonthKey {
	return MonthKey(time.Now().UTC().Format(MonthFormat))
}

// ParseMonth validates a "YYYY-MM" string and returns it as a MonthKey.
func ParseMonth(s string) (MonthKey, error) {
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthKey(t.Format(MonthFormat)), nil
}

// MonthOfDate derives the month key from a "YYYY-MM-DD" date string.
func MonthOfDate(date string) (MonthKey, error) {
	d, err := ParseDate(date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d.MonthKey(), nil
}

// IsValid reports whether the key is a well-formed "YYYY-MM" string.
func (m MonthKey) IsValid() bool {
	_, err := time.Parse(MonthFormat, string(m))
	return err == nil
}

// Next returns the following calendar month. December rolls the year over.
func (m MonthKey) Next() MonthKey {
	t, err := time.Parse(MonthFormat, string(m))
	if err != nil {
		return m
	}
	return MonthKey(t.AddDate(0, 1, 0).Format(MonthFormat))
}

// Before reports whether m is an earlier period than other.
// Well-formed keys compare correctly as strings.
func (m MonthKey) Before(other MonthKey) bool {
	return string(m) < string(other)
}

// After reports whether m is a later period than other.
func (m MonthKey) After(other MonthKey) bool {
	return string(m) > string(other)
}

// Start returns the first instant of the month in UTC.
func (m MonthKey) Start() time.Time {
	t, _ := time.Parse(MonthFormat, string(m))
	return t
}

// String returns the key as a plain string.
func (m MonthKey) String() string {
	return string(m)
}

// DateTime represents a datetime value with timezone.
// It serializes to/from JSON as ISO 8601 / RFC3339 format.
type DateTime struct {
	time.Time
}

// Now returns the current datetime in UTC.
func Now() DateTime {
	return DateTime{time.Now().UTC()}
}

// ParseDateTime parses a datetime string in RFC3339 format.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{t}, nil
}

// MarshalJSON implements json.Marshaler.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	if dt.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(dt.UTC().Format(time.RFC3339))
}

// UnmarshalJSON implements json.Unmarshaler.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), "\"")
	if s == "" || s == "null" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Try date-only format as fallback
		t, err = time.Parse(DateFormat, s)
		if err != nil {
			return err
		}
	}
	dt.Time = t.UTC()
	return nil
}

// String returns the datetime in RFC3339 format.
func (dt DateTime) String() string {
	if dt.IsZero() {
		return ""
	}
	return dt.UTC().Format(time.RFC3339)
}

// ToDate extracts the date portion from a DateTime.
func (dt DateTime) ToDate() Date {
	return NewDate(dt.Year(), dt.Month(), dt.Day())
}
