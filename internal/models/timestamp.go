package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// TimestampLayout is how timestamps are persisted.
	TimestampLayout = "2006-01-02 15:04:05"
	// InputLayout is what users type for departure and assignment times.
	InputLayout = "2006-01-02 15:04"
	// DateLayout is what users type when searching flights by day.
	DateLayout = "2006-01-02"
)

var ErrInvalidTimestamp = errors.New("invalid datetime format")

// layouts the drivers may hand back for DATETIME/TIMESTAMP columns
var scanLayouts = []string{
	TimestampLayout,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	InputLayout,
	DateLayout,
}

// Timestamp is a naive wall-clock time with second precision. It is stored as
// "YYYY-MM-DD HH:MM:SS" so that text comparison in SQLite orders correctly.
type Timestamp struct {
	time.Time
}

// NewTimestamp keeps the wall clock reading of t and drops its zone.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

// ParseTimestamp parses user input in InputLayout.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(InputLayout, strings.TrimSpace(s))
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: %q, use 'YYYY-MM-DD HH:MM'", ErrInvalidTimestamp, s)
	}
	return NewTimestamp(t), nil
}

// ParseDate parses a calendar day in DateLayout.
func ParseDate(s string) (Timestamp, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: %q, use 'YYYY-MM-DD'", ErrInvalidTimestamp, s)
	}
	return NewTimestamp(t), nil
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

func (t Timestamp) Equal(o Timestamp) bool {
	return t.Time.Equal(o.Time)
}

// StartOfDay returns midnight of the same day.
func (t Timestamp) StartOfDay() Timestamp {
	return Timestamp{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// NextDay returns midnight of the following day.
func (t Timestamp) NextDay() Timestamp {
	return Timestamp{t.StartOfDay().AddDate(0, 0, 1)}
}

func (t Timestamp) Value() (driver.Value, error) {
	return t.Format(TimestampLayout), nil
}

func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t = Timestamp{}
		return nil
	case time.Time:
		*t = NewTimestamp(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
}

func (t *Timestamp) scanString(s string) error {
	for _, layout := range scanLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = NewTimestamp(parsed)
			return nil
		}
	}
	return fmt.Errorf("cannot parse stored timestamp %q", s)
}
