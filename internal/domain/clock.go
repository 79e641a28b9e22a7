package domain

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const microsPerDay = int64(24 * time.Hour / time.Microsecond)

// ClockTime is a time of day with no calendar date, kept at microsecond
// precision to match the PostgreSQL TIME type.
type ClockTime struct {
	micros int64
}

// NewClockTime builds a ClockTime from its components.
// It panics on out-of-range components; callers validate input first.
func NewClockTime(hour, minute, second int) ClockTime {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		panic(fmt.Sprintf("domain: invalid clock time %02d:%02d:%02d", hour, minute, second))
	}
	d := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second
	return ClockTime{micros: int64(d / time.Microsecond)}
}

// ClockOf returns the clock component of t in t's own location.
func ClockOf(t time.Time) ClockTime {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return ClockTime{micros: int64(t.Sub(midnight) / time.Microsecond)}
}

func (c ClockTime) Hour() int   { return int(c.micros / int64(time.Hour/time.Microsecond)) }
func (c ClockTime) Minute() int { return int(c.micros/int64(time.Minute/time.Microsecond)) % 60 }
func (c ClockTime) Second() int { return int(c.micros/int64(time.Second/time.Microsecond)) % 60 }

// String formats as HH:MM:SS, with a fractional part only when non-zero.
func (c ClockTime) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
	if frac := c.micros % int64(time.Second/time.Microsecond); frac != 0 {
		s += fmt.Sprintf(".%06d", frac)
	}
	return s
}

// On anchors the clock time to the calendar date of day.
func (c ClockTime) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, day.Location()).Add(time.Duration(c.micros) * time.Microsecond)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// ScanTime implements pgtype.TimeScanner.
func (c *ClockTime) ScanTime(v pgtype.Time) error {
	if !v.Valid {
		return fmt.Errorf("cannot scan NULL into ClockTime")
	}
	if v.Microseconds < 0 || v.Microseconds >= microsPerDay {
		return fmt.Errorf("time %d us out of range", v.Microseconds)
	}
	c.micros = v.Microseconds
	return nil
}

// TimeValue implements pgtype.TimeValuer.
func (c ClockTime) TimeValue() (pgtype.Time, error) {
	return pgtype.Time{Microseconds: c.micros, Valid: true}, nil
}
