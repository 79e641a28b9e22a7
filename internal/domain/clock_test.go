package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func TestClockTime_Components(t *testing.T) {
	t.Parallel()

	c := NewClockTime(9, 30, 5)
	if c.Hour() != 9 || c.Minute() != 30 || c.Second() != 5 {
		t.Fatalf("components = %d:%d:%d, want 9:30:5", c.Hour(), c.Minute(), c.Second())
	}
	if got := c.String(); got != "09:30:05" {
		t.Errorf("String() = %q, want 09:30:05", got)
	}
}

func TestClockOf_IgnoresDate(t *testing.T) {
	t.Parallel()

	a := ClockOf(time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC))
	b := ClockOf(time.Date(1999, 12, 31, 9, 30, 0, 0, time.UTC))
	if a != b {
		t.Errorf("ClockOf differs across dates: %s vs %s", a, b)
	}
	if a != NewClockTime(9, 30, 0) {
		t.Errorf("ClockOf = %s, want 09:30:00", a)
	}
}

func TestClockTime_On(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	got := NewClockTime(7, 15, 0).On(day)
	want := time.Date(2024, 3, 10, 7, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("On() = %v, want %v", got, want)
	}
}

func TestClockTime_MarshalJSON(t *testing.T) {
	t.Parallel()

	c := NewClockTime(23, 5, 0)
	raw, err := json.Marshal(struct {
		At *ClockTime `json:"at"`
	}{At: &c})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"at":"23:05:00"}` {
		t.Errorf("json = %s", raw)
	}
}

func TestClockTime_PgTypeRoundTrip(t *testing.T) {
	t.Parallel()

	src := NewClockTime(12, 0, 59)
	v, err := src.TimeValue()
	if err != nil {
		t.Fatalf("TimeValue: %v", err)
	}

	var dst ClockTime
	if err := dst.ScanTime(v); err != nil {
		t.Fatalf("ScanTime: %v", err)
	}
	if dst != src {
		t.Errorf("round trip = %s, want %s", dst, src)
	}

	if err := dst.ScanTime(pgtype.Time{}); err == nil {
		t.Error("expected error scanning NULL")
	}
}

func TestNewClockTime_PanicsOutOfRange(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for hour 24")
		}
	}()
	NewClockTime(24, 0, 0)
}
