package coerce

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/healthtrack-backend/internal/domain"
)

// clockPattern matches H:MM, HH:MM, H:MM:SS and HH:MM:SS.
var clockPattern = regexp.MustCompile(`^\d{1,2}(:\d{2}){1,2}$`)

// clockReference is the date bare clock strings are anchored to. Only the
// clock component is ever stored.
var clockReference = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

var errNotTimeOfDay = errors.New("must be a time of day (HH:MM[:SS]) or a timestamp")

func timeOfDayRule(raw json.RawMessage) (any, error) {
	s, ok := stringValue(raw)
	if !ok {
		return nil, errNotTimeOfDay
	}
	s = strings.TrimSpace(s)

	if clockPattern.MatchString(s) {
		return parseClock(s)
	}

	t, ok := parseTimestamp(s)
	if !ok {
		return nil, errNotTimeOfDay
	}
	return domain.ClockOf(t), nil
}

func parseClock(s string) (domain.ClockTime, error) {
	parts := strings.Split(s, ":")
	for len(parts) < 3 {
		parts = append(parts, "00")
	}

	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	sec, _ := strconv.Atoi(parts[2])
	if h > 23 || m > 59 || sec > 59 {
		return domain.ClockTime{}, errors.New("time of day out of range")
	}

	anchored := time.Date(clockReference.Year(), clockReference.Month(), clockReference.Day(),
		h, m, sec, 0, time.UTC)
	return domain.ClockOf(anchored), nil
}
