package chronosphere

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// timeLayout is the canonical timestamp format the logs API expects.
	// The fractional part is always zeroed.
	timeLayout = "2006-01-02T15:04:05.000Z"
	// timeParseLayout accepts explicit caller timestamps with up to
	// microsecond precision.
	timeParseLayout = "2006-01-02T15:04:05.999999Z"
)

var simpleRangePattern = regexp.MustCompile(`^(\d+)([mhdwy])$`)

// Durations for the supported simple-range units. "y" matches the token
// pattern but has no defined duration and is rejected explicitly.
var unitDurations = map[string]time.Duration{
	"m": time.Minute,
	"h": time.Hour,
	"d": 24 * time.Hour,
	"w": 7 * 24 * time.Hour,
}

// ParseSimpleTimeRange resolves a compact duration token such as "30m" or
// "7d" into a start/end pair ending at now.
func ParseSimpleTimeRange(token string, now time.Time) (TimeRange, error) {
	m := simpleRangePattern.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return TimeRange{}, &ValidationError{Msg: fmt.Sprintf("invalid simple_time_range format %q: use formats like 30m, 1h, 7d, 2w", token)}
	}
	value, err := strconv.Atoi(m[1])
	if err != nil {
		return TimeRange{}, &ValidationError{Msg: fmt.Sprintf("invalid simple_time_range value %q: %v", m[1], err)}
	}
	unit, ok := unitDurations[m[2]]
	if !ok {
		return TimeRange{}, &ValidationError{Msg: fmt.Sprintf("unsupported time unit %q in simple_time_range", m[2])}
	}
	start := now.Add(-time.Duration(value) * unit)
	return TimeRange{Start: FormatTimestamp(start), End: FormatTimestamp(now)}, nil
}

// ResolveTimeRange picks the effective query window. A non-empty simple
// token always wins over the explicit pair; otherwise both explicit
// timestamps are normalized to the canonical format.
func ResolveTimeRange(simple, start, end string, now time.Time) (TimeRange, error) {
	if strings.TrimSpace(simple) != "" {
		return ParseSimpleTimeRange(simple, now)
	}
	s, err := normalizeTimestamp(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := normalizeTimestamp(end)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: s, End: e}, nil
}

// FormatTimestamp renders t in the canonical seconds-truncated UTC format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(timeLayout)
}

func normalizeTimestamp(s string) (string, error) {
	t, err := time.Parse(timeParseLayout, s)
	if err != nil {
		return "", &ValidationError{Msg: fmt.Sprintf("malformed timestamp %q: expected format 2025-05-08T18:08:35.000000Z", s)}
	}
	return FormatTimestamp(t), nil
}
