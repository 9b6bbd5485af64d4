package chronosphere

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 5, 8, 18, 20, 35, 123456789, time.UTC)

func TestParseSimpleTimeRange(t *testing.T) {
	cases := []struct {
		token string
		want  time.Duration
	}{
		{"30m", 30 * time.Minute},
		{"1h", time.Hour},
		{"24h", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"2w", 2 * 7 * 24 * time.Hour},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			tr, err := ParseSimpleTimeRange(tc.token, testNow)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(tr.Start, ".000Z"))
			assert.True(t, strings.HasSuffix(tr.End, ".000Z"))
			start, err := time.Parse(timeLayout, tr.Start)
			require.NoError(t, err)
			end, err := time.Parse(timeLayout, tr.End)
			require.NoError(t, err)
			assert.Equal(t, tc.want, end.Sub(start))
			assert.Equal(t, "2025-05-08T18:20:35.000Z", tr.End)
		})
	}
}

func TestParseSimpleTimeRangeTrimsSpace(t *testing.T) {
	tr, err := ParseSimpleTimeRange(" 1h ", testNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-08T17:20:35.000Z", tr.Start)
}

func TestParseSimpleTimeRangeRejectsYears(t *testing.T) {
	// "1y" matches the token pattern but has no defined duration.
	_, err := ParseSimpleTimeRange("1y", testNow)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), `unsupported time unit "y"`)
}

func TestParseSimpleTimeRangeRejectsMalformed(t *testing.T) {
	for _, token := range []string{"abc", "10x", "", "h1", "1.5h", "-1h"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseSimpleTimeRange(token, testNow)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Error(), "invalid simple_time_range format")
		})
	}
}

func TestResolveTimeRangeExplicit(t *testing.T) {
	tr, err := ResolveTimeRange("", "2025-05-08T18:08:35.123456Z", "2025-05-08T18:20:35.999999Z", testNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-08T18:08:35.000Z", tr.Start)
	assert.Equal(t, "2025-05-08T18:20:35.000Z", tr.End)
}

func TestResolveTimeRangeSimpleOverridesExplicit(t *testing.T) {
	tr, err := ResolveTimeRange("1h", "2020-01-01T00:00:00.000000Z", "2020-01-02T00:00:00.000000Z", testNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-08T17:20:35.000Z", tr.Start)
	assert.Equal(t, "2025-05-08T18:20:35.000Z", tr.End)
}

func TestResolveTimeRangeMalformedTimestamp(t *testing.T) {
	var verr *ValidationError

	_, err := ResolveTimeRange("", "08/05/2025 18:08", "2025-05-08T18:20:35.000000Z", testNow)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "malformed timestamp")

	_, err = ResolveTimeRange("", "2025-05-08T18:08:35.000000Z", "not-a-time", testNow)
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "malformed timestamp")
}

func TestFormatTimestampZeroesSubseconds(t *testing.T) {
	got := FormatTimestamp(time.Date(2025, 5, 8, 18, 8, 35, 987654321, time.UTC))
	assert.Equal(t, "2025-05-08T18:08:35.000Z", got)
}
