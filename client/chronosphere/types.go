package chronosphere

import "time"

// TimeRange is a normalized start/end pair in the seconds-truncated
// UTC format the logs API expects (2006-01-02T15:04:05.000Z).
type TimeRange struct {
	Start string
	End   string
}

// QueryHandle identifies an in-progress asynchronous log search.
// It is single-use, bounded to one polling session.
type QueryHandle struct {
	QueryID      string
	PollInterval time.Duration
}

// LogQueryRequest carries one log search.
type LogQueryRequest struct {
	// Query is the log filter expression.
	Query string
	// Range is the resolved happened-after/happened-before window.
	Range TimeRange
	// PageToken continues a previous listing when non-empty.
	PageToken string
}

// Metric query type discriminators.
const (
	MetricQueryHTTP = "http"
	MetricQueryRPC  = "rpc"
)

// MetricQueryRequest carries the filter values spliced into one of the
// fixed aggregation expressions.
type MetricQueryRequest struct {
	Type        string
	Namespace   string
	Environment string
	Mode        string
	Service     string
	Method      string
	// Interval is the PromQL range duration, e.g. "5m", "1h", "7d".
	Interval string
}

// Result is a remote response body passed through unmodified, so unknown
// fields survive the round trip back to the caller.
type Result map[string]any

// IsFinished reports whether a poll body marks the query complete.
func (r Result) IsFinished() bool {
	finished, _ := r["is_finished"].(bool)
	return finished
}

// LogCount returns the number of log records in a poll body.
func (r Result) LogCount() int {
	logs, _ := r["logs"].([]any)
	return len(logs)
}

// PageToken returns the cursor for the next page, if the body carries one.
func (r Result) PageToken() string {
	token, _ := r["next_page_token"].(string)
	return token
}

type startLogQueryResponse struct {
	QueryID           string  `json:"query_id"`
	RefreshIntervalMs float64 `json:"refresh_interval_ms"`
}
