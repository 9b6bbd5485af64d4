package chronosphere

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	rq "github.com/carlmjohnson/requests"
)

// Logs API endpoints. The colon-suffixed names are part of the external
// contract and must match exactly. The get-range-query pair is the older
// naming, still served by some tenants.
const (
	logsStartEndpoint       = "api/unstable/data/logs:list-start"
	logsPollEndpoint        = "api/unstable/data/logs:list-poll"
	legacyLogsStartEndpoint = "api/unstable/data/logs:get-range-query-start"
	legacyLogsPollEndpoint  = "api/unstable/data/logs:get-range-query-poll"
	metricsQueryEndpoint    = "data/metrics/api/v1/query"
)

const (
	// maxPollAttempts bounds the logs poll loop. The poll interval itself is
	// server-dictated, so this is the only client-side limit on total wait.
	maxPollAttempts = 10
	// defaultPollInterval applies when the start response carries no
	// refresh_interval_ms.
	defaultPollInterval = time.Second
)

// Client talks to one Chronosphere tenant with a bearer token.
type Client struct {
	baseURL   string
	token     string
	legacyAPI bool

	// sleep waits between poll attempts. Tests replace it to run the poll
	// loop without wall-clock delay.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient validates the tenant URL and token up front, so a missing
// credential fails before any network call is attempted.
func NewClient(baseURL, token string, legacyAPI bool) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrMissingBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("chronosphere: invalid base URL: %w", err)
	}
	c := new(Client)
	c.baseURL, _ = strings.CutSuffix(baseURL, "/")
	c.token = token
	c.legacyAPI = legacyAPI
	c.sleep = sleepContext
	return c, nil
}

// QueryLogs runs the full asynchronous exchange: submit the search, then
// poll at the server-suggested interval until the service reports
// completion. The first body with is_finished=true is returned verbatim,
// next-page token included. Exhausting the attempt ceiling is ErrPollTimeout.
func (c *Client) QueryLogs(ctx context.Context, req *LogQueryRequest) (Result, error) {
	handle, err := c.StartLogQuery(ctx, req)
	if err != nil {
		return nil, err
	}
	for attempt := 1; attempt <= maxPollAttempts; attempt++ {
		res, err := c.PollLogQuery(ctx, handle.QueryID)
		if err != nil {
			return nil, err
		}
		slog.Info("polled logs query",
			"query_id", handle.QueryID,
			"attempt", attempt,
			"is_finished", res.IsFinished(),
			"logs", res.LogCount())
		if res.IsFinished() {
			return res, nil
		}
		if attempt == maxPollAttempts {
			break
		}
		if err := c.sleep(ctx, handle.PollInterval); err != nil {
			return nil, err
		}
	}
	return nil, ErrPollTimeout
}

// StartLogQuery submits a log search and returns the handle to poll on.
func (c *Client) StartLogQuery(ctx context.Context, req *LogQueryRequest) (*QueryHandle, error) {
	endpoint := logsStartEndpoint
	if c.legacyAPI {
		endpoint = legacyLogsStartEndpoint
	}
	var res startLogQueryResponse
	var errBody Result
	b := c.request(endpoint).
		Param("log_filter.query", req.Query).
		Param("log_filter.happened_after", req.Range.Start).
		Param("log_filter.happened_before", req.Range.End).
		Param("timestamp_sort", "DESC")
	if req.PageToken != "" {
		b.Param("page.token", req.PageToken)
	}
	err := b.
		ErrorJSON(&errBody).
		ToJSON(&res).
		Fetch(ctx)
	if err != nil {
		return nil, c.wrapFetchErr(endpoint, errBody, err)
	}
	if res.QueryID == "" {
		return nil, &ProtocolError{Endpoint: endpoint, Field: "query_id"}
	}
	interval := defaultPollInterval
	if res.RefreshIntervalMs > 0 {
		interval = time.Duration(res.RefreshIntervalMs * float64(time.Millisecond))
	}
	return &QueryHandle{QueryID: res.QueryID, PollInterval: interval}, nil
}

// PollLogQuery fetches the current status of an in-progress search.
func (c *Client) PollLogQuery(ctx context.Context, queryID string) (Result, error) {
	endpoint := logsPollEndpoint
	if c.legacyAPI {
		endpoint = legacyLogsPollEndpoint
	}
	var res Result
	var errBody Result
	err := c.request(endpoint).
		Param("query_id", queryID).
		ErrorJSON(&errBody).
		ToJSON(&res).
		Fetch(ctx)
	if err != nil {
		return nil, c.wrapFetchErr(endpoint, errBody, err)
	}
	return res, nil
}

// QueryMetrics builds the aggregation expression for req and evaluates it
// with a single instant query. No polling and no retry.
func (c *Client) QueryMetrics(ctx context.Context, req *MetricQueryRequest) (Result, error) {
	query, err := BuildMetricQuery(req)
	if err != nil {
		return nil, err
	}
	var res Result
	var errBody Result
	err = c.request(metricsQueryEndpoint).
		Param("query", query).
		ErrorJSON(&errBody).
		ToJSON(&res).
		Fetch(ctx)
	if err != nil {
		return nil, c.wrapFetchErr(metricsQueryEndpoint, errBody, err)
	}
	return res, nil
}

func (c *Client) request(endpoint string) *rq.Builder {
	uri := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	return rq.URL(uri).
		ContentType("application/json").
		Bearer(c.token)
}

// wrapFetchErr classifies a Fetch failure: validator errors are non-2xx
// responses and become HTTPError with the decoded error body, everything
// else (network, decode) is passed through.
func (c *Client) wrapFetchErr(endpoint string, errBody Result, err error) error {
	if errors.Is(err, rq.ErrValidator) {
		return &HTTPError{Endpoint: endpoint, Body: errBody, Err: err}
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
