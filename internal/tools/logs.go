package tools

import (
	"context"
	"fmt"
	"time"

	"chronosphere-mcp/client/chronosphere"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type QueryLogsParams struct {
	Query           string `json:"query" jsonschema:"The log query string"`
	StartTime       string `json:"start_time,omitempty" jsonschema:"Start time for the query range e.g. 2025-05-08T18:08:35.000Z"`
	EndTime         string `json:"end_time,omitempty" jsonschema:"End time for the query range e.g. 2025-05-08T18:20:35.000Z"`
	SimpleTimeRange string `json:"simple_time_range,omitempty" jsonschema:"Simple time range e.g. 30m, 1h, 7d, 2w. Takes precedence over start_time and end_time when provided."`
	PageToken       string `json:"page_token,omitempty" jsonschema:"Opaque cursor from a previous result to continue the listing"`
}

// QueryLogs runs an asynchronous log search and returns the completed
// result body, including records and the next-page token.
func (t tool) QueryLogs(ctx context.Context, request *mcp.CallToolRequest, params QueryLogsParams) (*mcp.CallToolResult, any, error) {
	timeRange, err := chronosphere.ResolveTimeRange(params.SimpleTimeRange, params.StartTime, params.EndTime, time.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve time range: %w", err)
	}

	result, err := t.client.QueryLogs(ctx, &chronosphere.LogQueryRequest{
		Query:     params.Query,
		Range:     timeRange,
		PageToken: params.PageToken,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query logs: %w", err)
	}

	return jsonResult(result)
}
