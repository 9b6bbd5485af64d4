package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"chronosphere-mcp/client/chronosphere"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ChronosphereClient interface {
	QueryLogs(ctx context.Context, req *chronosphere.LogQueryRequest) (chronosphere.Result, error)
	QueryMetrics(ctx context.Context, req *chronosphere.MetricQueryRequest) (chronosphere.Result, error)
}

type tool struct {
	client ChronosphereClient
}

// NewBaseTool returns a tool factory
func NewBaseTool(c ChronosphereClient) (t *tool) {
	t = new(tool)
	t.client = c
	return
}

// jsonResult relays a raw response body to the caller, as JSON text and as
// structured content.
func jsonResult(res chronosphere.Result) (*mcp.CallToolResult, any, error) {
	b, err := json.Marshal(res)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: string(b),
			},
		},
	}, res, nil
}
