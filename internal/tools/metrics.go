package tools

import (
	"context"
	"fmt"

	"chronosphere-mcp/client/chronosphere"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type QueryMetricsParams struct {
	Type        string `json:"type" jsonschema:"Either \"http\" or \"rpc\""`
	Namespace   string `json:"namespace" jsonschema:"The namespace to query"`
	Environment string `json:"environment" jsonschema:"The environment to query (e.g. \"prod\", \"stage\")"`
	Mode        string `json:"mode" jsonschema:"The mode to query (e.g. \"live\", \"sandbox\")"`
	Service     string `json:"service,omitempty" jsonschema:"The service to query (rpc queries only)"`
	Method      string `json:"method,omitempty" jsonschema:"The method to query (rpc queries only)"`
	Interval    string `json:"interval" jsonschema:"The interval to query (e.g. \"5m\", \"1h\", \"24h\", \"7d\")"`
}

// QueryMetrics evaluates one of the fixed aggregation expressions with a
// single instant query and returns the raw result body.
func (t tool) QueryMetrics(ctx context.Context, request *mcp.CallToolRequest, params QueryMetricsParams) (*mcp.CallToolResult, any, error) {
	result, err := t.client.QueryMetrics(ctx, &chronosphere.MetricQueryRequest{
		Type:        params.Type,
		Namespace:   params.Namespace,
		Environment: params.Environment,
		Mode:        params.Mode,
		Service:     params.Service,
		Method:      params.Method,
		Interval:    params.Interval,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query metrics: %w", err)
	}

	return jsonResult(result)
}
