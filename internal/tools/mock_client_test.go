package tools

import (
	"context"

	"chronosphere-mcp/client/chronosphere"

	"github.com/stretchr/testify/mock"
)

type MockChronosphereClient struct {
	mock.Mock
}

func (m *MockChronosphereClient) QueryLogs(ctx context.Context, req *chronosphere.LogQueryRequest) (chronosphere.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(chronosphere.Result), args.Error(1)
}

func (m *MockChronosphereClient) QueryMetrics(ctx context.Context, req *chronosphere.MetricQueryRequest) (chronosphere.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(chronosphere.Result), args.Error(1)
}
