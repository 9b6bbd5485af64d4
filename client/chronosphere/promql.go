package chronosphere

import (
	"fmt"
	"regexp"
	"strings"
)

// Aggregation expression templates. The label sets and groupings are part
// of the contract with the dashboards consuming these queries, so they are
// kept verbatim and only the filter values vary.
const (
	httpHandledExpr = `sum(increase(http_server_handled_total{environment='%s', mode=~'%s', namespace=~'%s', path!~'/ping|None'}[%s])) by (namespace, handler_package, handler, method, path)`
	rpcHandledExpr  = `sum(increase(rpc2_server_handled_total{environment=~'%s', mode=~'%s', namespace=~'%s', rpc2_service=~'%s', rpc2_method=~'%s'}[%s])) by (rpc2_service, rpc2_method, namespace)`
)

var intervalPattern = regexp.MustCompile(`^\d+(ms|s|m|h|d|w|y)$`)

var labelValueEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
)

// BuildMetricQuery renders the aggregation expression for req. Filter
// values are escaped for the single-quoted label-matcher context so a
// caller-supplied value cannot break out of the expression.
func BuildMetricQuery(req *MetricQueryRequest) (string, error) {
	if !intervalPattern.MatchString(req.Interval) {
		return "", &ValidationError{Msg: fmt.Sprintf("invalid interval %q: expected a PromQL duration like 5m, 1h, 24h, 7d", req.Interval)}
	}
	switch req.Type {
	case MetricQueryHTTP:
		return fmt.Sprintf(httpHandledExpr,
			quoteLabelValue(req.Environment),
			quoteLabelValue(req.Mode),
			quoteLabelValue(req.Namespace),
			req.Interval,
		), nil
	case MetricQueryRPC:
		return fmt.Sprintf(rpcHandledExpr,
			quoteLabelValue(req.Environment),
			quoteLabelValue(req.Mode),
			quoteLabelValue(req.Namespace),
			quoteLabelValue(req.Service),
			quoteLabelValue(req.Method),
			req.Interval,
		), nil
	default:
		return "", &ValidationError{Msg: fmt.Sprintf("unknown metric query type %q: expected %q or %q", req.Type, MetricQueryHTTP, MetricQueryRPC)}
	}
}

func quoteLabelValue(v string) string {
	return labelValueEscaper.Replace(v)
}
