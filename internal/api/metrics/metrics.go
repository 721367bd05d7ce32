// Package metrics defines the custom Prometheus metrics of the back-office
// API. It is the single source of truth for metric names, labels, and help
// strings; request-level latency and status counters come from the
// echoprometheus middleware and are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// AuthFailuresTotal counts rejected requests at the auth gate.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token",
//     "invalid_claims", or "forbidden_role"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth gate, by reason.",
	},
	[]string{"reason"},
)

// ResourceWritesTotal counts successful mutating operations.
// Labels:
//   - resource: "account", "customer", "project", "milestone", "task", "member"
//   - action: "create", "update", "delete", "reorder"
var ResourceWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_writes_total",
		Help:      "Total number of successful create/update/delete operations.",
	},
	[]string{"resource", "action"},
)

// ReportQueriesTotal counts report endpoint hits.
// Label:
//   - report: "milestone_progress", "burndown", "status_summary"
var ReportQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_queries_total",
		Help:      "Total number of report queries served.",
	},
	[]string{"report"},
)
