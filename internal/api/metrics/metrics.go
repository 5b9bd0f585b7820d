// Package metrics defines the custom Prometheus metrics for the DDC content
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ddc"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "rate_limited"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ContentOperationsTotal counts CRUD operations that reached the service
// layer successfully.
// Labels:
//   - table: news, events or publications
//   - operation: list, get, create, update, delete
var ContentOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_operations_total",
		Help:      "Total number of completed content operations, by table and operation.",
	},
	[]string{"table", "operation"},
)
