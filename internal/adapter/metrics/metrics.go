// Package metrics provides Prometheus metrics for the payment gateway.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Sweeps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arkpay_sweeps_total",
		Help: "Reconciliation sweeps started",
	})
	OrdersConsidered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arkpay_sweep_orders_total",
		Help: "Orders considered by reconciliation sweeps",
	})
	OrderFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arkpay_sweep_order_failures_total",
		Help: "Orders whose reconciliation failed hard during a sweep",
	})
	NodeFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arkpay_node_fallbacks_total",
		Help: "Ledger queries retried against the backup node",
	})
	NodeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arkpay_node_failures_total",
		Help: "Ledger queries that failed on every configured node",
	})
	StatusMailFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arkpay_status_mail_failures_total",
		Help: "Status mails that could not be sent",
	})
)

// StartMetricsServer exposes /metrics on the given address.
func StartMetricsServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		_ = http.ListenAndServe(addr, nil)
	}()
}
