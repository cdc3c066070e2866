// Package metrics defines and registers all custom Prometheus metrics for
// the payment API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry at package init via
// promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "payment"

// AccountsRegisteredTotal counts successful registrations.
var AccountsRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_registered_total",
		Help:      "Total number of accounts successfully registered.",
	},
)

// AccountsDeletedTotal counts accounts removed via the admin endpoint.
var AccountsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_deleted_total",
		Help:      "Total number of accounts deleted by an admin.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "not_found" or "bad_password"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// OrdersSubmittedTotal counts order submissions.
// Label:
//   - result: "success", "invalid", "replay" or "error"
var OrdersSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_submitted_total",
		Help:      "Total number of order submissions, labelled by result.",
	},
	[]string{"result"},
)

// OrderTransitionsTotal counts status pipeline transitions.
// Label:
//   - status: the status written ("accepted" or "delivered")
var OrderTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_transitions_total",
		Help:      "Total number of order status updates, by resulting status.",
	},
	[]string{"status"},
)
