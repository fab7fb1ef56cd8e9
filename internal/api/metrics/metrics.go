// Package metrics defines and registers all custom Prometheus metrics
// for the MimiSupply demo auth service. It is the single source of
// truth for metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time
// via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mimisupply"

// ── Login metrics ─────────────────────────────────────────────────────────────

// LoginsTotal counts credential logins by outcome.
// Labels:
//   - role: the role of the authenticated user ("" when the attempt failed)
//   - result: "success", "invalid", "throttled" or "cancelled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of credential login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// QuickLoginsTotal counts quick logins by requested role.
// Labels:
//   - role: the requested quick-login role
//   - result: "success", "unsupported" or "error"
var QuickLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quick_logins_total",
		Help:      "Total number of quick login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// LogoutsTotal counts logout calls, including redundant ones.
var LogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logouts_total",
		Help:      "Total number of logout calls.",
	},
)

// LoginDuration measures wall time of a login attempt, simulated
// network delay included.
// Label:
//   - result: "success" or "invalid"
var LoginDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "login_duration_seconds",
		Help:      "Duration of login attempts including the simulated round-trip.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"result"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionAuthenticated is 1 while a demo identity is logged in, 0
// otherwise. Maintained by the session watcher in the composition root.
var SessionAuthenticated = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_authenticated",
		Help:      "Whether the process-wide demo session is currently authenticated.",
	},
)
