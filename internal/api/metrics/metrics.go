// Package metrics defines and registers all custom Prometheus metrics for the
// finance API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default Prometheus registry through promauto
// when the package is initialised, and exposed by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "finance"

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestsTotal counts served requests.
// Labels:
//   - method: HTTP verb
//   - route: the registered route pattern (e.g. "/proyek/:id"), never the raw path
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures handler latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests, by method and route.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthLoginsTotal counts login attempts.
// Label:
//   - result: "success", "user_not_found", "invalid_password", "throttled", "invalid_payload" or "error"
var AuthLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "conflict", "invalid_payload" or "error"
var AuthRegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests stopped by the auth middleware chain.
// Label:
//   - reason: "missing_token", "malformed_token", "invalid_signature", "token_expired" or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or role checks.",
	},
	[]string{"reason"},
)

// ── Record metrics ────────────────────────────────────────────────────────────

// RecordsMutationsTotal counts successful writes on finance records.
// Labels:
//   - entity: e.g. "Proyek"
//   - action: "created", "updated" or "deleted"
var RecordsMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_mutations_total",
		Help:      "Total number of finance record mutations, by entity and action.",
	},
	[]string{"entity", "action"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts audit events handled by the dispatcher.
// Label:
//   - result: "written", "failed" or "dropped"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events, by outcome.",
	},
	[]string{"result"},
)

// AuditQueueDepth tracks the number of events waiting in each worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
