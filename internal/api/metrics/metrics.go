// Package metrics defines and registers all custom Prometheus metrics for the
// TaskFlow workspace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics use promauto, so importing the package registers them with the
// default registry; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskflow"

// ── Authentication metrics ───────────────────────────────────────────────────

// RegistrationsTotal counts account registrations by outcome.
// Label:
//   - result: "ok", "conflict", "invalid", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "ok", "denied", "invalid", or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PasswordHashDuration measures a single bcrypt hash or verification,
// including any time spent waiting for a worker slot.
// Label:
//   - op: "hash" or "verify"
var PasswordHashDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of password hashing operations, by op.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"op"},
)

// ── Workspace metrics ────────────────────────────────────────────────────────

// WorkspacesCreatedTotal counts successfully created workspaces.
var WorkspacesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "workspaces_created_total",
		Help:      "Total number of workspaces created.",
	},
)

// InvitesTotal counts member invitations by outcome.
// Label:
//   - result: "ok", "forbidden", "not_found", "conflict", "invalid", or "error"
var InvitesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invites_total",
		Help:      "Total number of member invitations, by result.",
	},
	[]string{"result"},
)
