// Package metrics defines and registers all custom Prometheus metrics for
// the calmato API. It is the single source of truth for metric names, labels,
// and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "calmato"

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "USER" or "ADMIN"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PostsCreatedTotal counts new board posts.
// Label:
//   - board: "FREE" or "REQUEST"
var PostsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of board posts created, by board type.",
	},
	[]string{"board"},
)

// UploadsTotal counts files stored in the object store.
// Label:
//   - type: asset category (e.g. "asmrImage", "playlistImage")
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of files uploaded to object storage, by asset type.",
	},
	[]string{"type"},
)

// CleanupTotal counts background object-store deletions.
// Label:
//   - result: "deleted" or "error"
var CleanupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_cleanup_total",
		Help:      "Total number of background object-store deletions, by result.",
	},
	[]string{"result"},
)

// CleanupQueueDepth tracks pending deletions per cleanup worker.
// Label:
//   - worker_id: numeric worker index ("0", "1", …)
var CleanupQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "storage_cleanup_queue_depth",
		Help:      "Current number of deletions pending in each cleanup worker channel.",
	},
	[]string{"worker_id"},
)
