// Package metrics defines and registers all custom Prometheus metrics for
// the animal listing API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "listing"

// ── Search metrics ────────────────────────────────────────────────────────────

// SearchesTotal counts search requests served.
// Label:
//   - authenticated: "true" when a valid token accompanied the request,
//     "false" for anonymous searches
var SearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of animal searches served, by authentication state.",
	},
	[]string{"authenticated"},
)

// SearchDuration measures how long a search takes end-to-end.
var SearchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Duration of animal search requests.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Registration metrics ──────────────────────────────────────────────────────

// AnimalsCreatedTotal counts newly registered animals.
var AnimalsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "animals_created_total",
		Help:      "Total number of animals registered.",
	},
)

// ── Metadata metrics ──────────────────────────────────────────────────────────

// MetadataCacheTotal counts metadata cache decisions.
// Label:
//   - result: "hit" (served from Redis) or "miss" (rebuilt from Mongo)
var MetadataCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "metadata_cache_total",
		Help:      "Total number of metadata cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Index pipeline metrics ────────────────────────────────────────────────────

// IndexQueueDepth tracks the number of animals waiting in each index worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var IndexQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "index_queue_depth",
		Help:      "Current number of animals pending in each index worker channel.",
	},
	[]string{"worker_id"},
)

// IndexErrorsTotal counts index jobs that failed processing.
var IndexErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "index_errors_total",
		Help:      "Total number of search-index jobs that failed.",
	},
)
