// Package metrics defines and registers all custom Prometheus metrics for the
// TechConnect API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "techconnect"

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
// Label:
//   - role: "member" or "admin"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// ProjectsCreatedTotal counts newly posted projects.
var ProjectsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects posted.",
	},
)

// ArticlesPublishedTotal counts newly published news articles.
// Label:
//   - category: the article category (e.g. "AI", "Cybersecurity")
var ArticlesPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_published_total",
		Help:      "Total number of news articles published, by category.",
	},
	[]string{"category"},
)

// CommentsAddedTotal counts comments appended to projects.
var CommentsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_added_total",
		Help:      "Total number of comments added to projects.",
	},
)

// ── Engagement metrics ────────────────────────────────────────────────────────

// EngagementTogglesTotal counts like/save toggles.
// Labels:
//   - entity: "project" or "article"
//   - kind:   "like" or "save"
//   - result: "added" or "removed"
var EngagementTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "engagement_toggles_total",
		Help:      "Total number of like/save toggles, by entity, kind and outcome.",
	},
	[]string{"entity", "kind", "result"},
)

// NameCacheLookupsTotal counts display-name cache decisions during population.
// Label:
//   - result: "hit" or "miss", one observation per requested id
var NameCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "name_cache_lookups_total",
		Help:      "Total number of display-name cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
