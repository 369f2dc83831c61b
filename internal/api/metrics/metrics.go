// Package metrics defines and registers the custom Prometheus metrics for
// the blog API. It is the single source of truth for metric names, labels,
// and help strings. Collectors register with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// SignupsTotal counts successfully created user accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid" or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensRefreshedTotal counts access tokens minted through the refresh endpoint.
var TokensRefreshedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_refreshed_total",
		Help:      "Total number of access tokens issued via refresh.",
	},
)

// PostsCreatedTotal counts newly created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// PostsUpdatedTotal counts successful post updates.
var PostsUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_updated_total",
		Help:      "Total number of posts updated.",
	},
)

// PostsDeletedTotal counts successful post deletions.
var PostsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_deleted_total",
		Help:      "Total number of posts deleted.",
	},
)

// WriteDeniedTotal counts post writes rejected by the ownership policy.
var WriteDeniedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_write_denied_total",
		Help:      "Total number of post writes denied to non-owners.",
	},
)
