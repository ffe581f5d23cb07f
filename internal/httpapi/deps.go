package httpapi

import (
	"sync/atomic"

	"bordful/internal/cache"
	"bordful/internal/config"
	"bordful/internal/events"
	"bordful/internal/feeds"
	"bordful/internal/subscribe"
)

type Deps struct {
	Cache *cache.Cache
	Hub   *events.Hub
	Site  feeds.Site

	// PerPage is jobs.per_page from config: the listing page size when the
	// URL does not say otherwise.
	PerPage int

	// Atomic store holding config.Config
	CfgVal *atomic.Value

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Nil when subscriptions are disabled.
	Subscribe *subscribe.Service
}
