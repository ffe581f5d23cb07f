package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewMux returns the raw mux so main() can wrap it with the middleware chain.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Jobs
	jh := JobsHandler{Cache: d.Cache, PerPage: d.PerPage}
	mux.HandleFunc("/api/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/api/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.GetBySlug, // expects /api/jobs/{slug}
	}))

	// Subscriptions
	sh := SubscribeHandler{Service: d.Subscribe}
	mux.HandleFunc("/api/subscribe", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Post,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/api/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/api/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/api/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// Feeds
	fh := FeedsHandler{Cache: d.Cache, Site: d.Site}
	mux.HandleFunc("/feed.xml", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: fh.RSS,
	}))
	mux.HandleFunc("/atom.xml", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: fh.Atom,
	}))
	mux.HandleFunc("/feed.json", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: fh.JSONFeed,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Ops
	hh := HealthHandler{Cache: d.Cache}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}
