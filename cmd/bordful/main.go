// Command bordful runs the job-board engine: it pulls listings from the
// configured source, keeps a normalized cache, and serves the JSON API,
// feeds, and SSE stream.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"bordful/internal/cache"
	"bordful/internal/config"
	"bordful/internal/events"
	"bordful/internal/feeds"
	"bordful/internal/httpapi"
	"bordful/internal/logging"
	"bordful/internal/normalize"
	"bordful/internal/ratelimit"
	"bordful/internal/secrets"
	"bordful/internal/source"
	"bordful/internal/source/airtable"
	"bordful/internal/source/postgres"
	"bordful/internal/source/sqlite"
	"bordful/internal/subscribe"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bordful:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load() // .env is optional

	dataDir := os.Getenv("BORDFUL_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// One engine per data dir.
	lock := flock.New(filepath.Join(dataDir, "bordful.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire data dir lock: %w", err)
	}
	if !locked {
		return errors.New("another bordful instance is already using " + dataDir)
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		return fmt.Errorf("config bootstrap failed: %w", err)
	}

	// Load config and keep it reloadable.
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		c, err := config.Load(userCfgPath)
		if err != nil {
			return c, err
		}
		config.OverlayEnv(&c)
		c, vr := config.NormalizeAndValidate(c)
		if !vr.OK() {
			return c, errors.New("config invalid:\n- " + strings.Join(vr.Errors, "\n- "))
		}
		return c, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	log := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()

	src, closeSrc, err := buildSource(cfg, dataDir)
	if err != nil {
		return err
	}
	defer closeSrc()

	hub := events.NewHub()
	norm := normalize.Normalizer{Types: cfg.Jobs.Types}
	jobCache := cache.New(src, norm, hub, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := jobCache.Start(ctx, cfg.Jobs.Revalidate); err != nil {
		return err
	}
	defer jobCache.Stop()

	subService, closeSub, err := buildSubscribe(cfg, hub, log)
	if err != nil {
		return err
	}
	defer closeSub()

	mux := httpapi.NewMux(httpapi.Deps{
		Cache:   jobCache,
		Hub:     hub,
		PerPage: cfg.Jobs.PerPage,
		Site: feeds.Site{
			Name:        cfg.Site.Name,
			URL:         strings.TrimRight(cfg.Site.URL, "/"),
			Description: cfg.Site.Description,
		},
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		Subscribe:   subService,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover(log),
		httpapi.AccessLog(log),
		httpapi.Cors,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening",
			zap.Int("port", cfg.App.Port),
			zap.String("provider", src.Name()),
			zap.String("config", userCfgPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})
	return g.Wait()
}

func buildSource(cfg config.Config, dataDir string) (source.Source, func(), error) {
	noop := func() {}
	switch strings.ToLower(strings.TrimSpace(cfg.Source.Provider)) {
	case "airtable":
		token, err := secrets.Get(secrets.AccountAirtable)
		if err != nil {
			return nil, noop, err
		}
		return airtable.New(airtable.Config{
			BaseID: cfg.Source.Airtable.BaseID,
			Table:  cfg.Source.Airtable.Table,
			View:   cfg.Source.Airtable.View,
			Token:  token,
		}), noop, nil

	case "postgres":
		st, err := postgres.Open(cfg.Source.Postgres.DSN)
		if err != nil {
			return nil, noop, err
		}
		return st, func() { _ = st.Close() }, nil

	case "sqlite":
		path := cfg.Source.SQLite.Path
		if path == "" {
			path = filepath.Join(dataDir, "bordful.db")
		}
		st, err := sqlite.Open(path)
		if err != nil {
			return nil, noop, err
		}
		seedCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Seed(seedCtx); err != nil {
			_ = st.Close()
			return nil, noop, err
		}
		return st, func() { _ = st.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown source provider %q", cfg.Source.Provider)
	}
}

func buildSubscribe(cfg config.Config, hub *events.Hub, log *zap.Logger) (*subscribe.Service, func(), error) {
	noop := func() {}
	if !cfg.Subscribe.Enabled {
		return nil, noop, nil
	}

	apiKey, err := secrets.Get(secrets.AccountSubscribe)
	if err != nil {
		// The provider may not need a key; log and continue without one.
		log.Warn("subscribe api key not found; sending unauthenticated", zap.Error(err))
		apiKey = ""
	}
	provider := subscribe.NewHTTPProvider(cfg.Subscribe.ProviderURL, apiKey)

	var seen subscribe.SeenStore
	closeSeen := noop
	if cfg.Subscribe.RedisURL != "" {
		rs, err := subscribe.NewRedisSeenStore(cfg.Subscribe.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		seen = rs
		closeSeen = func() { _ = rs.Close() }
	} else {
		seen = subscribe.NewMemorySeenStore()
	}

	limiter := ratelimit.NewKeyLimiter(
		float64(cfg.Subscribe.RatePerMinute),
		cfg.Subscribe.RateBurst,
		time.Hour,
	)
	ttl := time.Duration(cfg.Subscribe.DedupeTTLMin) * time.Minute
	return subscribe.NewService(provider, seen, limiter, hub, log, ttl), closeSeen, nil
}
