// Package cache holds the normalized job list between source fetches. Jobs
// are fetched once and revalidated on a time interval; every reader gets an
// immutable snapshot. A failed refresh keeps the previous snapshot (empty on
// first run) — source errors never surface past this boundary.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"bordful/internal/domain"
	"bordful/internal/events"
	"bordful/internal/metrics"
	"bordful/internal/normalize"
	"bordful/internal/source"
)

type Cache struct {
	src  source.Source
	norm normalize.Normalizer
	hub  *events.Hub
	log  *zap.Logger
	cron *cron.Cron

	mu        sync.RWMutex
	jobs      []domain.Job
	bySlug    map[string]domain.Job
	fetchedAt time.Time
}

func New(src source.Source, norm normalize.Normalizer, hub *events.Hub, log *zap.Logger) *Cache {
	return &Cache{
		src:    src,
		norm:   norm,
		hub:    hub,
		log:    log,
		cron:   cron.New(),
		bySlug: map[string]domain.Job{},
	}
}

// Refresh fetches from the source, normalizes, and swaps in the new snapshot.
// Only active jobs are kept; inactive records never reach a reader.
func (c *Cache) Refresh(ctx context.Context) error {
	recs, err := c.src.GetJobs(ctx)
	if err != nil {
		metrics.SourceFetches.WithLabelValues(c.src.Name(), "error").Inc()
		c.log.Error("source fetch failed; keeping previous snapshot",
			zap.String("provider", c.src.Name()), zap.Error(err))
		return fmt.Errorf("refresh jobs from %s: %w", c.src.Name(), err)
	}

	active := make([]domain.Job, 0, len(recs))
	bySlug := make(map[string]domain.Job, len(recs))
	skipped := 0
	for _, rec := range recs {
		j, ok := c.norm.Job(rec)
		if !ok {
			skipped++
			continue
		}
		if j.Status != domain.StatusActive {
			continue
		}
		active = append(active, j)
		bySlug[j.Slug] = j
		bySlug[j.ID] = j
	}

	c.mu.Lock()
	c.jobs = active
	c.bySlug = bySlug
	c.fetchedAt = time.Now().UTC()
	c.mu.Unlock()

	metrics.SourceFetches.WithLabelValues(c.src.Name(), "ok").Inc()
	metrics.JobsCached.Set(float64(len(active)))
	c.log.Info("jobs refreshed",
		zap.String("provider", c.src.Name()),
		zap.Int("active", len(active)),
		zap.Int("skipped", skipped))

	if c.hub != nil {
		c.hub.Publish(events.MakeEvent("", events.TypeJobsRefreshed, 1,
			map[string]any{"count": len(active)}))
	}
	return nil
}

// Jobs returns the current snapshot. The returned slice is a copy; callers
// may reorder it freely.
func (c *Cache) Jobs() []domain.Job {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

// Find looks a job up by slug or id.
func (c *Cache) Find(key string) (domain.Job, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	j, ok := c.bySlug[key]
	return j, ok
}

func (c *Cache) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}

// Start schedules revalidation on the given cron spec (e.g. "@every 5m") and
// runs one refresh immediately so the first request has data.
func (c *Cache) Start(ctx context.Context, spec string) error {
	_, err := c.cron.AddFunc(spec, func() {
		refreshCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()
		_ = c.Refresh(refreshCtx) // already logged
	})
	if err != nil {
		return fmt.Errorf("cache cron.AddFunc: %w", err)
	}
	c.cron.Start()

	go func() {
		refreshCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()
		_ = c.Refresh(refreshCtx)
	}()
	return nil
}

func (c *Cache) Stop() {
	c.cron.Stop()
}
