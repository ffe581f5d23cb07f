// Package subscribe handles newsletter signups: validate, rate-limit per
// client IP, suppress duplicates, then hand the subscriber to the provider.
package subscribe

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bordful/internal/events"
	"bordful/internal/metrics"
	"bordful/internal/ratelimit"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrRateLimited  = errors.New("too many subscription attempts")
	ErrDuplicate    = errors.New("email already subscribed recently")
)

type Service struct {
	provider Provider
	seen     SeenStore
	limiter  *ratelimit.KeyLimiter
	hub      *events.Hub
	log      *zap.Logger
	ttl      time.Duration
}

func NewService(provider Provider, seen SeenStore, limiter *ratelimit.KeyLimiter, hub *events.Hub, log *zap.Logger, dedupeTTL time.Duration) *Service {
	return &Service{
		provider: provider,
		seen:     seen,
		limiter:  limiter,
		hub:      hub,
		log:      log,
		ttl:      dedupeTTL,
	}
}

type Request struct {
	Email string
	Name  string
	IP    string
}

// Subscribe runs the full pipeline. Sentinel errors tell the HTTP layer
// which status to return; anything else is a provider failure.
func (s *Service) Subscribe(ctx context.Context, req Request) error {
	email, err := cleanEmail(req.Email)
	if err != nil {
		metrics.Subscriptions.WithLabelValues("invalid").Inc()
		return err
	}

	if req.IP != "" && !s.limiter.Allow(req.IP) {
		metrics.Subscriptions.WithLabelValues("rate_limited").Inc()
		s.log.Warn("subscription rate limited", zap.String("ip", req.IP))
		return ErrRateLimited
	}

	dup, err := s.seen.MarkSeen(ctx, email, s.ttl)
	if err != nil {
		// Dedupe store trouble should not block signups.
		s.log.Warn("seen store unavailable; skipping dedupe", zap.Error(err))
	} else if dup {
		metrics.Subscriptions.WithLabelValues("duplicate").Inc()
		return ErrDuplicate
	}

	sub := Subscriber{
		Email: email,
		Name:  strings.TrimSpace(req.Name),
		IP:    req.IP,
		Metadata: map[string]string{
			"ref":    uuid.NewString(),
			"source": "bordful",
		},
	}
	if err := s.provider.Add(ctx, sub); err != nil {
		metrics.Subscriptions.WithLabelValues("error").Inc()
		return fmt.Errorf("add subscriber: %w", err)
	}

	metrics.Subscriptions.WithLabelValues("ok").Inc()
	s.log.Info("subscriber added", zap.String("ref", sub.Metadata["ref"]))
	if s.hub != nil {
		s.hub.Publish(events.MakeEvent("", events.TypeSubscriberAdded, 1,
			map[string]any{"ref": sub.Metadata["ref"]}))
	}
	return nil
}

func cleanEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}
