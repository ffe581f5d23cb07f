package subscribe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bordful/internal/events"
	"bordful/internal/ratelimit"
)

type fakeProvider struct {
	added []Subscriber
	err   error
}

func (f *fakeProvider) Add(_ context.Context, sub Subscriber) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, sub)
	return nil
}

func newTestService(p Provider) *Service {
	return NewService(
		p,
		NewMemorySeenStore(),
		ratelimit.NewKeyLimiter(60, 10, time.Hour),
		nil,
		zap.NewNop(),
		time.Hour,
	)
}

func TestSubscribe_HappyPath(t *testing.T) {
	p := &fakeProvider{}
	s := newTestService(p)

	err := s.Subscribe(context.Background(), Request{
		Email: "  Jane.Doe@Example.com ", // trimmed and lowercased
		Name:  " Jane ",
		IP:    "1.2.3.4",
	})
	require.NoError(t, err)
	require.Len(t, p.added, 1)
	assert.Equal(t, "jane.doe@example.com", p.added[0].Email)
	assert.Equal(t, "Jane", p.added[0].Name)
	assert.NotEmpty(t, p.added[0].Metadata["ref"])
}

func TestSubscribe_InvalidEmails(t *testing.T) {
	s := newTestService(&fakeProvider{})
	for _, email := range []string{"", "   ", "not-an-email", "a@", "Jane <jane@example.com>"} {
		err := s.Subscribe(context.Background(), Request{Email: email})
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
}

func TestSubscribe_DuplicateWithinTTL(t *testing.T) {
	p := &fakeProvider{}
	s := newTestService(p)

	require.NoError(t, s.Subscribe(context.Background(), Request{Email: "a@example.com"}))

	err := s.Subscribe(context.Background(), Request{Email: "A@Example.com"}) // case folds
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Len(t, p.added, 1)
}

func TestSubscribe_RateLimited(t *testing.T) {
	p := &fakeProvider{}
	s := NewService(p, NewMemorySeenStore(),
		ratelimit.NewKeyLimiter(1, 1, time.Hour), nil, zap.NewNop(), time.Hour)

	require.NoError(t, s.Subscribe(context.Background(), Request{Email: "a@example.com", IP: "9.9.9.9"}))

	err := s.Subscribe(context.Background(), Request{Email: "b@example.com", IP: "9.9.9.9"})
	assert.ErrorIs(t, err, ErrRateLimited)

	// a different IP is not affected
	require.NoError(t, s.Subscribe(context.Background(), Request{Email: "c@example.com", IP: "8.8.8.8"}))
}

func TestSubscribe_ProviderFailure(t *testing.T) {
	p := &fakeProvider{err: errors.New("503 from provider")}
	s := newTestService(p)

	err := s.Subscribe(context.Background(), Request{Email: "a@example.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidEmail)
	assert.NotErrorIs(t, err, ErrDuplicate)
}

func TestSubscribe_PublishesEvent(t *testing.T) {
	hub := events.NewHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	s := NewService(&fakeProvider{}, NewMemorySeenStore(),
		ratelimit.NewKeyLimiter(60, 10, time.Hour), hub, zap.NewNop(), time.Hour)
	require.NoError(t, s.Subscribe(context.Background(), Request{Email: "a@example.com"}))

	select {
	case msg := <-ch:
		assert.Contains(t, msg, events.TypeSubscriberAdded)
	default:
		t.Fatal("expected a subscriber_added event")
	}
}
