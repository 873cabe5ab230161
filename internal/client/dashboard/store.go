// Package dashboard fetches the four independent dashboard resources
// (today-feed, metrics, breaking-news, weekly-summary) and tracks per-slot
// loading and error state. Partial failure is a first-class outcome: an
// error in one slot never aborts or taints the others.
package dashboard

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/econdash/internal/client/api"
	"github.com/dmitrijs2005/econdash/internal/client/models"
	"github.com/dmitrijs2005/econdash/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Slot is one independently loading and erroring unit of fetched data.
type Slot[T any] struct {
	Data    *T
	Loading bool
	Err     error
}

type Store struct {
	api api.Client
	log logging.Logger

	mu       sync.Mutex
	today    Slot[models.TodayFeed]
	metrics  Slot[models.MetricsSummary]
	breaking Slot[models.BreakingNews]
	weekly   Slot[models.WeeklySummary]
}

func New(apiClient api.Client, log logging.Logger) *Store {
	return &Store{api: apiClient, log: log}
}

// fetch runs one slot's round trip: mark loading, call, record data or
// error, clear loading. Only the addressed slot is touched.
func fetch[T any](ctx context.Context, s *Store, slot *Slot[T], call func(context.Context) (*T, error)) error {
	s.mu.Lock()
	slot.Loading = true
	slot.Err = nil
	s.mu.Unlock()

	data, err := call(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	slot.Loading = false
	if err != nil {
		slot.Err = err
		return err
	}
	slot.Data = data
	slot.Err = nil
	return nil
}

func (s *Store) FetchToday(ctx context.Context) error {
	return fetch(ctx, s, &s.today, s.api.Today)
}

func (s *Store) FetchMetrics(ctx context.Context) error {
	return fetch(ctx, s, &s.metrics, s.api.Metrics)
}

func (s *Store) FetchBreaking(ctx context.Context) error {
	return fetch(ctx, s, &s.breaking, s.api.Breaking)
}

func (s *Store) FetchWeekly(ctx context.Context) error {
	return fetch(ctx, s, &s.weekly, s.api.Weekly)
}

// FetchAll issues all four fetches concurrently and waits for every one of
// them to settle; it never short-circuits on the first failure. The
// returned error is the first slot error, reported only after the join, so
// callers still render whatever the other slots obtained.
func (s *Store) FetchAll(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return s.FetchToday(ctx) })
	g.Go(func() error { return s.FetchMetrics(ctx) })
	g.Go(func() error { return s.FetchBreaking(ctx) })
	g.Go(func() error { return s.FetchWeekly(ctx) })

	if err := g.Wait(); err != nil {
		s.log.Warn(ctx, "dashboard refresh finished with partial failure", "error", err)
		return err
	}
	return nil
}

// Snapshot accessors return slot copies; the pointed-to payloads are
// treated as immutable once published.

func (s *Store) Today() Slot[models.TodayFeed] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.today
}

func (s *Store) Metrics() Slot[models.MetricsSummary] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics
}

func (s *Store) Breaking() Slot[models.BreakingNews] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.breaking
}

func (s *Store) Weekly() Slot[models.WeeklySummary] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weekly
}
