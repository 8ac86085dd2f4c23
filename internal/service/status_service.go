package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mattear/waitlist-watch/internal/domain"
	"github.com/mattear/waitlist-watch/internal/port"
)

// StatusService reads the latest snapshot and projects it for display.
// Reads go through a single-value cache revalidated on a fixed interval,
// so page loads don't hit the store on every request.
type StatusService struct {
	store port.KVStore
	ttl   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	cached    domain.StatusView
	fetchedAt time.Time
}

// NewStatusService creates a new status service with the given
// revalidation interval. A zero interval disables caching.
func NewStatusService(store port.KVStore, ttl time.Duration) *StatusService {
	return &StatusService{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Current returns the display view of the latest snapshot. A missing
// snapshot yields HasData=false; a store failure propagates.
func (s *StatusService) Current(ctx context.Context) (domain.StatusView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fetchedAt.IsZero() && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.cached, nil
	}

	view, err := s.load(ctx)
	if err != nil {
		return domain.StatusView{}, err
	}

	s.cached = view
	s.fetchedAt = s.now()
	return view, nil
}

func (s *StatusService) load(ctx context.Context) (domain.StatusView, error) {
	raw, err := s.store.Get(ctx, domain.SnapshotKey)
	if errors.Is(err, port.ErrSnapshotNotFound) {
		return domain.StatusView{HasData: false}, nil
	}
	if err != nil {
		return domain.StatusView{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return domain.StatusView{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return domain.NewStatusView(&snapshot), nil
}
