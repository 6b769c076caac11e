package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fploracle/fpl-analytics/internal/domain/rawdata"
	"github.com/fploracle/fpl-analytics/internal/domain/snapshot"
	"github.com/fploracle/fpl-analytics/internal/platform/cache"
	"github.com/fploracle/fpl-analytics/internal/platform/resilience"
)

const snapshotCacheKey = "snapshot/current"

// RawSnapshotSource supplies the raw provider collections. Live retrieval,
// timeouts and retry policy all belong to the implementation, not the engine.
type RawSnapshotSource interface {
	FetchSnapshot(ctx context.Context) (rawdata.Snapshot, error)
}

// SnapshotProvider hands out the current normalized snapshot. Implemented
// by SnapshotService; consumed by every derivation service.
type SnapshotProvider interface {
	Current(ctx context.Context) (snapshot.Snapshot, error)
}

// SnapshotService owns raw-to-canonical snapshot building. A snapshot is
// built once per cache window and shared; concurrent cold fetches collapse
// into a single upstream call.
type SnapshotService struct {
	source RawSnapshotSource
	store  *cache.Store
	flight resilience.SingleFlight
	now    func() time.Time
}

func NewSnapshotService(source RawSnapshotSource, store *cache.Store) *SnapshotService {
	return &SnapshotService{
		source: source,
		store:  store,
		now:    time.Now,
	}
}

// Current returns the cached snapshot, building a fresh one when the cache
// is cold. An empty upstream payload yields an empty snapshot, not an error.
func (s *SnapshotService) Current(ctx context.Context) (snapshot.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.Current")
	defer span.End()

	if s.store != nil {
		if cached, ok := s.store.Get(ctx, snapshotCacheKey); ok {
			if snap, ok := cached.(snapshot.Snapshot); ok {
				return snap, nil
			}
		}
	}

	out, err, _ := s.flight.Do(snapshotCacheKey, func() (any, error) {
		return s.build(ctx)
	})
	if err != nil {
		return snapshot.Snapshot{}, err
	}

	snap, ok := out.(snapshot.Snapshot)
	if !ok {
		return snapshot.Snapshot{}, fmt.Errorf("unexpected snapshot payload type %T", out)
	}
	return snap, nil
}

// Refresh drops the cached snapshot and builds a new one immediately.
func (s *SnapshotService) Refresh(ctx context.Context) (snapshot.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SnapshotService.Refresh")
	defer span.End()

	if s.store != nil {
		s.store.Delete(ctx, snapshotCacheKey)
	}

	out, err, _ := s.flight.Do(snapshotCacheKey, func() (any, error) {
		return s.build(ctx)
	})
	if err != nil {
		return snapshot.Snapshot{}, err
	}

	snap, ok := out.(snapshot.Snapshot)
	if !ok {
		return snapshot.Snapshot{}, fmt.Errorf("unexpected snapshot payload type %T", out)
	}
	return snap, nil
}

func (s *SnapshotService) build(ctx context.Context) (snapshot.Snapshot, error) {
	raw, err := s.source.FetchSnapshot(ctx)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("%w: fetch snapshot: %v", ErrDependencyUnavailable, err)
	}

	snap := NormalizeSnapshot(raw, s.now().UTC())
	if s.store != nil {
		s.store.Set(ctx, snapshotCacheKey, snap)
	}
	return snap, nil
}
