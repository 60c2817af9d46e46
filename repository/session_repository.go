package repository

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"apartment-journey/domain"
	"apartment-journey/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const sessionKeyPrefix = "wizard:"

type SessionRepository interface {
	Save(ctx context.Context, state domain.WizardState) error
	Get(ctx context.Context, id string) (domain.WizardState, error)
	Delete(ctx context.Context, id string) error
}

// CacheSessionRepository stores wizard sessions as JSON in a cache. Each save
// refreshes the TTL, so a session lives as long as it is being used.
type CacheSessionRepository struct {
	cache CacheRepository
	ttl   time.Duration
}

func NewCacheSessionRepository(cache CacheRepository, ttl time.Duration) *CacheSessionRepository {
	return &CacheSessionRepository{cache: cache, ttl: ttl}
}

func (r *CacheSessionRepository) Save(ctx context.Context, state domain.WizardState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.cache.Set(ctx, sessionKeyPrefix+state.ID, string(data), r.ttl); err != nil {
		return fmt.Errorf("cache.Set: %w", err)
	}

	return nil
}

func (r *CacheSessionRepository) Get(ctx context.Context, id string) (domain.WizardState, error) {
	data, ok, err := r.cache.Get(ctx, sessionKeyPrefix+id)
	if err != nil {
		return domain.WizardState{}, fmt.Errorf("cache.Get: %w", err)
	}
	if !ok {
		return domain.WizardState{}, domain.NewError(errcodes.SessionNotFound, fmt.Sprintf("session %q not found", id))
	}

	var state domain.WizardState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return domain.WizardState{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return state, nil
}

func (r *CacheSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, sessionKeyPrefix+id); err != nil {
		return fmt.Errorf("cache.Delete: %w", err)
	}
	return nil
}
