package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"authapi/internal/domain/entity"
	"authapi/internal/domain/repository"
	"authapi/internal/errors"
)

// tokenRepository stores issued token pairs in a mutex-guarded map.
type tokenRepository struct {
	mu    sync.RWMutex
	pairs map[uuid.UUID]*entity.TokenPair
}

// NewTokenRepository is the constructor for the in-memory token store.
func NewTokenRepository() repository.TokenRepository {
	return &tokenRepository{pairs: make(map[uuid.UUID]*entity.TokenPair)}
}

func (r *tokenRepository) Insert(_ context.Context, pair *entity.TokenPair) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pairs[pair.ID]; exists {
		return errors.Errorf("token pair %s already exists", pair.ID)
	}
	r.pairs[pair.ID] = clonePair(pair)

	return nil
}

func (r *tokenRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.TokenPair, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pair, ok := r.pairs[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrTokenPairNotFound)
	}

	return clonePair(pair), nil
}

func (r *tokenRepository) FindByAccessToken(_ context.Context, token string) (*entity.TokenPair, error) {
	return r.findBy(func(pair *entity.TokenPair) bool { return pair.AccessToken == token })
}

func (r *tokenRepository) FindByRefreshToken(_ context.Context, token string) (*entity.TokenPair, error) {
	return r.findBy(func(pair *entity.TokenPair) bool { return pair.RefreshToken == token })
}

func (r *tokenRepository) DeleteByAccountID(_ context.Context, accountID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for id, pair := range r.pairs {
		if pair.AccountID == accountID {
			delete(r.pairs, id)
			deleted++
		}
	}

	return deleted, nil
}

func (r *tokenRepository) findBy(match func(*entity.TokenPair) bool) (*entity.TokenPair, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, pair := range r.pairs {
		if match(pair) {
			return clonePair(pair), nil
		}
	}

	return nil, errors.WithStack(repository.ErrTokenPairNotFound)
}

func clonePair(pair *entity.TokenPair) *entity.TokenPair {
	clone := *pair
	return &clone
}
