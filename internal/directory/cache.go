// Package directory fronts the read-only user and lawyer directories with an
// in-process TTL cache.
package directory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/dtroode/casekeeper-server/internal/model"
)

var (
	_ model.UserDirectory   = (*CachedUsers)(nil)
	_ model.LawyerDirectory = (*CachedLawyers)(nil)
)

// CachedUsers caches lookups by id and role. Misses are not cached.
type CachedUsers struct {
	next  model.UserDirectory
	cache *cache.Cache
}

func NewCachedUsers(next model.UserDirectory, ttl time.Duration) *CachedUsers {
	return &CachedUsers{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (d *CachedUsers) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	key := "user:" + id.String()
	if cached, found := d.cache.Get(key); found {
		return cached.(model.User), nil
	}

	user, err := d.next.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	d.cache.Set(key, user, cache.DefaultExpiration)

	return user, nil
}

func (d *CachedUsers) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	key := "role:" + string(role)
	if cached, found := d.cache.Get(key); found {
		return cached.([]model.User), nil
	}

	users, err := d.next.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	d.cache.Set(key, users, cache.DefaultExpiration)

	return users, nil
}

// CachedLawyers caches lawyer lookups by id. Misses are not cached.
type CachedLawyers struct {
	next  model.LawyerDirectory
	cache *cache.Cache
}

func NewCachedLawyers(next model.LawyerDirectory, ttl time.Duration) *CachedLawyers {
	return &CachedLawyers{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (d *CachedLawyers) GetByID(ctx context.Context, id uuid.UUID) (model.Lawyer, error) {
	key := id.String()
	if cached, found := d.cache.Get(key); found {
		return cached.(model.Lawyer), nil
	}

	lawyer, err := d.next.GetByID(ctx, id)
	if err != nil {
		return model.Lawyer{}, err
	}
	d.cache.Set(key, lawyer, cache.DefaultExpiration)

	return lawyer, nil
}
