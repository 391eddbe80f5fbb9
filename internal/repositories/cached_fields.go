package repositories

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type fieldRepository interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// CachedFields memoizes positive FieldOfStudy existence checks. The filter
// path hits this lookup on every request carrying a specialization, while
// the set of fields changes rarely.
type CachedFields struct {
	repo  fieldRepository
	cache *gocache.Cache
}

func NewCachedFields(repo fieldRepository) *CachedFields {
	return &CachedFields{repo: repo, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedFields) Exists(ctx context.Context, id uint) (bool, error) {

	key := strconv.FormatUint(uint64(id), 10)
	if _, found := c.cache.Get(key); found {
		return true, nil
	}

	exists, err := c.repo.Exists(ctx, id)
	if exists {
		if err = c.cache.Add(key, struct{}{}, gocache.DefaultExpiration); err != nil {
			return exists, err
		}
	}

	return exists, err
}
