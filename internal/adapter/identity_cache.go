package adapter

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/models"
)

// identityCacheCapacity bounds the number of remembered principals.
const identityCacheCapacity = 10_000

type cachedIdentityDirectory struct {
	next  IdentityDirectory
	cache *ttlcache.Cache[string, models.Grantee]

	logger *logger.Logger
}

// NewCachedIdentityDirectory remembers successful lookups of next for ttl.
// Failed lookups are never cached. A non-positive ttl returns next as is.
func NewCachedIdentityDirectory(next IdentityDirectory, ttl time.Duration, logger *logger.Logger) IdentityDirectory {
	if ttl <= 0 {
		return next
	}

	cache := ttlcache.New[string, models.Grantee](
		ttlcache.WithTTL[string, models.Grantee](ttl),
		ttlcache.WithCapacity[string, models.Grantee](identityCacheCapacity),
		ttlcache.WithDisableTouchOnHit[string, models.Grantee](),
	)

	return &cachedIdentityDirectory{next: next, cache: cache, logger: logger}
}

func (d *cachedIdentityDirectory) LookupUser(ctx context.Context, id string) (models.Grantee, error) {
	if item := d.cache.Get(id); item != nil {
		return item.Value(), nil
	}

	user, err := d.next.LookupUser(ctx, id)
	if err != nil {
		return models.Grantee{}, err
	}

	d.cache.Set(id, user, ttlcache.DefaultTTL)
	d.logger.Debug().
		Str("func", "cachedIdentityDirectory.LookupUser").
		Str("user_id", id).
		Msg("identity cached")
	return user, nil
}
