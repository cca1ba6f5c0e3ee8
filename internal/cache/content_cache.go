package cache

import (
	"time"

	"github.com/plasmadinah/cms-backend/internal/service"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	homeKey = "content:home"
	HomeTTL = 5 * time.Minute
)

// ContentCache caches the landing-page payload (hero banners plus service
// listings). Nil-safe: a missing Redis connection degrades to the database.
type ContentCache struct {
	redis *RedisCache
}

func NewContentCache(redis *RedisCache) *ContentCache {
	return &ContentCache{redis: redis}
}

func (cc *ContentCache) GetHome() (*service.HomeContent, bool) {
	if cc == nil || cc.redis == nil {
		return nil, false
	}
	data, err := cc.redis.Get(homeKey)
	if err != nil || data == nil {
		return nil, false
	}

	var content service.HomeContent
	if err := msgpack.Unmarshal(data, &content); err != nil {
		return nil, false
	}
	return &content, true
}

func (cc *ContentCache) SetHome(content *service.HomeContent) error {
	if cc == nil || cc.redis == nil {
		return nil
	}
	data, err := msgpack.Marshal(content)
	if err != nil {
		return err
	}
	return cc.redis.Set(homeKey, data, HomeTTL)
}

func (cc *ContentCache) InvalidateHome() error {
	if cc == nil || cc.redis == nil {
		return nil
	}
	return cc.redis.Delete(homeKey)
}
