package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/amitiii/udaan-next-gen-translator-api/pkg/logger"
	"github.com/amitiii/udaan-next-gen-translator-api/pkg/redis"
	"go.uber.org/zap"
)

// ResultCache is a Redis lookaside cache for successful translations.
// Cache failures are logged and treated as misses; they never fail a
// translation request.
type ResultCache struct {
	redis *redis.Service
	ttl   time.Duration
}

// NewResultCache wraps a Redis service as a translation result cache.
func NewResultCache(svc *redis.Service, ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &ResultCache{redis: svc, ttl: ttl}
}

// Get returns a previously cached translation for (targetLang, text).
func (c *ResultCache) Get(ctx context.Context, targetLang, text string) (string, bool) {
	val, err := c.redis.GetValue(ctx, c.key(targetLang, text))
	if err != nil {
		if !errors.Is(err, redis.ErrKeyNotExist) {
			logger.Base().Debug("result cache lookup failed", zap.Error(err))
		}
		return "", false
	}
	return val, true
}

// Set stores a successful translation.
func (c *ResultCache) Set(ctx context.Context, targetLang, text, translated string) {
	if err := c.redis.SetValue(ctx, c.key(targetLang, text), translated, c.ttl); err != nil {
		logger.Base().Debug("result cache store failed", zap.Error(err))
	}
}

func (c *ResultCache) key(targetLang, text string) string {
	digest := sha256.Sum256([]byte(text))
	return c.redis.GenerateKey(redis.TRANSLATION_RESULT,
		fmt.Sprintf("%s:%s", targetLang, hex.EncodeToString(digest[:])))
}
