package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

func nowUTC() time.Time { return time.Now().UTC() }

// buildCacheKey hashes the query string so filter combinations with long
// values still produce bounded keys.
func buildCacheKey(path, rawQuery string) string {
	sum := sha256.Sum256([]byte(rawQuery))
	return "report:" + path + ":" + hex.EncodeToString(sum[:8])
}

// ---- Redis helpers ----
func loadEntry(ctx context.Context, rdb *redis.Client, key string) (cacheEntry, error) {
	var e cacheEntry
	v, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	_ = json.Unmarshal(v, &e)
	return e, nil
}

func saveEntry(ctx context.Context, rdb *redis.Client, key string, entry cacheEntry, ttl time.Duration) error {
	payload, _ := json.Marshal(entry)
	return rdb.Set(ctx, key, payload, ttl).Err()
}
