package aiusage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// counterTTL outlives the daily window so stale counters expire on their own.
const counterTTL = 48 * time.Hour

// useScript decrements the counter only when it exists and is still positive.
// Returns -1 for an uninitialised client, -2 when the quota is exhausted,
// and the remaining count (>= 0) on success.
var useScript = redis.NewScript(`
local v = redis.call('GET', KEYS[1])
if not v then return -1 end
if tonumber(v) <= 0 then return -2 end
return redis.call('DECR', KEYS[1])
`)

// Store handles per-client generation counters in Redis.
type Store struct {
	rdb *redis.Client
}

// NewStore returns a Store backed by the given Redis client.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// key stamps the counter with the current day, so a new day starts a fresh allowance.
func (s *Store) key(clientID string) string {
	return "aiquota:" + clientID + ":" + time.Now().Format("2006-01-02")
}

// UseGeneration atomically checks today's quota and deducts one generation.
// Returns ErrQuotaExhausted when the counter is absent or already at zero.
func (s *Store) UseGeneration(ctx context.Context, clientID string) error {
	n, err := useScript.Run(ctx, s.rdb, []string{s.key(clientID)}).Int64()
	if err != nil {
		return err
	}
	if n < 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// EnsureClient initialises today's counter for clientID with the default allowance.
// An existing counter is left untouched (SET NX).
func (s *Store) EnsureClient(ctx context.Context, clientID string) error {
	return s.rdb.SetNX(ctx, s.key(clientID), DefaultGenerations, counterTTL).Err()
}
