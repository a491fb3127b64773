package infra

import (
	"context"
	"fmt"
	"strings"

	"pattern-gateway/proxy/domain"

	"github.com/redis/go-redis/v9"
)

var _ domain.Quota = (*RedisQuota)(nil)

// takeScript faz check-and-increment atômico: só incrementa se used < limit.
// Retorna {allowed(0|1), used}.
var takeScript = redis.NewScript(`
local used = tonumber(redis.call("GET", KEYS[1]) or "0")
local limit = tonumber(ARGV[1])
if used < limit then
  used = redis.call("INCR", KEYS[1])
  return {1, used}
end
return {0, used}
`)

// RedisQuota tem a mesma semântica de CounterQuota (sem expiração),
// mas compartilhada entre várias instâncias do gateway.
type RedisQuota struct {
	rdb    redis.UniversalClient
	limit  int
	prefix string
}

type RedisQuotaOption func(*RedisQuota)

func WithQuotaPrefix(prefix string) RedisQuotaOption {
	return func(q *RedisQuota) { q.prefix = strings.Trim(prefix, ":") }
}

func NewRedisQuota(rdb redis.UniversalClient, limit int, opts ...RedisQuotaOption) *RedisQuota {
	if limit < 0 {
		limit = 0
	}
	q := &RedisQuota{
		rdb:    rdb,
		limit:  limit,
		prefix: "quota:usage",
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *RedisQuota) Limit() int { return q.limit }

func (q *RedisQuota) key(k domain.Key) string {
	return q.prefix + ":" + string(k)
}

func (q *RedisQuota) Take(ctx context.Context, key domain.Key) (domain.Decision, error) {
	if q.limit == 0 {
		return domain.Decision{Allowed: false, Limit: 0}, nil
	}
	res, err := takeScript.Run(ctx, q.rdb, []string{q.key(key)}, q.limit).Int64Slice()
	if err != nil {
		return domain.Decision{}, fmt.Errorf("redis quota take %q: %w", key, err)
	}
	if len(res) != 2 {
		return domain.Decision{}, fmt.Errorf("redis quota take %q: unexpected reply %v", key, res)
	}
	return domain.Decision{
		Allowed: res[0] == 1,
		Used:    int(res[1]),
		Limit:   q.limit,
	}, nil
}

func (q *RedisQuota) Usage(ctx context.Context, key domain.Key) (int, error) {
	n, err := q.rdb.Get(ctx, q.key(key)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis quota usage %q: %w", key, err)
	}
	return n, nil
}
