package infra

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"pattern-gateway/proxy/domain"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Os testes abaixo precisam de um Redis real: REDIS_ADDR=localhost:6379.
func redisClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rdb.Ping(ctx).Err())
	return rdb
}

func testPrefix(t *testing.T) string {
	return fmt.Sprintf("test:%s:%d", t.Name(), time.Now().UnixNano())
}

func TestRedisQuota_LifetimeCounter(t *testing.T) {
	rdb := redisClient(t)
	prefix := testPrefix(t)
	q := NewRedisQuota(rdb, 3, WithQuotaPrefix(prefix))
	ctx := context.Background()
	t.Cleanup(func() { rdb.Del(context.Background(), prefix+":alice", prefix+":bob") })

	want := []bool{true, true, true, false}
	for i, w := range want {
		dec, err := q.Take(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, w, dec.Allowed, "call %d", i+1)
	}

	used, err := q.Usage(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, used)

	dec, err := q.Take(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, dec.Allowed)

	used, err = q.Usage(ctx, domain.Key("nobody"))
	require.NoError(t, err)
	assert.Zero(t, used)
}

func TestRedisQuota_ZeroLimit(t *testing.T) {
	q := NewRedisQuota(nil, 0)
	dec, err := q.Take(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
}

func TestRedisStatsStore_Record(t *testing.T) {
	rdb := redisClient(t)
	prefix := testPrefix(t)
	s := NewRedisStatsStore(rdb, WithStatsPrefix(prefix), WithStatsTrackKeys(true), WithStatsBucket("none"))
	ctx := context.Background()
	t.Cleanup(func() {
		rdb.Del(context.Background(), prefix+":total", prefix+":route", prefix+":key:alice")
	})

	require.NoError(t, s.Record(ctx, domain.StatsEvent{Key: "alice", Outcome: domain.Forwarded, Path: "/home"}))
	require.NoError(t, s.Record(ctx, domain.StatsEvent{Key: "alice", Outcome: domain.Limited, Path: "/home"}))

	total, err := rdb.HGetAll(ctx, prefix+":total").Result()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"forwarded": "1", "limited": "1"}, total)

	route, err := rdb.HGet(ctx, prefix+":route", "/home:limited").Result()
	require.NoError(t, err)
	assert.Equal(t, "1", route)
}

func TestRedisStatsStore_NilIsNoop(t *testing.T) {
	var s *RedisStatsStore
	assert.NoError(t, s.Record(context.Background(), domain.StatsEvent{}))
}

func TestRedisStatsStore_KeyStatsKey(t *testing.T) {
	s := NewRedisStatsStore(nil, WithStatsPrefix("gw:stats:"))
	assert.Equal(t, "gw:stats:key:alice", s.KeyStatsKey("alice"))
	assert.Equal(t, "gw:stats:key:", s.KeyStatsKey(""))
	assert.NotEqual(t, s.KeyStatsKey(""), s.KeyStatsKey(" "))
}

func TestRedisStatsStore_EmptyUserIsCounted(t *testing.T) {
	rdb := redisClient(t)
	prefix := testPrefix(t)
	s := NewRedisStatsStore(rdb, WithStatsPrefix(prefix), WithStatsTrackKeys(true), WithStatsBucket("none"))
	mem := NewMemoryStatsStore(WithTrackKeys(true))
	ctx := context.Background()
	t.Cleanup(func() {
		rdb.Del(context.Background(), prefix+":total", prefix+":route", s.KeyStatsKey(""))
	})

	ev := domain.StatsEvent{Key: "", Outcome: domain.Limited, Path: "/home"}
	require.NoError(t, s.Record(ctx, ev))
	require.NoError(t, mem.Record(ctx, ev))

	got, err := rdb.HGet(ctx, s.KeyStatsKey(""), "limited").Result()
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	assert.Equal(t, Counters{Limited: 1}, mem.ByKey()[""])
}
