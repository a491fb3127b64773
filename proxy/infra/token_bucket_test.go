package infra

import (
	"context"
	"testing"
	"time"

	"pattern-gateway/proxy/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketQuota_SameKeyReusesLimiter(t *testing.T) {
	q := NewTokenBucketQuota(10, 1)
	now := time.Now()

	l1 := q.limiter("k", now)
	l2 := q.limiter("k", now)
	assert.Same(t, l1, l2)
	assert.Equal(t, 1, q.Len())
}

func TestTokenBucketQuota_LowBurstRejectsSecondImmediateTake(t *testing.T) {
	q := NewTokenBucketQuota(0.02, 1)
	ctx := context.Background()

	dec, err := q.Take(ctx, "k")
	require.NoError(t, err)
	assert.True(t, dec.Allowed)

	dec, err = q.Take(ctx, "k")
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Greater(t, dec.RetryAfter, time.Second)
	assert.Equal(t, 1, dec.Limit)

	// outra chave tem seu próprio bucket
	dec, err = q.Take(ctx, "other")
	require.NoError(t, err)
	assert.True(t, dec.Allowed)
}

func TestTokenBucketQuota_RefillsOverTime(t *testing.T) {
	now := time.Now()
	q := NewTokenBucketQuota(1, 1)
	q.now = func() time.Time { return now }
	ctx := context.Background()

	dec, _ := q.Take(ctx, "k")
	require.True(t, dec.Allowed)
	dec, _ = q.Take(ctx, "k")
	require.False(t, dec.Allowed)

	now = now.Add(1100 * time.Millisecond)
	dec, _ = q.Take(ctx, "k")
	assert.True(t, dec.Allowed)
}

func TestTokenBucketQuota_ZeroBurstRejects(t *testing.T) {
	q := NewTokenBucketQuota(10, 0)
	dec, err := q.Take(context.Background(), domain.Key("k"))
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
}

func TestTokenBucketQuota_CleanupRemovesIdleEntries(t *testing.T) {
	now := time.Now()
	q := NewTokenBucketQuota(10, 1, WithIdleTTL(time.Minute), WithCleanupEvery(0))
	q.now = func() time.Time { return now }

	before := q.limiter("k", now)
	now = now.Add(2 * time.Minute)
	q.Cleanup()
	assert.Zero(t, q.Len())

	after := q.limiter("k", now)
	assert.NotSame(t, before, after)
}

func TestTokenBucketQuota_StartJanitorNoopWithoutInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewTokenBucketQuota(10, 1, WithCleanupEvery(0))
	q.StartJanitor(ctx)
	assert.Zero(t, q.CleanupEvery())
}
