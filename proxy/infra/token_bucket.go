package infra

import (
	"context"
	"sync"
	"time"

	"pattern-gateway/proxy/domain"

	"golang.org/x/time/rate"
)

var _ domain.Quota = (*TokenBucketQuota)(nil)

// TokenBucketQuota é uma cota com reposição no tempo (x/time/rate), com cache
// por chave e limpeza periódica de chaves inativas.
//
// Diferente de CounterQuota, o consumo "decai": precisa ser escolhida de forma
// explícita.
type TokenBucketQuota struct {
	mu           sync.Mutex
	entries      map[domain.Key]*bucketEntry
	rps          rate.Limit
	burst        int
	idleTTL      time.Duration
	cleanupEvery time.Duration
	now          func() time.Time
}

type bucketEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type TokenBucketOption func(*TokenBucketQuota)

func WithIdleTTL(d time.Duration) TokenBucketOption {
	return func(q *TokenBucketQuota) { q.idleTTL = d }
}

func WithCleanupEvery(d time.Duration) TokenBucketOption {
	return func(q *TokenBucketQuota) { q.cleanupEvery = d }
}

func NewTokenBucketQuota(rps float64, burst int, opts ...TokenBucketOption) *TokenBucketQuota {
	q := &TokenBucketQuota{
		entries:      make(map[domain.Key]*bucketEntry),
		rps:          rate.Limit(rps),
		burst:        burst,
		idleTTL:      15 * time.Minute,
		cleanupEvery: 2 * time.Minute,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *TokenBucketQuota) RPS() float64                { return float64(q.rps) }
func (q *TokenBucketQuota) Burst() int                  { return q.burst }
func (q *TokenBucketQuota) CleanupEvery() time.Duration { return q.cleanupEvery }

func (q *TokenBucketQuota) Take(_ context.Context, key domain.Key) (domain.Decision, error) {
	now := q.now()
	lim := q.limiter(key, now)

	r := lim.ReserveN(now, 1)
	if !r.OK() {
		// burst 0: nunca cabe
		return domain.Decision{Allowed: false, Limit: q.burst}, nil
	}
	if d := r.DelayFrom(now); d > 0 {
		r.CancelAt(now)
		return domain.Decision{Allowed: false, Used: q.burst, Limit: q.burst, RetryAfter: d}, nil
	}
	used := q.burst - int(lim.TokensAt(now))
	return domain.Decision{Allowed: true, Used: used, Limit: q.burst}, nil
}

func (q *TokenBucketQuota) limiter(key domain.Key, now time.Time) *rate.Limiter {
	q.mu.Lock()
	defer q.mu.Unlock()

	if ent, ok := q.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(q.rps, q.burst)
	q.entries[key] = &bucketEntry{lim: lim, lastSeen: now}
	return lim
}

func (q *TokenBucketQuota) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

func (q *TokenBucketQuota) Cleanup() {
	cutoff := q.now().Add(-q.idleTTL)

	q.mu.Lock()
	defer q.mu.Unlock()

	for k, ent := range q.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(q.entries, k)
		}
	}
}

// StartJanitor inicia uma goroutine que limpa chaves inativas periodicamente.
// Pare cancelando o contexto.
func (q *TokenBucketQuota) StartJanitor(ctx context.Context) {
	if q.cleanupEvery <= 0 {
		return
	}

	t := time.NewTicker(q.cleanupEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				q.Cleanup()
			}
		}
	}()
}
