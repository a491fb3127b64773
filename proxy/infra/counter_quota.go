package infra

import (
	"context"
	"sync"

	"pattern-gateway/proxy/domain"
)

var _ domain.Quota = (*CounterQuota)(nil)

// CounterQuota permite até `limit` usos por chave durante toda a vida do processo.
// Contagens nunca diminuem; bloqueios não incrementam.
type CounterQuota struct {
	mu    sync.Mutex
	limit int
	usage map[domain.Key]int
}

// NewCounterQuota cria a cota. limit <= 0 bloqueia todas as chaves.
func NewCounterQuota(limit int) *CounterQuota {
	if limit < 0 {
		limit = 0
	}
	return &CounterQuota{
		limit: limit,
		usage: make(map[domain.Key]int),
	}
}

func (q *CounterQuota) Limit() int { return q.limit }

func (q *CounterQuota) Take(_ context.Context, key domain.Key) (domain.Decision, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	used := q.usage[key]
	if used >= q.limit {
		return domain.Decision{Allowed: false, Used: used, Limit: q.limit}, nil
	}
	used++
	q.usage[key] = used
	return domain.Decision{Allowed: true, Used: used, Limit: q.limit}, nil
}

func (q *CounterQuota) Usage(key domain.Key) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.usage[key]
}

// Snapshot retorna uma cópia consistente de todas as contagens.
func (q *CounterQuota) Snapshot() map[domain.Key]int {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make(map[domain.Key]int, len(q.usage))
	for k, v := range q.usage {
		out[k] = v
	}
	return out
}
