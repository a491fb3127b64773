package infra

import (
	"context"
	"sync"

	"pattern-gateway/proxy/domain"
)

type Counters struct {
	Forwarded int64
	Denied    int64
	Limited   int64
	Busy      int64
}

func (c *Counters) add(o domain.Outcome) {
	switch o {
	case domain.Forwarded:
		c.Forwarded++
	case domain.Denied:
		c.Denied++
	case domain.Limited:
		c.Limited++
	case domain.Busy:
		c.Busy++
	}
}

// MemoryStatsStore é uma implementação simples em memória.
// Útil para testes e para a CLI de demonstração.
//
// Não faz expiração e não é indicada para produção.
type MemoryStatsStore struct {
	mu      sync.Mutex
	total   Counters
	byRoute map[string]Counters
	byKey   map[domain.Key]Counters

	trackKeys bool
}

type MemoryStatsOption func(*MemoryStatsStore)

func WithTrackKeys(track bool) MemoryStatsOption {
	return func(s *MemoryStatsStore) { s.trackKeys = track }
}

func NewMemoryStatsStore(opts ...MemoryStatsOption) *MemoryStatsStore {
	s := &MemoryStatsStore{
		byRoute: make(map[string]Counters),
		byKey:   make(map[domain.Key]Counters),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func routeOf(ev domain.StatsEvent) string {
	if ev.Method == "" {
		return ev.Path
	}
	return ev.Method + " " + ev.Path
}

func (s *MemoryStatsStore) Record(_ context.Context, ev domain.StatsEvent) error {
	route := routeOf(ev)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.total.add(ev.Outcome)
	c := s.byRoute[route]
	c.add(ev.Outcome)
	s.byRoute[route] = c
	if s.trackKeys {
		k := s.byKey[ev.Key]
		k.add(ev.Outcome)
		s.byKey[ev.Key] = k
	}
	return nil
}

func (s *MemoryStatsStore) Total() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *MemoryStatsStore) ByRoute() map[string]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Counters, len(s.byRoute))
	for k, v := range s.byRoute {
		out[k] = v
	}
	return out
}

func (s *MemoryStatsStore) ByKey() map[domain.Key]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[domain.Key]Counters, len(s.byKey))
	for k, v := range s.byKey {
		out[k] = v
	}
	return out
}
