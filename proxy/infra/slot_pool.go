package infra

import (
	"context"
	"sync"

	"pattern-gateway/proxy/domain"
)

var _ domain.Slots = (*SlotPool)(nil)

// SlotPool é um semáforo de vagas sobre channel. Capacidade 0 recusa tudo.
type SlotPool struct {
	sem chan struct{}
}

func NewSlotPool(capacity int) *SlotPool {
	if capacity < 0 {
		capacity = 0
	}
	return &SlotPool{sem: make(chan struct{}, capacity)}
}

func (p *SlotPool) Capacity() int { return cap(p.sem) }

func (p *SlotPool) InFlight() int { return len(p.sem) }

func (p *SlotPool) Acquire(ctx context.Context) (func(), bool) {
	if cap(p.sem) == 0 || ctx.Err() != nil {
		return nil, false
	}
	select {
	case p.sem <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-p.sem }) }, true
	case <-ctx.Done():
		return nil, false
	}
}
