package infra

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotPool_BlocksWhenFullAndFreesOnRelease(t *testing.T) {
	p := NewSlotPool(1)
	assert.Equal(t, 1, p.Capacity())

	release, ok := p.Acquire(context.Background())
	require.True(t, ok)
	assert.Equal(t, 1, p.InFlight())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, ok = p.Acquire(ctx)
	assert.False(t, ok)

	release()
	release() // segunda chamada não libera vaga alheia
	assert.Zero(t, p.InFlight())

	release2, ok := p.Acquire(context.Background())
	require.True(t, ok)
	assert.Equal(t, 1, p.InFlight())
	release2()
}

func TestSlotPool_ZeroCapacityRejects(t *testing.T) {
	for _, n := range []int{0, -3} {
		p := NewSlotPool(n)
		assert.Zero(t, p.Capacity())
		_, ok := p.Acquire(context.Background())
		assert.False(t, ok)
	}
}

func TestSlotPool_CanceledContext(t *testing.T) {
	p := NewSlotPool(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := p.Acquire(ctx)
	assert.False(t, ok)
	assert.Zero(t, p.InFlight())
}
