package composite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_ShipmentTotal(t *testing.T) {
	large := Shipment()

	assert.InDelta(t, 7.0, large.Value(), 1e-9)
	assert.Equal(t, 2, large.Len())
	assert.Equal(t, 3, Leaves(large))

	var names []string
	require.NoError(t, Walk(large, func(c Component, _ int) error {
		names = append(names, c.Name())
		return nil
	}))
	assert.Equal(t, []string{"Large Box", "Tablet", "Small Box", "Laptop", "Headphones"}, names)
}

func TestMustContainer_PanicsOnNilChild(t *testing.T) {
	assert.Panics(t, func() { mustContainer("bad", nil) })
}

func TestContainer_EmptyIsZero(t *testing.T) {
	c, err := NewContainer("empty")
	require.NoError(t, err)
	assert.Zero(t, c.Value())
	assert.Zero(t, c.Len())
}

func TestContainer_SumIndependentOfNesting(t *testing.T) {
	values := []float64{1, 2.5, 3, 0.25, 10}

	flat, err := NewContainer("flat")
	require.NoError(t, err)
	for _, v := range values {
		require.NoError(t, flat.Add(NewLeaf("x", v)))
	}

	// cada folha numa caixa mais funda que a anterior
	deep, err := NewContainer("deep")
	require.NoError(t, err)
	cur := deep
	for _, v := range values {
		require.NoError(t, cur.Add(NewLeaf("x", v)))
		next, err := NewContainer("inner")
		require.NoError(t, err)
		require.NoError(t, cur.Add(next))
		cur = next
	}

	assert.InDelta(t, 16.75, flat.Value(), 1e-9)
	assert.InDelta(t, flat.Value(), deep.Value(), 1e-9)
}

func TestContainer_AddKeepsOrderAndDuplicates(t *testing.T) {
	c, err := NewContainer("box")
	require.NoError(t, err)

	a := NewLeaf("a", 1)
	b := NewLeaf("b", 2)
	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(b))
	require.NoError(t, c.Add(a))

	got := c.Children()
	require.Len(t, got, 3)
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])
	assert.Same(t, a, got[2])
	assert.InDelta(t, 4.0, c.Value(), 1e-9)
}

func TestContainer_ChildrenReturnsCopy(t *testing.T) {
	c, err := NewContainer("box", NewLeaf("a", 1))
	require.NoError(t, err)

	got := c.Children()
	got[0] = NewLeaf("b", 100)

	assert.InDelta(t, 1.0, c.Value(), 1e-9)
}

func TestContainer_AddSelfIsCycle(t *testing.T) {
	c, err := NewContainer("box")
	require.NoError(t, err)

	err = c.Add(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCycle))

	var se *StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "box", se.Container)
	assert.Zero(t, c.Len())
}

func TestContainer_AddAncestorIsCycle(t *testing.T) {
	inner, err := NewContainer("inner")
	require.NoError(t, err)
	mid, err := NewContainer("mid", inner)
	require.NoError(t, err)
	outer, err := NewContainer("outer", mid)
	require.NoError(t, err)

	err = inner.Add(outer)
	assert.ErrorIs(t, err, ErrCycle)
	assert.Zero(t, inner.Len())

	// a mesma sub-árvore em dois ramos não é ciclo
	other, err := NewContainer("other")
	require.NoError(t, err)
	require.NoError(t, other.Add(inner))
	require.NoError(t, outer.Add(other))
}

func TestContainer_AddNil(t *testing.T) {
	c, err := NewContainer("box")
	require.NoError(t, err)

	var leaf *Leaf
	assert.ErrorIs(t, c.Add(nil), ErrNilComponent)
	assert.ErrorIs(t, c.Add(leaf), ErrNilComponent)
}

func TestContainer_RemoveFirstOccurrence(t *testing.T) {
	a := NewLeaf("a", 1)
	b := NewLeaf("b", 2)
	c, err := NewContainer("box", a, b, a)
	require.NoError(t, err)

	require.NoError(t, c.Remove(a))

	got := c.Children()
	require.Len(t, got, 2)
	assert.Same(t, b, got[0])
	assert.Same(t, a, got[1])
}

func TestContainer_RemoveEqualLeaf(t *testing.T) {
	c, err := NewContainer("box", NewLeaf("a", 1))
	require.NoError(t, err)

	require.NoError(t, c.Remove(NewLeaf("a", 1)))
	assert.Zero(t, c.Len())
}

func TestContainer_RemoveMissing(t *testing.T) {
	sub, err := NewContainer("sub")
	require.NoError(t, err)
	c, err := NewContainer("box", NewLeaf("a", 1))
	require.NoError(t, err)

	err = c.Remove(NewLeaf("a", 2))
	assert.ErrorIs(t, err, ErrNotFound)

	var nf *NotFoundError
	require.ErrorAs(t, c.Remove(sub), &nf)
	assert.Equal(t, "sub", nf.Child)
	assert.Equal(t, 1, c.Len())
}

func TestContainer_RemoveDoesNotTouchChild(t *testing.T) {
	small := Shipment().Children()[1].(*Container)
	large := Shipment()
	require.NoError(t, large.Add(small))

	require.NoError(t, large.Remove(small))
	assert.InDelta(t, 5.5, small.Value(), 1e-9)
}

func TestContainer_ContainersCompareByIdentity(t *testing.T) {
	a, err := NewContainer("same")
	require.NoError(t, err)
	b, err := NewContainer("same")
	require.NoError(t, err)
	c, err := NewContainer("box", a)
	require.NoError(t, err)

	assert.ErrorIs(t, c.Remove(b), ErrNotFound)
	require.NoError(t, c.Remove(a))
}
