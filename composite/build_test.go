package composite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shipmentYAML = `
name: Large Box
children:
  - name: Tablet
    value: 1.5
  - name: Small Box
    children:
      - name: Laptop
        value: 5
      - name: Headphones
        value: 0.5
`

func TestParse_Shipment(t *testing.T) {
	root, err := Parse([]byte(shipmentYAML))
	require.NoError(t, err)

	c, ok := root.(*Container)
	require.True(t, ok)
	assert.Equal(t, "Large Box", c.Name())
	assert.InDelta(t, 7.0, c.Value(), 1e-9)
	assert.Equal(t, 3, Leaves(c))
}

func TestParse_EmptyContainerKind(t *testing.T) {
	root, err := Parse([]byte("name: box\nkind: container\n"))
	require.NoError(t, err)

	c, ok := root.(*Container)
	require.True(t, ok)
	assert.Zero(t, c.Value())
}

func TestParse_RejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte("name: box\nweight: 3\n"))
	assert.Error(t, err)
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		spec NodeSpec
	}{
		{"missing name", NodeSpec{Value: 1}},
		{"unknown kind", NodeSpec{Name: "x", Kind: "bag"}},
		{"container with value", NodeSpec{Name: "x", Value: 2, Children: []NodeSpec{{Name: "y", Value: 1}}}},
		{"leaf with children", NodeSpec{Name: "x", Kind: "leaf", Children: []NodeSpec{{Name: "y", Value: 1}}}},
		{"nested missing name", NodeSpec{Name: "x", Children: []NodeSpec{{Value: 1}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(tc.spec)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(p, []byte(shipmentYAML), 0o644))

	root, err := LoadFile(p)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, root.Value(), 1e-9)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
