package composite

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NodeSpec descreve uma árvore de forma declarativa.
// Um nó com Children (ou Kind "container") vira Container; caso contrário Leaf.
type NodeSpec struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind,omitempty"`
	Value    float64    `yaml:"value,omitempty"`
	Children []NodeSpec `yaml:"children,omitempty"`
}

func (n NodeSpec) isContainer() bool {
	return n.Kind == "container" || len(n.Children) > 0
}

// Build cria os componentes explicitamente, na ordem declarada.
func Build(spec NodeSpec) (Component, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("build: node name is required")
	}
	switch spec.Kind {
	case "", "leaf", "container":
	default:
		return nil, fmt.Errorf("build %q: unknown kind %q", spec.Name, spec.Kind)
	}
	if spec.Kind == "leaf" && len(spec.Children) > 0 {
		return nil, fmt.Errorf("build %q: leaf cannot have children", spec.Name)
	}
	if !spec.isContainer() {
		return NewLeaf(spec.Name, spec.Value), nil
	}
	if spec.Value != 0 {
		return nil, fmt.Errorf("build %q: container cannot carry a value", spec.Name)
	}

	c := &Container{name: spec.Name}
	for _, child := range spec.Children {
		comp, err := Build(child)
		if err != nil {
			return nil, err
		}
		if err := c.Add(comp); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Parse lê um documento YAML com um único nó raiz.
func Parse(data []byte) (Component, error) {
	var spec NodeSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parse tree: %w", err)
	}
	return Build(spec)
}

func LoadFile(path string) (Component, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree %s: %w", path, err)
	}
	return Parse(data)
}

// Shipment é a remessa de exemplo: Large{Tablet, Small{Laptop, Headphones}}.
func Shipment() *Container {
	return mustContainer("Large Box",
		NewLeaf("Tablet", 1.5),
		mustContainer("Small Box",
			NewLeaf("Laptop", 5),
			NewLeaf("Headphones", 0.5),
		),
	)
}

// mustContainer só serve para árvores literais: folhas novas nunca formam ciclo.
func mustContainer(name string, children ...Component) *Container {
	c, err := NewContainer(name, children...)
	if err != nil {
		panic(err)
	}
	return c
}
