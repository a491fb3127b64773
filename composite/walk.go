package composite

import "errors"

// SkipChildren pode ser retornado por WalkFunc para não descer num contêiner.
var SkipChildren = errors.New("skip children")

type WalkFunc func(c Component, depth int) error

// Walk visita a árvore em pré-ordem (profundidade primeiro).
func Walk(root Component, fn WalkFunc) error {
	err := walk(root, 0, fn)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

func walk(c Component, depth int, fn WalkFunc) error {
	if err := fn(c, depth); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	ct, ok := c.(*Container)
	if !ok {
		return nil
	}
	for _, ch := range ct.children {
		if err := walk(ch, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Leaves conta as folhas alcançáveis a partir de root.
func Leaves(root Component) int {
	n := 0
	_ = Walk(root, func(c Component, _ int) error {
		if _, ok := c.(*Leaf); ok {
			n++
		}
		return nil
	})
	return n
}
