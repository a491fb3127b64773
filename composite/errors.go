package composite

import (
	"errors"
	"fmt"
)

var (
	ErrCycle        = errors.New("component cycle")
	ErrNilComponent = errors.New("nil component")
	ErrNotFound     = errors.New("component not found")
)

// StructuralError indica uma operação que violaria a forma da árvore
// (ciclo ou componente nulo).
type StructuralError struct {
	Op        string
	Container string
	Child     string
	Err       error
}

func (e *StructuralError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Child == "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Container, e.Err)
	}
	return fmt.Sprintf("%s %q into %q: %v", e.Op, e.Child, e.Container, e.Err)
}

func (e *StructuralError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFoundError é retornado por Remove quando o componente não é filho direto.
type NotFoundError struct {
	Container string
	Child     string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("remove %q from %q: %v", e.Child, e.Container, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
