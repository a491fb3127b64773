package composite

// Component é a capacidade comum a folhas e contêineres.
type Component interface {
	Name() string
	Value() float64
}

// Leaf guarda um valor fixo. Imutável depois de criada.
type Leaf struct {
	name  string
	value float64
}

func NewLeaf(name string, value float64) *Leaf {
	return &Leaf{name: name, value: value}
}

func (l *Leaf) Name() string   { return l.name }
func (l *Leaf) Value() float64 { return l.value }

// Container agrega filhos em ordem de inserção. Duplicatas são permitidas.
type Container struct {
	name     string
	children []Component
}

var (
	_ Component = (*Leaf)(nil)
	_ Component = (*Container)(nil)
)

func NewContainer(name string, children ...Component) (*Container, error) {
	c := &Container{name: name}
	for _, ch := range children {
		if err := c.Add(ch); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Container) Name() string { return c.name }

// Value soma recursivamente o valor de todos os filhos (DFS, sem cache).
// Contêiner vazio retorna 0.
func (c *Container) Value() float64 {
	total := 0.0
	for _, ch := range c.children {
		total += ch.Value()
	}
	return total
}

func (c *Container) Len() int { return len(c.children) }

// Children retorna uma cópia; mutações só via Add/Remove.
func (c *Container) Children() []Component {
	out := make([]Component, len(c.children))
	copy(out, c.children)
	return out
}

// Add anexa o componente ao final.
// Falha com StructuralError se o componente for o próprio contêiner ou se
// o contêiner já for descendente dele.
func (c *Container) Add(child Component) error {
	if isNil(child) {
		return &StructuralError{Op: "add", Container: c.name, Err: ErrNilComponent}
	}
	if reaches(child, c) {
		return &StructuralError{Op: "add", Container: c.name, Child: child.Name(), Err: ErrCycle}
	}
	c.children = append(c.children, child)
	return nil
}

// Remove apaga a primeira ocorrência igual (ver sameComponent).
// Componente ausente é erro, nunca no-op.
func (c *Container) Remove(child Component) error {
	if isNil(child) {
		return &StructuralError{Op: "remove", Container: c.name, Err: ErrNilComponent}
	}
	for i, ch := range c.children {
		if sameComponent(ch, child) {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Container: c.name, Child: child.Name()}
}

// reaches informa se target é alcançável a partir de from (inclusive).
func reaches(from Component, target *Container) bool {
	if from == Component(target) {
		return true
	}
	ct, ok := from.(*Container)
	if !ok {
		return false
	}
	for _, ch := range ct.children {
		if reaches(ch, target) {
			return true
		}
	}
	return false
}

// Contêineres comparam por identidade; folhas por identidade ou por (nome, valor).
func sameComponent(a, b Component) bool {
	if a == b {
		return true
	}
	la, okA := a.(*Leaf)
	lb, okB := b.(*Leaf)
	if !okA || !okB {
		return false
	}
	return *la == *lb
}

func isNil(c Component) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *Leaf:
		return v == nil
	case *Container:
		return v == nil
	}
	return false
}
