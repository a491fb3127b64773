package composite

type CloneMode int

const (
	// Shallow copia só a lista de filhos; os componentes são compartilhados.
	Shallow CloneMode = iota
	// Deep duplica recursivamente os contêineres filhos.
	// Folhas são imutáveis e continuam compartilhadas.
	Deep
)

func (m CloneMode) String() string {
	if m == Deep {
		return "deep"
	}
	return "shallow"
}

// Clone duplica o contêiner. Mudanças via Add/Remove no clone nunca afetam o
// original; em modo Shallow, contêineres filhos continuam sendo os mesmos.
func (c *Container) Clone(mode CloneMode) *Container {
	out := &Container{name: c.name, children: make([]Component, 0, len(c.children))}
	for _, ch := range c.children {
		if sub, ok := ch.(*Container); ok && mode == Deep {
			out.children = append(out.children, sub.Clone(Deep))
			continue
		}
		out.children = append(out.children, ch)
	}
	return out
}
