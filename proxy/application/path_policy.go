package application

import "strings"

const DefaultForbiddenPrefix = "/admin/"

// PathPolicy bloqueia caminhos que começam com algum prefixo configurado.
// Prefixos vazios são ignorados.
type PathPolicy struct {
	Prefixes []string
}

func NewPathPolicy(prefixes ...string) PathPolicy {
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = append(out, DefaultForbiddenPrefix)
	}
	return PathPolicy{Prefixes: out}
}

func (p PathPolicy) Forbidden(path string) bool {
	for _, pre := range p.Prefixes {
		if pre != "" && strings.HasPrefix(path, pre) {
			return true
		}
	}
	return false
}
