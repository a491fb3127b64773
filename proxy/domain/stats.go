package domain

import (
	"context"
	"time"
)

// StatsEvent representa uma decisão tomada por um proxy (filtro ou cota).
//
// Method pode ficar vazio fora de HTTP; Path recebe o Body da requisição.
// Cuidado com cardinalidade ao persistir Key/Path.
type StatsEvent struct {
	Key     Key
	Outcome Outcome

	Method string
	Path   string

	At time.Time
}

// StatsStore persiste estatísticas. Erros são tratados como best-effort.
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}
