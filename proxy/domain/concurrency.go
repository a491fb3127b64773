package domain

import "context"

// Slots limita quantas requisições um proxy atende ao mesmo tempo.
//
// Acquire espera uma vaga até o ctx encerrar. Com ok=true, release devolve a
// vaga; chamadas repetidas de release são ignoradas.
type Slots interface {
	Acquire(ctx context.Context) (release func(), ok bool)
	InFlight() int
	Capacity() int
}
