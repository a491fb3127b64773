package application

import (
	"context"
	"time"

	"pattern-gateway/proxy/domain"
)

// Admission controla a entrada de requisições em um conjunto finito de vagas.
// Sem Slots tudo entra.
type Admission struct {
	Slots domain.Slots
	// Wait <= 0 espera até o ctx encerrar.
	Wait time.Duration
}

// Acquire devolve release e ok=true quando conseguiu uma vaga.
func (a Admission) Acquire(ctx context.Context) (func(), bool) {
	if a.Slots == nil {
		return func() {}, true
	}
	if a.Wait <= 0 {
		return a.Slots.Acquire(ctx)
	}

	acqCtx, cancel := context.WithTimeout(ctx, a.Wait)
	defer cancel()
	return a.Slots.Acquire(acqCtx)
}

// Run executa next ocupando uma vaga. Sem vaga retorna ServiceBusy e next
// não é chamado.
func (a Admission) Run(ctx context.Context, req domain.Request, next domain.Handler) domain.Result {
	release, ok := a.Acquire(ctx)
	if !ok {
		return domain.ServiceBusy
	}
	defer release()
	return next.Handle(ctx, req)
}
