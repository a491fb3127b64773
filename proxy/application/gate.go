package application

import (
	"context"
	"time"

	"pattern-gateway/proxy/domain"
)

const DefaultRetryAfter = 1 * time.Second

// Gate concentra a regra de admissão por cota.
//
// Ele não sabe nada sobre HTTP (headers/status), apenas retorna uma decisão.
// Sem Quota tudo é permitido. Erro da Quota bloqueia (fail closed) e é
// devolvido para o chamador registrar.
type Gate struct {
	Quota      domain.Quota
	RetryAfter time.Duration
}

func (g Gate) Decide(ctx context.Context, key domain.Key) (domain.Decision, error) {
	if g.Quota == nil {
		return domain.Decision{Allowed: true}, nil
	}
	retry := g.RetryAfter
	if retry <= 0 {
		retry = DefaultRetryAfter
	}

	dec, err := g.Quota.Take(ctx, key)
	if err != nil {
		return domain.Decision{Allowed: false, RetryAfter: retry}, err
	}
	if dec.Allowed {
		dec.RetryAfter = 0
		return dec, nil
	}
	if dec.RetryAfter <= 0 {
		dec.RetryAfter = retry
	}
	return dec, nil
}
