package domain

import (
	"context"
	"time"
)

// Quota decide e consome numa única operação atômica (check-and-increment).
//
// Observação: a implementação padrão é um contador vitalício por chave
// (nunca zera). Políticas com reposição no tempo devem ser escolhidas
// explicitamente (ex.: token bucket na camada de infra).
type Quota interface {
	Take(ctx context.Context, key Key) (Decision, error)
}

type Decision struct {
	Allowed bool
	// Used é o consumo da chave após a decisão; Limit é a capacidade.
	// Ambos podem ser 0 quando a política não os expõe.
	Used  int
	Limit int
	// RetryAfter é a recomendação quando bloquear. Se 0, não há recomendação.
	RetryAfter time.Duration
}

// Remaining retorna quanto ainda cabe na cota (nunca negativo).
func (d Decision) Remaining() int {
	if d.Limit <= d.Used {
		return 0
	}
	return d.Limit - d.Used
}
