package proxy

import (
	"context"

	"pattern-gateway/proxy/application"
	"pattern-gateway/proxy/domain"
	"pattern-gateway/proxy/infra"
)

// RateLimitedHandler repassa no máximo `limit` requisições por usuário.
//
// Por padrão a cota é vitalícia (CounterQuota): as contagens nunca zeram.
// Reposição no tempo só com WithQuota(infra.NewTokenBucketQuota(...)).
type RateLimitedHandler struct {
	next  domain.Handler
	limit int
	gate  application.Gate
	opts  options
}

var _ domain.Handler = (*RateLimitedHandler)(nil)

func NewRateLimitedHandler(next domain.Handler, limit int, opts ...Option) (*RateLimitedHandler, error) {
	if next == nil {
		return nil, ErrNilDelegate
	}
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	o := buildOptions(opts)
	if o.quota == nil {
		o.quota = infra.NewCounterQuota(limit)
	}
	return &RateLimitedHandler{
		next:  next,
		limit: limit,
		gate:  application.Gate{Quota: o.quota},
		opts:  o,
	}, nil
}

// Limit retorna a capacidade da cota em uso: Limit() da cota quando ela
// expõe um, Burst() no token bucket, senão o limit do construtor.
func (h *RateLimitedHandler) Limit() int {
	switch q := h.gate.Quota.(type) {
	case interface{ Limit() int }:
		return q.Limit()
	case interface{ Burst() int }:
		return q.Burst()
	}
	return h.limit
}

// Usage retorna o consumo da chave quando a cota expõe contagens locais.
func (h *RateLimitedHandler) Usage(key domain.Key) (int, bool) {
	u, ok := h.gate.Quota.(interface{ Usage(domain.Key) int })
	if !ok {
		return 0, false
	}
	return u.Usage(key), true
}

func (h *RateLimitedHandler) Handle(ctx context.Context, req domain.Request) domain.Result {
	dec, err := h.gate.Decide(ctx, req.User)
	if err != nil {
		h.opts.logger.WarnContext(ctx, "proxy.quota.error", "user", string(req.User), "err", err)
	}
	if !dec.Allowed {
		h.opts.logger.DebugContext(ctx, "proxy.quota.limited",
			"user", string(req.User), "used", dec.Used, "limit", dec.Limit,
			"retry_after", dec.RetryAfter.String())
		h.opts.record(ctx, req, domain.Limited)
		return domain.RateLimitExceeded
	}
	h.opts.record(ctx, req, domain.Forwarded)
	return h.next.Handle(ctx, req)
}
