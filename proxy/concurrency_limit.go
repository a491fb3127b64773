package proxy

import (
	"context"
	"time"

	"pattern-gateway/proxy/application"
	"pattern-gateway/proxy/domain"
	"pattern-gateway/proxy/infra"
)

// ConcurrencyLimitedHandler atende no máximo `max` requisições ao mesmo
// tempo. Quem não consegue vaga em `wait` recebe ServiceBusy.
type ConcurrencyLimitedHandler struct {
	next      domain.Handler
	admission application.Admission
	opts      options
}

var _ domain.Handler = (*ConcurrencyLimitedHandler)(nil)

// NewConcurrencyLimitedHandler: max == 0 recusa tudo; wait <= 0 espera até o
// ctx da requisição encerrar.
func NewConcurrencyLimitedHandler(next domain.Handler, max int, wait time.Duration, opts ...Option) (*ConcurrencyLimitedHandler, error) {
	if next == nil {
		return nil, ErrNilDelegate
	}
	if max < 0 {
		return nil, ErrInvalidLimit
	}
	return &ConcurrencyLimitedHandler{
		next:      next,
		admission: application.Admission{Slots: infra.NewSlotPool(max), Wait: wait},
		opts:      buildOptions(opts),
	}, nil
}

func (h *ConcurrencyLimitedHandler) InFlight() int { return h.admission.Slots.InFlight() }

func (h *ConcurrencyLimitedHandler) Capacity() int { return h.admission.Slots.Capacity() }

func (h *ConcurrencyLimitedHandler) Handle(ctx context.Context, req domain.Request) domain.Result {
	release, ok := h.admission.Acquire(ctx)
	if !ok {
		h.opts.logger.DebugContext(ctx, "proxy.concurrency.busy",
			"user", string(req.User), "body", req.Body, "in_flight", h.InFlight())
		h.opts.record(ctx, req, domain.Busy)
		return domain.ServiceBusy
	}
	defer release()

	h.opts.record(ctx, req, domain.Forwarded)
	return h.next.Handle(ctx, req)
}
