package httpproxy

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"pattern-gateway/internal/logger"
	"pattern-gateway/proxy/application"
	"pattern-gateway/proxy/domain"
	"pattern-gateway/proxy/infra"
)

type ConcurrencyOptions struct {
	Max            int
	RejectStatus   int
	AcquireTimeout time.Duration
	// Stats recebe um evento Busy por requisição recusada.
	Stats  domain.StatsStore
	KeyFn  KeyFunc
	Logger *slog.Logger
}

// ConcurrencyMiddleware limita requisições em voo. Max <= 0 desliga.
// Sem vaga responde ServiceBusy com RejectStatus (503 por padrão).
func ConcurrencyMiddleware(opts ConcurrencyOptions) func(next http.Handler) http.Handler {
	if opts.Max <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if opts.RejectStatus == 0 {
		opts.RejectStatus = StatusFor(domain.Busy)
	}
	if opts.KeyFn == nil {
		opts.KeyFn = DefaultKeyFunc("", false)
	}
	if opts.Logger == nil {
		opts.Logger = logger.L()
	}

	admission := application.Admission{
		Slots: infra.NewSlotPool(opts.Max),
		Wait:  opts.AcquireTimeout,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)
			req := domain.Request{User: domain.Key(key), Body: r.URL.Path}

			res := admission.Run(r.Context(), req, domain.HandlerFunc(func(context.Context, domain.Request) domain.Result {
				next.ServeHTTP(w, r)
				return domain.Forward("")
			}))
			if res.Outcome == domain.Busy {
				opts.Logger.DebugContext(r.Context(), "httpproxy.concurrency.busy", "key", key, "path", r.URL.Path)
				recordStats(opts.Stats, opts.Logger, r, key, domain.Busy)
				http.Error(w, res.Body, opts.RejectStatus)
			}
		})
	}
}
