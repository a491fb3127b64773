package httpproxy

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"pattern-gateway/internal/logger"
	"pattern-gateway/proxy/application"
	"pattern-gateway/proxy/domain"
)

type Options struct {
	Quota domain.Quota
	Stats domain.StatsStore
	// Forbidden são prefixos de caminho negados com DenyStatus.
	// Vazio desliga o filtro.
	Forbidden           []string
	KeyFn               KeyFunc
	KeyHeader           string
	TrustXForwardedFor  bool
	DenyStatus          int
	RejectStatus        int
	RetryAfter          time.Duration
	AddRateLimitHeaders bool
	Logger              *slog.Logger
}

type rateInfo interface {
	RPS() float64
	Burst() int
}

func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.DenyStatus == 0 {
		opts.DenyStatus = http.StatusForbidden
	}
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusTooManyRequests
	}
	if opts.RetryAfter == 0 {
		opts.RetryAfter = application.DefaultRetryAfter
	}
	if opts.KeyFn == nil {
		opts.KeyFn = DefaultKeyFunc(opts.KeyHeader, opts.TrustXForwardedFor)
	}
	if opts.Logger == nil {
		opts.Logger = logger.L()
	}

	var policy application.PathPolicy
	if len(opts.Forbidden) > 0 {
		policy = application.NewPathPolicy(opts.Forbidden...)
	}
	gate := application.Gate{Quota: opts.Quota, RetryAfter: opts.RetryAfter}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)
			record := func(o domain.Outcome) {
				recordStats(opts.Stats, opts.Logger, r, key, o)
			}

			if policy.Forbidden(r.URL.Path) {
				record(domain.Denied)
				http.Error(w, domain.AccessDenied.Body, opts.DenyStatus)
				return
			}

			if opts.AddRateLimitHeaders {
				w.Header().Set("X-RateLimit-Key", key)
				if ri, ok := opts.Quota.(rateInfo); ok {
					w.Header().Set("X-RateLimit-RPS", formatFloat(ri.RPS()))
					w.Header().Set("X-RateLimit-Burst", strconv.Itoa(ri.Burst()))
				}
			}

			dec, err := gate.Decide(r.Context(), domain.Key(key))
			if err != nil {
				opts.Logger.WarnContext(r.Context(), "httpproxy.quota.error", "key", key, "err", err)
			}
			if opts.AddRateLimitHeaders && dec.Limit > 0 {
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(dec.Limit))
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(dec.Remaining()))
			}
			if !dec.Allowed {
				record(domain.Limited)
				w.Header().Set("Retry-After", retryAfterSeconds(dec.RetryAfter))
				http.Error(w, domain.RateLimitExceeded.Body, opts.RejectStatus)
				return
			}

			record(domain.Forwarded)
			next.ServeHTTP(w, r)
		})
	}
}

// recordStats é best-effort: falhas só geram aviso.
func recordStats(stats domain.StatsStore, lg *slog.Logger, r *http.Request, key string, o domain.Outcome) {
	if stats == nil {
		return
	}
	err := stats.Record(r.Context(), domain.StatsEvent{
		Key:     domain.Key(key),
		Outcome: o,
		Method:  r.Method,
		Path:    r.URL.Path,
		At:      time.Now(),
	})
	if err != nil {
		lg.WarnContext(r.Context(), "httpproxy.stats.record_failed", "err", err)
	}
}

// retryAfterSeconds arredonda para cima, mínimo 1: "0" mandaria o cliente
// repetir na hora.
func retryAfterSeconds(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// sem notação científica para valores comuns
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
