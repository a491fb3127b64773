package proxy

import (
	"context"
	"log/slog"
	"time"

	"pattern-gateway/internal/logger"
	"pattern-gateway/proxy/domain"
)

type options struct {
	quota  domain.Quota
	stats  domain.StatsStore
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*options)

// WithQuota troca a cota padrão (CounterQuota em memória) do RateLimitedHandler.
func WithQuota(q domain.Quota) Option {
	return func(o *options) { o.quota = q }
}

// WithStats registra cada decisão (best-effort).
func WithStats(s domain.StatsStore) Option {
	return func(o *options) { o.stats = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.L()
	}
	return o
}

func (o options) record(ctx context.Context, req domain.Request, outcome domain.Outcome) {
	if o.stats == nil {
		return
	}
	err := o.stats.Record(ctx, domain.StatsEvent{
		Key:     req.User,
		Outcome: outcome,
		Path:    req.Body,
		At:      o.now(),
	})
	if err != nil {
		o.logger.WarnContext(ctx, "proxy.stats.record_failed", "err", err)
	}
}
