package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"pattern-gateway/internal/logger"
	"pattern-gateway/proxy/domain"
	"pattern-gateway/proxy/httpproxy"
	"pattern-gateway/proxy/infra"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := readConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	cleanup, err := logger.Setup(logger.Config{Debug: cfg.LogDebug, Format: cfg.LogFormat})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = cleanup() }()
	lg := logger.L()

	target, err := url.Parse(cfg.UpstreamURL)
	if err != nil {
		log.Fatalf("invalid UPSTREAM_URL: %v", err)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		lg.ErrorContext(r.Context(), "gateway.upstream_error", "path", r.URL.Path, "err", err)
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var rdb *redis.Client
	if cfg.needsRedis() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() { _ = rdb.Close() }()

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatalf("redis ping error: %v", err)
		}
	}

	var quota domain.Quota
	switch cfg.QuotaMode {
	case quotaLifetime:
		if cfg.QuotaRedis {
			quota = infra.NewRedisQuota(rdb, cfg.QuotaLimit)
		} else {
			quota = infra.NewCounterQuota(cfg.QuotaLimit)
		}
	case quotaTokenBucket:
		tb := infra.NewTokenBucketQuota(cfg.RateRPS, cfg.RateBurst)
		tb.StartJanitor(ctx)
		quota = tb
	}

	var stats domain.StatsStore
	if cfg.StatsEnabled {
		stats = infra.NewRedisStatsStore(
			rdb,
			infra.WithStatsPrefix(cfg.StatsPrefix),
			infra.WithStatsTTL(cfg.StatsTTL),
			infra.WithStatsBucket(cfg.StatsBucket),
			infra.WithStatsTrackKeys(cfg.StatsTrackKeys),
		)
	}

	h := http.Handler(proxy)
	h = httpproxy.ConcurrencyMiddleware(httpproxy.ConcurrencyOptions{
		Max:            cfg.ConcurrencyMax,
		RejectStatus:   http.StatusServiceUnavailable,
		AcquireTimeout: cfg.ConcurrencyTimeout,
		Stats:          stats,
		KeyFn:          httpproxy.DefaultKeyFunc(cfg.KeyHeader, cfg.TrustXFF),
		Logger:         lg,
	})(h)
	h = httpproxy.Middleware(httpproxy.Options{
		Quota:               quota,
		Stats:               stats,
		Forbidden:           cfg.ForbiddenPrefixes,
		KeyHeader:           cfg.KeyHeader,
		TrustXForwardedFor:  cfg.TrustXFF,
		RetryAfter:          cfg.RetryAfter,
		AddRateLimitHeaders: cfg.AddHeaders,
		Logger:              lg,
	})(h)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	lg.Info("gateway.listening", "addr", cfg.ListenAddr, "upstream", target.String())
	lg.Info("gateway.access", "forbidden", cfg.ForbiddenPrefixes, "quotaMode", cfg.QuotaMode,
		"limit", cfg.QuotaLimit, "rps", cfg.RateRPS, "burst", cfg.RateBurst, "redisQuota", cfg.QuotaRedis,
		"keyHeader", cfg.KeyHeader, "trustXFF", cfg.TrustXFF)
	lg.Info("gateway.stats", "enabled", cfg.StatsEnabled, "bucket", cfg.StatsBucket, "ttl", cfg.StatsTTL.String(), "trackKeys", cfg.StatsTrackKeys)
	lg.Info("gateway.concurrency", "max", cfg.ConcurrencyMax, "acquireTimeout", cfg.ConcurrencyTimeout.String())

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
