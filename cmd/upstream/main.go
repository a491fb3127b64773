// Comando upstream sobe o WebServer de exemplo atrás dos proxies de domínio,
// para validar o gateway localmente (UPSTREAM_URL=http://localhost:8081).
package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"strings"
	"time"

	"pattern-gateway/internal/logger"
	"pattern-gateway/proxy"
	"pattern-gateway/proxy/domain"
	"pattern-gateway/proxy/httpproxy"
)

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	forbidden := flag.String("forbidden", "/admin/", "comma separated forbidden prefixes")
	limit := flag.Int("limit", 0, "requests allowed per client (0 disables the quota)")
	maxInFlight := flag.Int("max-inflight", 0, "requests served at once (0 disables the cap)")
	wait := flag.Duration("wait", 50*time.Millisecond, "how long to wait for a free slot")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	cleanup, err := logger.Setup(logger.Config{Debug: *debug})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer func() { _ = cleanup() }()

	var h domain.Handler = proxy.WebServer{}
	if *maxInFlight > 0 {
		h, err = proxy.NewConcurrencyLimitedHandler(h, *maxInFlight, *wait)
		if err != nil {
			log.Fatalf("handler error: %v", err)
		}
	}
	if *limit > 0 {
		h, err = proxy.NewRateLimitedHandler(h, *limit)
		if err != nil {
			log.Fatalf("handler error: %v", err)
		}
	}
	h, err = proxy.NewPathFilteringHandler(h, strings.Split(*forbidden, ","))
	if err != nil {
		log.Fatalf("handler error: %v", err)
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           httpproxy.FromHandler(h, nil),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.L().Info("upstream.listening", "addr", *addr, "forbidden", *forbidden, "limit", *limit,
		"maxInFlight", *maxInFlight, "wait", wait.String())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
