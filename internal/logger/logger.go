// Package logger mantém o *slog.Logger do processo.
//
// Antes de Setup todo log é descartado. Setup troca o logger global e devolve
// uma função de cleanup que volta ao estado inicial.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

type Config struct {
	Debug  bool
	Format string    // "text" (padrão) ou "json"
	Output io.Writer // padrão os.Stderr
}

var (
	mu       sync.RWMutex
	global   = discard()
	ready    bool
	initedAt time.Time
)

func Setup(cfg Config) (func() error, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}
	hopts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var h slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text":
		h = slog.NewTextHandler(out, hopts)
	case "json":
		h = slog.NewJSONHandler(out, hopts)
	default:
		return nil, fmt.Errorf("logger: unknown format %q", cfg.Format)
	}

	mu.Lock()
	global = slog.New(h)
	ready = true
	initedAt = time.Now().UTC()
	mu.Unlock()

	L().Debug("logger.initialized", "format", cfg.Format, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()
		global = discard()
		ready = false
		initedAt = time.Time{}
		return nil
	}
	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return initedAt
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if !ready {
		return errors.New("logger not initialized")
	}
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
