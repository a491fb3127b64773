package httpproxy

import (
	"io"
	"net/http"

	"pattern-gateway/proxy/domain"
)

// StatusFor traduz o Outcome de um proxy para status HTTP.
func StatusFor(o domain.Outcome) int {
	switch o {
	case domain.Denied:
		return http.StatusForbidden
	case domain.Limited:
		return http.StatusTooManyRequests
	case domain.Busy:
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

// FromHandler expõe um domain.Handler como http.Handler.
// O caminho da URL vira o Body da requisição e a chave vem de keyFn.
func FromHandler(h domain.Handler, keyFn KeyFunc) http.Handler {
	if keyFn == nil {
		keyFn = DefaultKeyFunc("", false)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := h.Handle(r.Context(), domain.Request{
			User: domain.Key(keyFn(r)),
			Body: r.URL.Path,
		})
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(StatusFor(res.Outcome))
		_, _ = io.WriteString(w, res.Body+"\n")
	})
}
