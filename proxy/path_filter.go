package proxy

import (
	"context"

	"pattern-gateway/proxy/application"
	"pattern-gateway/proxy/domain"
)

// PathFilteringHandler nega requisições cujo Body começa com um prefixo
// proibido e repassa as demais sem alteração.
type PathFilteringHandler struct {
	next   domain.Handler
	policy application.PathPolicy
	opts   options
}

var _ domain.Handler = (*PathFilteringHandler)(nil)

// NewPathFilteringHandler usa "/admin/" quando nenhum prefixo é informado.
func NewPathFilteringHandler(next domain.Handler, prefixes []string, opts ...Option) (*PathFilteringHandler, error) {
	if next == nil {
		return nil, ErrNilDelegate
	}
	return &PathFilteringHandler{
		next:   next,
		policy: application.NewPathPolicy(prefixes...),
		opts:   buildOptions(opts),
	}, nil
}

func (h *PathFilteringHandler) Prefixes() []string {
	return append([]string(nil), h.policy.Prefixes...)
}

func (h *PathFilteringHandler) Handle(ctx context.Context, req domain.Request) domain.Result {
	if h.policy.Forbidden(req.Body) {
		h.opts.logger.DebugContext(ctx, "proxy.path.denied", "user", string(req.User), "body", req.Body)
		h.opts.record(ctx, req, domain.Denied)
		return domain.AccessDenied
	}
	h.opts.record(ctx, req, domain.Forwarded)
	return h.next.Handle(ctx, req)
}
