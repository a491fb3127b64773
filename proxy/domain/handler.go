package domain

import "context"

// Key identifica o usuário/cliente. A string vazia é uma chave válida.
type Key string

// Request é agnóstico de transporte: Body é o caminho (web) ou a mensagem (SMS).
type Request struct {
	User Key
	Body string
}

type Outcome int

const (
	Forwarded Outcome = iota
	Denied
	Limited
	Busy
)

func (o Outcome) String() string {
	switch o {
	case Forwarded:
		return "forwarded"
	case Denied:
		return "denied"
	case Limited:
		return "limited"
	case Busy:
		return "busy"
	}
	return "unknown"
}

type Result struct {
	Outcome Outcome
	Body    string
}

func (r Result) OK() bool { return r.Outcome == Forwarded }

// Resultados sentinela.
var (
	AccessDenied      = Result{Outcome: Denied, Body: "Access denied"}
	RateLimitExceeded = Result{Outcome: Limited, Body: "Rate limit exceeded"}
	ServiceBusy       = Result{Outcome: Busy, Body: "Service busy"}
)

func Forward(body string) Result {
	return Result{Outcome: Forwarded, Body: body}
}

// Handler trata uma requisição de forma síncrona.
type Handler interface {
	Handle(ctx context.Context, req Request) Result
}

type HandlerFunc func(ctx context.Context, req Request) Result

func (f HandlerFunc) Handle(ctx context.Context, req Request) Result { return f(ctx, req) }
