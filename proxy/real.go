package proxy

import (
	"context"
	"fmt"

	"pattern-gateway/proxy/domain"
)

// WebServer é o handler real do exemplo de servidor web.
type WebServer struct{}

func (WebServer) Handle(_ context.Context, req domain.Request) domain.Result {
	return domain.Forward("Handling request: " + req.Body)
}

// SMSService é o handler real do exemplo de SMS.
type SMSService struct{}

func (SMSService) Handle(_ context.Context, req domain.Request) domain.Result {
	return domain.Forward(fmt.Sprintf("Sent SMS to %s: %s", req.User, req.Body))
}

var (
	_ domain.Handler = WebServer{}
	_ domain.Handler = SMSService{}
)
