// Package httpproxy fornece adapters net/http para os proxies do pacote proxy:
// filtro de caminho (403), cota por chave (429) e limite de concorrência (503).
//
// Fluxo no gateway:
//
//  1. Extrai a chave do cliente (header/XFF/IP)
//  2. Se o caminho é proibido, responde 403
//  3. Consulta a camada application para a decisão de cota; se bloqueado, 429
//  4. Se permitido, chama o próximo handler (ex: reverse proxy)
//
// Variáveis de ambiente do binário gateway (cmd/gateway) controlam o comportamento.
package httpproxy
