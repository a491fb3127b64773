// Package proxy fornece handlers que controlam o acesso a um handler real.
//
// Visão geral (camadas):
//
//   - domain: contratos e tipos (Handler, Request, Result, Quota)
//   - application: regras (Gate, PathPolicy, Admission) sem transporte
//   - infra: cotas e estatísticas concretas (memória, Redis, token bucket)
//   - proxy (este pacote): handlers reais e proxies que os envolvem
//   - httpproxy: adapters net/http para os mesmos proxies
//
// Fluxo de um proxy:
//
//  1. Inspeciona a requisição (prefixo do caminho, cota do usuário)
//  2. Se bloqueado, retorna um Result sentinela sem chamar o delegate
//  3. Se permitido, repassa a requisição inalterada ao delegate
package proxy
