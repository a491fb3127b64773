// Package application contém os casos de uso (regras de aplicação) do proxy:
// decisão de cota, política de caminhos proibidos e limite de concorrência.
//
// Ele depende apenas do pacote domain e não conhece net/http.
// Ex.: Gate.Decide(ctx, key) retorna uma Decision (allow/deny + retry-after).
package application
