// Package domain define contratos e tipos de domínio para o proxy de controle
// de acesso (filtro por caminho e cota por usuário).
//
// Este pacote não depende de net/http nem de implementações concretas.
// Rejeições esperadas (acesso negado, cota esgotada) são valores de Result,
// não erros.
package domain
