// Package composite modela hierarquias parte-todo (ex.: caixas de envio com
// produtos e outras caixas) onde folhas e contêineres são tratados de forma
// uniforme pela interface Component.
//
// Visão geral:
//
//   - Leaf: valor escalar fixo (ex.: peso de um produto)
//   - Container: sequência ordenada de filhos; Value soma recursivamente
//   - Add recusa ciclos (StructuralError); Remove falha com NotFoundError
//   - Walk, Clone e Build (YAML) são utilitários em cima da mesma interface
package composite
