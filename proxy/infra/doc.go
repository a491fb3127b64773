// Package infra contém implementações concretas para os contratos do pacote domain.
//
// Exemplos:
//   - CounterQuota: contador vitalício por chave em memória (padrão)
//   - RedisQuota: o mesmo contador, compartilhado via Redis (script Lua atômico)
//   - TokenBucketQuota: cota com reposição no tempo usando golang.org/x/time/rate
//   - SlotPool: semáforo de vagas para limite de concorrência
//   - MemoryStatsStore / RedisStatsStore: estatísticas das decisões
package infra
