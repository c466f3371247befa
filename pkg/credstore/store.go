// Package credstore persiste credenciais de autenticação e tokens de
// acesso entre execuções. Todas as implementações seguem a mesma
// semântica de leitura best-effort: registro ausente ou corrompido
// devolve (nil, nil), nunca erro. Erros de leitura só são propagados
// quando o backend em si falha (rede, permissão).
package credstore

import (
	"context"

	"github.com/raywall/integra-contador-sdk/pkg/types"
)

// Store é o contrato de persistência usado pelo gerenciador de
// autenticação. SaveConfig/SaveToken sobrescrevem o registro anterior.
type Store interface {
	LoadConfig(ctx context.Context) (*types.AuthConfig, error)
	SaveConfig(ctx context.Context, cfg *types.AuthConfig) error
	LoadToken(ctx context.Context) (*types.TokenRecord, error)
	SaveToken(ctx context.Context, tok *types.TokenRecord) error
}

// document é o formato serializado compartilhado pelos backends que
// guardam config e token em um único registro (arquivo, secret).
type document struct {
	Config *types.AuthConfig  `json:"config,omitempty"`
	Token  *types.TokenRecord `json:"token,omitempty"`
}
