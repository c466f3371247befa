package credstore

import (
	"context"
	"sync"

	"github.com/raywall/integra-contador-sdk/pkg/types"
)

// MemoryStore guarda tudo em memória. Útil em testes e em processos
// que não devem tocar o filesystem.
type MemoryStore struct {
	mu     sync.RWMutex
	config *types.AuthConfig
	token  *types.TokenRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadConfig(ctx context.Context) (*types.AuthConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.config == nil {
		return nil, nil
	}
	cp := *s.config
	return &cp, nil
}

func (s *MemoryStore) SaveConfig(ctx context.Context, cfg *types.AuthConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg == nil {
		s.config = nil
		return nil
	}
	cp := *cfg
	s.config = &cp
	return nil
}

func (s *MemoryStore) LoadToken(ctx context.Context) (*types.TokenRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == nil {
		return nil, nil
	}
	cp := *s.token
	return &cp, nil
}

func (s *MemoryStore) SaveToken(ctx context.Context, tok *types.TokenRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok == nil {
		s.token = nil
		return nil
	}
	cp := *tok
	s.token = &cp
	return nil
}
