package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/raywall/integra-contador-sdk/pkg/types"
)

// RedisStore persiste config e token em chaves separadas, permitindo
// que várias instâncias do SDK compartilhem o mesmo token.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore usa prefix como namespace das chaves (ex.:
// "integra:minha-app" gera "integra:minha-app:config" e ":token").
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "integra-contador"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) LoadConfig(ctx context.Context) (*types.AuthConfig, error) {
	var cfg types.AuthConfig
	ok, err := s.load(ctx, s.key("config"), &cfg)
	if err != nil || !ok {
		return nil, err
	}
	return &cfg, nil
}

func (s *RedisStore) SaveConfig(ctx context.Context, cfg *types.AuthConfig) error {
	if cfg == nil {
		return s.client.Del(ctx, s.key("config")).Err()
	}
	return s.save(ctx, s.key("config"), cfg)
}

func (s *RedisStore) LoadToken(ctx context.Context) (*types.TokenRecord, error) {
	var tok types.TokenRecord
	ok, err := s.load(ctx, s.key("token"), &tok)
	if err != nil || !ok {
		return nil, err
	}
	return &tok, nil
}

func (s *RedisStore) SaveToken(ctx context.Context, tok *types.TokenRecord) error {
	if tok == nil {
		return s.client.Del(ctx, s.key("token")).Err()
	}
	return s.save(ctx, s.key("token"), tok)
}

func (s *RedisStore) key(suffix string) string {
	return s.prefix + ":" + suffix
}

func (s *RedisStore) load(ctx context.Context, key string, out any) (bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("erro ao ler %s do redis: %w", key, err)
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		// Registro corrompido conta como ausente.
		return false, nil
	}
	return true, nil
}

func (s *RedisStore) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("erro ao serializar %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("erro ao gravar %s no redis: %w", key, err)
	}
	return nil
}
