package credstore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	smtypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockSecrets struct {
	GetSecretValueFunc func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	PutSecretValueFunc func(ctx context.Context, params *secretsmanager.PutSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.PutSecretValueOutput, error)
	CreateSecretFunc   func(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error)
}

func (m *MockSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	return m.GetSecretValueFunc(ctx, params, optFns...)
}

func (m *MockSecrets) PutSecretValue(ctx context.Context, params *secretsmanager.PutSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.PutSecretValueOutput, error) {
	return m.PutSecretValueFunc(ctx, params, optFns...)
}

func (m *MockSecrets) CreateSecret(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error) {
	return m.CreateSecretFunc(ctx, params, optFns...)
}

// fakeSecret simula um secret em memória com a semântica da AWS.
func fakeSecret(existing *string) *MockSecrets {
	m := &MockSecrets{}
	m.GetSecretValueFunc = func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
		if existing == nil {
			return nil, &smtypes.ResourceNotFoundException{}
		}
		return &secretsmanager.GetSecretValueOutput{SecretString: existing}, nil
	}
	m.PutSecretValueFunc = func(ctx context.Context, params *secretsmanager.PutSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.PutSecretValueOutput, error) {
		if existing == nil {
			return nil, &smtypes.ResourceNotFoundException{}
		}
		*existing = *params.SecretString
		return &secretsmanager.PutSecretValueOutput{}, nil
	}
	return m
}

// --- Testes ---

func TestSecretsManagerStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Secret inexistente equivale a vazio", func(t *testing.T) {
		s := NewSecretsManagerStoreWithClient(fakeSecret(nil), "integra/creds")

		cfg, err := s.LoadConfig(ctx)
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("Ciclo completo sobre secret existente", func(t *testing.T) {
		existing := "{}"
		s := NewSecretsManagerStoreWithClient(fakeSecret(&existing), "integra/creds")

		require.NoError(t, s.SaveConfig(ctx, sampleConfig()))
		require.NoError(t, s.SaveToken(ctx, sampleToken()))

		cfg, err := s.LoadConfig(ctx)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "key", cfg.ConsumerKey)

		tok, err := s.LoadToken(ctx)
		require.NoError(t, err)
		require.NotNil(t, tok)
		assert.Equal(t, "abc123", tok.AccessToken)
	})

	t.Run("Primeira escrita cria o secret", func(t *testing.T) {
		mock := fakeSecret(nil)
		created := false
		mock.CreateSecretFunc = func(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error) {
			created = true
			assert.Equal(t, "integra/creds", *params.Name)

			var doc map[string]any
			require.NoError(t, json.Unmarshal([]byte(*params.SecretString), &doc))
			assert.Contains(t, doc, "token")
			return &secretsmanager.CreateSecretOutput{}, nil
		}

		s := NewSecretsManagerStoreWithClient(mock, "integra/creds")
		require.NoError(t, s.SaveToken(ctx, sampleToken()))
		assert.True(t, created)
	})

	t.Run("Secret corrompido equivale a vazio", func(t *testing.T) {
		existing := "{corrompido"
		s := NewSecretsManagerStoreWithClient(fakeSecret(&existing), "integra/creds")

		tok, err := s.LoadToken(ctx)
		require.NoError(t, err)
		assert.Nil(t, tok)
	})
}
