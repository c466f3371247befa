package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	smtypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"

	"github.com/raywall/integra-contador-sdk/pkg/types"
)

// SecretsAPI abstrai o SDK da AWS (permite mocking em testes).
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	PutSecretValue(ctx context.Context, params *secretsmanager.PutSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.PutSecretValueOutput, error)
	CreateSecret(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error)
}

// SecretsManagerStore guarda config e token em um único secret, no
// mesmo formato de documento do FileStore. O secret é criado na
// primeira escrita caso não exista.
type SecretsManagerStore struct {
	client   SecretsAPI
	secretID string
	mu       sync.Mutex
}

// NewSecretsManagerStore inicializa o cliente real da AWS a partir do
// ambiente (env vars, profile, IAM role).
func NewSecretsManagerStore(ctx context.Context, region, secretID string) (*SecretsManagerStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração AWS: %w", err)
	}
	return NewSecretsManagerStoreWithClient(secretsmanager.NewFromConfig(cfg), secretID), nil
}

// NewSecretsManagerStoreWithClient injeta um cliente já construído.
func NewSecretsManagerStoreWithClient(client SecretsAPI, secretID string) *SecretsManagerStore {
	return &SecretsManagerStore{client: client, secretID: secretID}
}

func (s *SecretsManagerStore) LoadConfig(ctx context.Context) (*types.AuthConfig, error) {
	doc, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Config, nil
}

func (s *SecretsManagerStore) SaveConfig(ctx context.Context, cfg *types.AuthConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read(ctx)
	if err != nil {
		return err
	}
	doc.Config = cfg
	return s.write(ctx, doc)
}

func (s *SecretsManagerStore) LoadToken(ctx context.Context) (*types.TokenRecord, error) {
	doc, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Token, nil
}

func (s *SecretsManagerStore) SaveToken(ctx context.Context, tok *types.TokenRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read(ctx)
	if err != nil {
		return err
	}
	doc.Token = tok
	return s.write(ctx, doc)
}

func (s *SecretsManagerStore) read(ctx context.Context) (document, error) {
	var doc document

	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &s.secretID,
	})
	var notFound *smtypes.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("erro no SecretsManager GetSecretValue: %w", err)
	}
	if out.SecretString == nil {
		return doc, nil
	}

	// Secret corrompido conta como ausente; a próxima escrita corrige.
	if err := json.Unmarshal([]byte(*out.SecretString), &doc); err != nil {
		return document{}, nil
	}
	return doc, nil
}

func (s *SecretsManagerStore) write(ctx context.Context, doc document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("erro ao serializar credenciais: %w", err)
	}
	payload := string(data)

	_, err = s.client.PutSecretValue(ctx, &secretsmanager.PutSecretValueInput{
		SecretId:     &s.secretID,
		SecretString: &payload,
	})
	var notFound *smtypes.ResourceNotFoundException
	if errors.As(err, &notFound) {
		_, err = s.client.CreateSecret(ctx, &secretsmanager.CreateSecretInput{
			Name:         &s.secretID,
			SecretString: &payload,
		})
	}
	if err != nil {
		return fmt.Errorf("erro ao gravar secret %s: %w", s.secretID, err)
	}
	return nil
}
