// Package auth gerencia o ciclo de vida do token de acesso: token
// estático, token fixo do Trial ou OAuth2 client_credentials com
// certificado digital. O Manager é thread-safe e garante uma única
// requisição de token em voo por vez, mesmo sob chamadas concorrentes.
package auth

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/raywall/integra-contador-sdk/pkg/config"
	"github.com/raywall/integra-contador-sdk/pkg/credstore"
	"github.com/raywall/integra-contador-sdk/pkg/metrics"
	"github.com/raywall/integra-contador-sdk/pkg/sdkerrors"
	"github.com/raywall/integra-contador-sdk/pkg/types"
)

// DefaultSafetyMargin é descontada do expires_in ao decidir se o token
// em cache ainda serve. Evita usar um token a segundos de expirar.
const DefaultSafetyMargin = 60 * time.Second

// Options parametriza o Manager. Todos os campos têm default sensato.
type Options struct {
	AuthURL string
	Store   credstore.Store

	// HTTPClient substitui o client com certificado (testes). Quando
	// nulo, o client é montado a partir do .p12 na primeira aquisição.
	HTTPClient *http.Client

	Logger       *zerolog.Logger
	Metrics      metrics.Provider
	SafetyMargin time.Duration
	Timeout      time.Duration
	Now          func() time.Time
}

// Manager mantém o token atual e sabe renová-lo quando expira.
type Manager struct {
	cfg          types.AuthConfig
	authURL      string
	store        credstore.Store
	log          zerolog.Logger
	metrics      metrics.Provider
	safetyMargin time.Duration
	timeout      time.Duration
	now          func() time.Time

	mu     sync.RWMutex
	token  *types.TokenRecord
	client *http.Client // montado sob demanda no modo certificado

	group singleflight.Group
}

// NewManager valida as credenciais do modo escolhido e monta o
// gerenciador. No modo certificado o .p12 só é aberto na primeira
// aquisição de token, não aqui.
func NewManager(cfg types.AuthConfig, opts Options) (*Manager, error) {
	if cfg.Mode == types.ModeCertificateOAuth && !cfg.HasCertificateCredentials() {
		return nil, &sdkerrors.InvalidCredentialsError{AuthError: sdkerrors.AuthError{
			Message: "autenticação com certificado exige consumer_key, consumer_secret, certificate_path e certificate_password",
		}}
	}

	m := &Manager{
		cfg:          cfg,
		authURL:      opts.AuthURL,
		store:        opts.Store,
		client:       opts.HTTPClient,
		metrics:      opts.Metrics,
		safetyMargin: opts.SafetyMargin,
		timeout:      opts.Timeout,
		now:          opts.Now,
	}

	if m.authURL == "" {
		m.authURL = config.AuthURL
	}
	if m.store == nil {
		m.store = credstore.NewMemoryStore()
	}
	if m.metrics == nil {
		m.metrics = &metrics.NoopProvider{}
	}
	if m.safetyMargin <= 0 {
		m.safetyMargin = DefaultSafetyMargin
	}
	if m.timeout <= 0 {
		m.timeout = 30 * time.Second
	}
	if m.now == nil {
		m.now = time.Now
	}
	if opts.Logger != nil {
		m.log = *opts.Logger
	} else {
		m.log = zerolog.Nop()
	}

	switch cfg.Mode {
	case types.ModeStaticToken:
		m.token = &types.TokenRecord{AccessToken: cfg.Token, TokenType: "Bearer"}
	case types.ModeTrialFixed:
		m.token = &types.TokenRecord{AccessToken: config.TrialToken, TokenType: "Bearer"}
	}

	return m, nil
}

// Credentials retorna um token utilizável, renovando-o se necessário.
// Nos modos estático e Trial nunca toca a rede.
func (m *Manager) Credentials(ctx context.Context) (*types.TokenRecord, error) {
	if tok := m.cached(); tok != nil {
		return tok, nil
	}

	// singleflight colapsa chamadas concorrentes em uma única aquisição.
	v, err, _ := m.group.Do("token", func() (any, error) {
		if tok := m.cached(); tok != nil {
			return tok, nil
		}
		// A aquisição segue até o fim mesmo que o chamador original
		// desista: o token obtido serve às demais chamadas em espera.
		return m.acquire(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.TokenRecord), nil
}

func (m *Manager) cached() *types.TokenRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token != nil && m.token.Fresh(m.now(), m.safetyMargin) {
		cp := *m.token
		return &cp
	}
	return nil
}

// acquire tenta primeiro o token persistido no Store; se ausente ou
// vencido, autentica no servidor e persiste o resultado.
func (m *Manager) acquire(ctx context.Context) (*types.TokenRecord, error) {
	if stored, err := m.store.LoadToken(ctx); err == nil && stored != nil {
		if stored.Fresh(m.now(), m.safetyMargin) && stored.ExpiresIn > 0 {
			m.setToken(stored)
			m.log.Debug().Msg("token reaproveitado do store")
			return stored, nil
		}
	}

	client, err := m.certificateClient()
	if err != nil {
		return nil, err
	}

	tok, err := fetchToken(ctx, client, m.authURL, m.cfg, m.now())
	if err != nil {
		m.metrics.Count(metrics.MetricAuthTokenFetch, 1, []string{"result:error"})
		return nil, err
	}
	m.metrics.Count(metrics.MetricAuthTokenFetch, 1, []string{"result:ok"})
	m.log.Info().Int64("expires_in", tok.ExpiresIn).Msg("token obtido no servidor de autenticação")

	m.setToken(tok)

	// Persistência best-effort: falha no store não invalida o token.
	if err := m.store.SaveConfig(ctx, &m.cfg); err != nil {
		m.log.Warn().Err(err).Msg("erro ao persistir credenciais no store")
	}
	if err := m.store.SaveToken(ctx, tok); err != nil {
		m.log.Warn().Err(err).Msg("erro ao persistir token no store")
	}

	return tok, nil
}

func (m *Manager) certificateClient() (*http.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client != nil {
		return m.client, nil
	}
	client, err := newCertificateClient(m.cfg.CertificatePath, m.cfg.CertificatePassword, m.timeout)
	if err != nil {
		return nil, err
	}
	m.client = client
	return client, nil
}

func (m *Manager) setToken(tok *types.TokenRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = tok
}

// ClearCache descarta o token em memória. A próxima chamada volta ao
// Store ou ao servidor de autenticação.
func (m *Manager) ClearCache() {
	if m.cfg.Mode != types.ModeCertificateOAuth {
		return
	}
	m.setToken(nil)
}

// ClearStoredToken remove o token persistido e o cache em memória.
func (m *Manager) ClearStoredToken(ctx context.Context) error {
	m.ClearCache()
	return m.store.SaveToken(ctx, nil)
}
