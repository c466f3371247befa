package integra

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/raywall/integra-contador-sdk/pkg/auth"
	"github.com/raywall/integra-contador-sdk/pkg/builder"
	"github.com/raywall/integra-contador-sdk/pkg/config"
	"github.com/raywall/integra-contador-sdk/pkg/credstore"
	"github.com/raywall/integra-contador-sdk/pkg/logger"
	"github.com/raywall/integra-contador-sdk/pkg/metrics"
	"github.com/raywall/integra-contador-sdk/pkg/sdkerrors"
	"github.com/raywall/integra-contador-sdk/pkg/templates"
	"github.com/raywall/integra-contador-sdk/pkg/transport"
	"github.com/raywall/integra-contador-sdk/pkg/types"
)

// Client é o ponto de entrada do SDK. Uma instância é segura para uso
// concorrente: o estado mutável (token) é todo do auth.Manager.
type Client struct {
	cfg        config.Config
	parties    builder.Parties
	registry   *templates.Registry
	auth       *auth.Manager
	dispatcher *transport.Dispatcher
	log        zerolog.Logger
	metrics    metrics.Provider
	ownMetrics bool
}

type options struct {
	store       credstore.Store
	httpClient  *http.Client
	authClient  *http.Client
	registry    *templates.Registry
	metricsProv metrics.Provider
	logger      *zerolog.Logger
	now         func() time.Time
}

// Option ajusta dependências do cliente na construção.
type Option func(*options)

// WithStore substitui o armazenamento de credenciais (default: arquivo
// em ~/.integra-contador/credentials.json).
func WithStore(s credstore.Store) Option {
	return func(o *options) { o.store = s }
}

// WithHTTPClient substitui o client HTTP usado para chamar o gateway.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithAuthHTTPClient substitui o client HTTP do servidor de autenticação,
// que normalmente é montado a partir do certificado digital.
func WithAuthHTTPClient(c *http.Client) Option {
	return func(o *options) { o.authClient = c }
}

// WithRegistry substitui o catálogo default de templates.
func WithRegistry(r *templates.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithMetricsProvider substitui o provedor de métricas configurado.
func WithMetricsProvider(p metrics.Provider) Option {
	return func(o *options) { o.metricsProv = p }
}

// WithLogger substitui o logger montado a partir da configuração.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = &l }
}

// WithClock substitui a fonte de tempo do controle de expiração (testes).
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New valida a configuração e monta o cliente. Em Produção, na ausência
// de token e de credenciais de certificado, tenta as credenciais salvas
// no Store; se ainda assim não houver, falha com InvalidCredentialsError
// antes de qualquer requisição.
func New(cfg config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, fn := range opts {
		fn(&o)
	}

	log := resolveLogger(cfg, o)

	store := o.store
	if store == nil {
		store = defaultStore()
	}

	authCfg := cfg.AuthConfig()
	if cfg.Environment == config.Production && authCfg.Mode == types.ModeTrialFixed {
		saved, loadErr := store.LoadConfig(context.Background())
		if loadErr == nil && saved != nil && saved.Mode != types.ModeTrialFixed {
			log.Debug().Msg("credenciais carregadas do store")
			authCfg = *saved
		} else {
			msg := "o ambiente de Produção exige token ou credenciais de certificado (token ou consumer_key/consumer_secret/certificate_path/certificate_password)"
			if loadErr != nil {
				log.Warn().Err(loadErr).Msg("falha ao ler credenciais salvas do store")
				msg = fmt.Sprintf("%s; leitura das credenciais salvas falhou: %v", msg, loadErr)
			}
			return nil, &sdkerrors.InvalidCredentialsError{AuthError: sdkerrors.AuthError{Message: msg}}
		}
	}

	prov := o.metricsProv
	ownMetrics := false
	if prov == nil {
		p, err := metrics.Setup(cfg.Metrics)
		if err != nil {
			return nil, err
		}
		prov = p
		ownMetrics = true
	}

	mgr, err := auth.NewManager(authCfg, auth.Options{
		AuthURL:    cfg.ResolveAuthURL(),
		Store:      store,
		HTTPClient: o.authClient,
		Logger:     &log,
		Metrics:    prov,
		Timeout:    cfg.ResolveTimeout(),
		Now:        o.now,
	})
	if err != nil {
		return nil, err
	}

	registry := o.registry
	if registry == nil {
		registry = templates.Default()
	}

	dispatcher := transport.NewDispatcher(cfg.ResolveBaseURL(), mgr, transport.Options{
		HTTPClient: o.httpClient,
		Logger:     &log,
		Metrics:    prov,
		Retry:      cfg.Retry,
		Timeout:    cfg.ResolveTimeout(),
	})

	return &Client{
		cfg: cfg,
		parties: builder.Parties{
			Contratante:      cfg.Contratante,
			Contribuinte:     cfg.Contribuinte,
			AutorPedidoDados: cfg.AutorPedidoDados,
		},
		registry:   registry,
		auth:       mgr,
		dispatcher: dispatcher,
		log:        log,
		metrics:    prov,
		ownMetrics: ownMetrics,
	}, nil
}

func resolveLogger(cfg config.Config, o options) zerolog.Logger {
	if o.logger != nil {
		return *o.logger
	}
	return logger.Configure(cfg.Logging)
}

// defaultStore persiste credenciais no diretório home do usuário. Sem
// home disponível, cai para um store em memória.
func defaultStore() credstore.Store {
	home, err := os.UserHomeDir()
	if err != nil {
		return credstore.NewMemoryStore()
	}
	return credstore.NewFileStore(filepath.Join(home, ".integra-contador", "credentials.json"))
}

// Consultar executa serviços de consulta (POST /v1/Consultar).
func (c *Client) Consultar(ctx context.Context, idSistema, idServico string, dados map[string]any) (*types.ResponseEnvelope, error) {
	return c.call(ctx, templates.EndpointConsultar, idSistema, idServico, dados)
}

// Emitir executa serviços de emissão de documentos (POST /v1/Emitir).
func (c *Client) Emitir(ctx context.Context, idSistema, idServico string, dados map[string]any) (*types.ResponseEnvelope, error) {
	return c.call(ctx, templates.EndpointEmitir, idSistema, idServico, dados)
}

// Transmitir executa serviços de transmissão (POST /v1/Transmitir).
func (c *Client) Transmitir(ctx context.Context, idSistema, idServico string, dados map[string]any) (*types.ResponseEnvelope, error) {
	return c.call(ctx, templates.EndpointTransmitir, idSistema, idServico, dados)
}

// Declarar executa serviços de entrega de declarações (POST /v1/Declarar).
func (c *Client) Declarar(ctx context.Context, idSistema, idServico string, dados map[string]any) (*types.ResponseEnvelope, error) {
	return c.call(ctx, templates.EndpointDeclarar, idSistema, idServico, dados)
}

// Apoiar executa serviços de apoio (POST /v1/Apoiar).
func (c *Client) Apoiar(ctx context.Context, idSistema, idServico string, dados map[string]any) (*types.ResponseEnvelope, error) {
	return c.call(ctx, templates.EndpointApoiar, idSistema, idServico, dados)
}

// Monitorar executa serviços de monitoramento (POST /v1/Monitorar).
func (c *Client) Monitorar(ctx context.Context, idSistema, idServico string, dados map[string]any) (*types.ResponseEnvelope, error) {
	return c.call(ctx, templates.EndpointMonitorar, idSistema, idServico, dados)
}

// Call resolve o template e usa o endpoint registrado no catálogo, sem
// que o chamador precise saber a qual operação o serviço pertence.
func (c *Client) Call(ctx context.Context, idSistema, idServico string, dados map[string]any) (*types.ResponseEnvelope, error) {
	t, err := c.registry.Resolve(idSistema, idServico)
	if err != nil {
		return nil, err
	}
	return c.call(ctx, t.Endpoint, idSistema, idServico, dados)
}

// Authenticate força a obtenção de um token utilizável sem despachar
// requisição alguma. Útil para validar credenciais na subida do processo.
func (c *Client) Authenticate(ctx context.Context) error {
	_, err := c.auth.Credentials(ctx)
	return err
}

// ClearTokenCache descarta o token em memória; a próxima chamada renova.
func (c *Client) ClearTokenCache() {
	c.auth.ClearCache()
}

// ClearStoredToken remove o token persistido e o cache em memória.
func (c *Client) ClearStoredToken(ctx context.Context) error {
	return c.auth.ClearStoredToken(ctx)
}

// Close libera recursos do cliente (hoje, o provedor de métricas quando
// construído internamente).
func (c *Client) Close() error {
	if c.ownMetrics {
		return c.metrics.Close()
	}
	return nil
}

// call é o núcleo de despacho: resolve, valida, monta e envia.
func (c *Client) call(ctx context.Context, endpoint templates.Endpoint, idSistema, idServico string, dados map[string]any) (*types.ResponseEnvelope, error) {
	t, err := c.registry.Resolve(idSistema, idServico)
	if err != nil {
		return nil, err
	}

	env, err := builder.Build(t, dados, c.parties)
	if err != nil {
		return nil, err
	}

	return c.dispatcher.Dispatch(ctx, endpoint, env)
}
