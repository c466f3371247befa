// Package config define os ambientes da API, as URLs de gateway e
// autenticação e a configuração do cliente, com carregamento a partir
// de valores explícitos, variáveis de ambiente ou arquivo YAML.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/raywall/integra-contador-sdk/pkg/types"
)

// TrialToken é o token fixo aceito pelo ambiente Trial quando nenhum
// token é informado. Não expira nem rotaciona.
const TrialToken = "06aef429-a981-3ec5-a1f8-71d38d86481e"

// URLs fixas da API por ambiente.
const (
	BaseURLTrial      = "https://gateway.apiserpro.serpro.gov.br/integra-contador-trial"
	BaseURLProduction = "https://gateway.apiserpro.serpro.gov.br/integra-contador"
	AuthURL           = "https://autenticacao.sapi.serpro.gov.br/authenticate"
)

// Environment identifica o ambiente alvo da API.
type Environment string

const (
	Trial      Environment = "Trial"
	Production Environment = "Production"
)

// ParseEnvironment converte o nome do ambiente, aceitando qualquer caixa.
func ParseEnvironment(name string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trial":
		return Trial, nil
	case "production", "producao", "produção":
		return Production, nil
	default:
		return "", fmt.Errorf("ambiente desconhecido: %q", name)
	}
}

// BaseURL retorna a URL base do gateway para o ambiente.
func (e Environment) BaseURL() string {
	if e == Production {
		return BaseURLProduction
	}
	return BaseURLTrial
}

// AuthURL retorna a URL do servidor de autenticação. Hoje é a mesma para
// os dois ambientes; o método existe para isolar uma eventual divergência.
func (e Environment) AuthURL() string {
	return AuthURL
}

// RetryConf parametriza o retry de falhas de rede do dispatcher.
// Respostas não-2xx nunca são retentadas. Durações são strings no
// formato do time.ParseDuration (ex: "500ms", "2s").
type RetryConf struct {
	MaxAttempts  int     `yaml:"max_attempts" env:"INTEGRA_RETRY_MAX_ATTEMPTS" validate:"omitempty,gte=1"`
	InitialDelay string  `yaml:"initial_delay" env:"INTEGRA_RETRY_INITIAL_DELAY"`
	MaxDelay     string  `yaml:"max_delay" env:"INTEGRA_RETRY_MAX_DELAY"`
	Multiplier   float64 `yaml:"multiplier"`
	Jitter       bool    `yaml:"jitter"`
}

// GetMaxAttempts retorna o número de tentativas (default 3).
func (r RetryConf) GetMaxAttempts() int {
	if r.MaxAttempts <= 0 {
		return 3
	}
	return r.MaxAttempts
}

// GetInitialDelay retorna o delay inicial entre tentativas (default 500ms).
func (r RetryConf) GetInitialDelay() time.Duration {
	d, err := time.ParseDuration(r.InitialDelay)
	if err != nil || d <= 0 {
		return 500 * time.Millisecond
	}
	return d
}

// GetMaxDelay retorna o teto do backoff (default 10s).
func (r RetryConf) GetMaxDelay() time.Duration {
	d, err := time.ParseDuration(r.MaxDelay)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// GetMultiplier retorna o multiplicador do backoff exponencial (default 2).
func (r RetryConf) GetMultiplier() float64 {
	if r.Multiplier <= 1 {
		return 2.0
	}
	return r.Multiplier
}

// LoggingConf controla o logger zerolog do SDK.
type LoggingConf struct {
	Enabled bool   `yaml:"enabled" env:"INTEGRA_LOG_ENABLED" envDefault:"true"`
	Level   string `yaml:"level" env:"INTEGRA_LOG_LEVEL" envDefault:"info" validate:"omitempty,oneof=trace debug info warn error"`
	Format  string `yaml:"format" env:"INTEGRA_LOG_FORMAT" envDefault:"json" validate:"omitempty,oneof=json console"`
}

// MetricsConf controla o envio opcional de métricas via DogStatsD.
type MetricsConf struct {
	Enabled   bool   `yaml:"enabled" env:"INTEGRA_METRICS_ENABLED"`
	Addr      string `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string `yaml:"namespace" env:"INTEGRA_METRICS_NAMESPACE" envDefault:"integra_sdk."`
}

// Config é a configuração completa do cliente.
type Config struct {
	Environment Environment `yaml:"environment" env:"INTEGRA_ENVIRONMENT" envDefault:"Trial" validate:"required,oneof=Trial Production"`

	Contratante      types.Party `yaml:"contratante" validate:"required"`
	Contribuinte     types.Party `yaml:"contribuinte" validate:"required"`
	AutorPedidoDados types.Party `yaml:"autor_pedido_dados" validate:"required"`

	// Token estático (opcional). Em Trial, na ausência dele e de
	// credenciais de certificado, o TrialToken fixo é usado.
	Token string `yaml:"token" env:"INTEGRA_TOKEN"`

	// Credenciais do fluxo com certificado (tudo-ou-nada).
	ConsumerKey         string `yaml:"consumer_key" env:"INTEGRA_CONSUMER_KEY"`
	ConsumerSecret      string `yaml:"consumer_secret" env:"INTEGRA_CONSUMER_SECRET"`
	CertificatePath     string `yaml:"certificate_path" env:"INTEGRA_CERTIFICATE_PATH"`
	CertificatePassword string `yaml:"certificate_password" env:"INTEGRA_CERTIFICATE_PASSWORD"`

	// BaseURL substitui a URL do gateway (testes e proxies internos).
	BaseURL string `yaml:"base_url" env:"INTEGRA_BASE_URL" validate:"omitempty,url"`
	// AuthURL substitui a URL do servidor de autenticação.
	AuthURL string `yaml:"auth_url" env:"INTEGRA_AUTH_URL" validate:"omitempty,url"`

	// Timeout da requisição HTTP no formato do time.ParseDuration.
	Timeout string      `yaml:"timeout" env:"INTEGRA_TIMEOUT"`
	Retry   RetryConf   `yaml:"retry"`
	Logging LoggingConf `yaml:"logging"`
	Metrics MetricsConf `yaml:"metrics"`
}

// ResolveBaseURL retorna a URL base efetiva (override ou padrão do ambiente).
func (c Config) ResolveBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return c.Environment.BaseURL()
}

// ResolveAuthURL retorna a URL de autenticação efetiva.
func (c Config) ResolveAuthURL() string {
	if c.AuthURL != "" {
		return c.AuthURL
	}
	return c.Environment.AuthURL()
}

// ResolveTimeout retorna o timeout da requisição HTTP (default 30s).
func (c Config) ResolveTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// AuthConfig monta o types.AuthConfig correspondente às credenciais.
func (c Config) AuthConfig() types.AuthConfig {
	ac := types.AuthConfig{
		Token:               c.Token,
		ConsumerKey:         c.ConsumerKey,
		ConsumerSecret:      c.ConsumerSecret,
		CertificatePath:     c.CertificatePath,
		CertificatePassword: c.CertificatePassword,
	}
	switch {
	case c.Token != "":
		ac.Mode = types.ModeStaticToken
	case ac.HasAnyCertificateCredential():
		ac.Mode = types.ModeCertificateOAuth
	default:
		ac.Mode = types.ModeTrialFixed
	}
	return ac
}

var validate = validator.New()

// Validate realiza a validação estrutural (tags) e as regras semânticas
// que as tags não expressam.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, fmt.Sprintf("campo '%s' falhou na regra '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("configuração inválida:\n- %s", strings.Join(msgs, "\n- "))
		}
		return fmt.Errorf("configuração inválida: %w", err)
	}

	auth := c.AuthConfig()
	if auth.Mode == types.ModeCertificateOAuth {
		if c.Environment == Trial {
			return fmt.Errorf("o ambiente Trial não usa autenticação com certificado; remova consumer_key, consumer_secret, certificate_path e certificate_password")
		}
		if !auth.HasCertificateCredentials() {
			return fmt.Errorf("autenticação com certificado exige os quatro parâmetros: consumer_key, consumer_secret, certificate_path e certificate_password")
		}
	}
	return nil
}
