package types

import "time"

// AuthMode identifica a estratégia de obtenção de token.
type AuthMode string

const (
	// ModeStaticToken usa um token informado na construção do cliente,
	// sem controle de expiração.
	ModeStaticToken AuthMode = "static"

	// ModeTrialFixed usa o token fixo do ambiente Trial quando nenhum
	// token foi informado. Não expira.
	ModeTrialFixed AuthMode = "trial"

	// ModeCertificateOAuth obtém o token via OAuth2 client_credentials
	// autenticado com certificado digital (.p12). Obrigatório em
	// Produção quando não há token estático.
	ModeCertificateOAuth AuthMode = "certificate"
)

// AuthConfig reúne as credenciais de autenticação do cliente.
// Imutável durante a vida do cliente; no modo certificado é persistida
// no Store após a primeira autenticação bem-sucedida.
type AuthConfig struct {
	Mode                AuthMode `json:"mode"`
	Token               string   `json:"token,omitempty"`
	ConsumerKey         string   `json:"consumer_key,omitempty"`
	ConsumerSecret      string   `json:"consumer_secret,omitempty"`
	CertificatePath     string   `json:"certificate_path,omitempty"`
	CertificatePassword string   `json:"certificate_password,omitempty"`
}

// HasCertificateCredentials informa se todos os quatro parâmetros do
// fluxo com certificado foram preenchidos.
func (c AuthConfig) HasCertificateCredentials() bool {
	return c.ConsumerKey != "" && c.ConsumerSecret != "" &&
		c.CertificatePath != "" && c.CertificatePassword != ""
}

// HasAnyCertificateCredential informa se ao menos um dos parâmetros do
// fluxo com certificado foi preenchido (para validar o tudo-ou-nada).
func (c AuthConfig) HasAnyCertificateCredential() bool {
	return c.ConsumerKey != "" || c.ConsumerSecret != "" ||
		c.CertificatePath != "" || c.CertificatePassword != ""
}

// TokenRecord é o token em cache mantido pelo auth.Manager e persistido
// no Store. Um registro é utilizável enquanto
// now < ObtainedAt + ExpiresIn - margem de segurança.
type TokenRecord struct {
	AccessToken string    `json:"access_token"`
	JWTToken    string    `json:"jwt_token,omitempty"`
	TokenType   string    `json:"token_type,omitempty"`
	Scope       string    `json:"scope,omitempty"`
	ObtainedAt  time.Time `json:"obtained_at"`
	ExpiresIn   int64     `json:"expires_in"`
}

// Fresh informa se o token ainda é válido no instante now, considerando
// a margem de segurança. ExpiresIn igual a zero significa token sem
// expiração (Trial ou token estático).
func (t TokenRecord) Fresh(now time.Time, safetyMargin time.Duration) bool {
	if t.AccessToken == "" {
		return false
	}
	if t.ExpiresIn == 0 {
		return true
	}
	deadline := t.ObtainedAt.Add(time.Duration(t.ExpiresIn)*time.Second - safetyMargin)
	return now.Before(deadline)
}
