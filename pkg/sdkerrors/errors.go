// Package sdkerrors define a taxonomia de erros do SDK.
//
// Todos os erros retornados pelo SDK são distinguíveis via errors.As,
// permitindo que o chamador trate cada categoria separadamente:
// template inexistente, payload inválido, falha de autenticação,
// falha de rede ou erro retornado pela própria API.
package sdkerrors

import (
	"fmt"
	"strings"
)

// RequestNotFoundError indica que não existe template registrado para o
// par (idSistema, idServico) informado.
type RequestNotFoundError struct {
	IDSistema string
	IDServico string
}

func (e *RequestNotFoundError) Error() string {
	return fmt.Sprintf("template não encontrado para sistema '%s' e serviço '%s'", e.IDSistema, e.IDServico)
}

// DuplicateTemplateError indica a tentativa de registrar duas vezes a
// mesma tripla (idSistema, idServico, versaoSistema).
type DuplicateTemplateError struct {
	IDSistema     string
	IDServico     string
	VersaoSistema string
}

func (e *DuplicateTemplateError) Error() string {
	return fmt.Sprintf("template duplicado: %s/%s versão %s", e.IDSistema, e.IDServico, e.VersaoSistema)
}

// FieldError descreve a falha de validação de um único campo do payload.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationError indica que o payload falhou na validação do schema do
// template. Fields carrega TODAS as falhas encontradas, não apenas a primeira.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.String()
	}
	return fmt.Sprintf("payload inválido: %s", strings.Join(msgs, "; "))
}

// AuthError é o erro base para falhas de autenticação junto ao provedor
// de tokens. InvalidCredentialsError e CertificateError o embutem.
type AuthError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *AuthError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("falha de autenticação (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("falha de autenticação: %s", e.Message)
}

// InvalidCredentialsError indica que o servidor de autenticação rejeitou
// a consumer key/secret (HTTP 401/403), ou que a configuração de
// credenciais está incompleta.
type InvalidCredentialsError struct {
	AuthError
}

// CertificateError indica falha ao carregar, decifrar ou apresentar o
// certificado digital (.p12).
type CertificateError struct {
	AuthError
}

// TokenExpiredError indica que o token em cache expirou. É tratado
// internamente pelo auth.Manager (dispara reaquisição) e normalmente
// não é observado pelo chamador.
type TokenExpiredError struct {
	AuthError
}

// HTTPError indica falha de rede (conexão recusada, timeout, DNS) após
// o esgotamento das tentativas de retry. Err guarda o último erro.
type HTTPError struct {
	Attempts int
	Err      error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("falha de rede após %d tentativa(s): %v", e.Attempts, e.Err)
}

func (e *HTTPError) Unwrap() error { return e.Err }

// APIError indica resposta não-2xx da API alvo. Nunca é retentado:
// um 4xx/5xx reflete uma decisão do servidor, não uma falha transiente.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API retornou status %d", e.StatusCode)
}
