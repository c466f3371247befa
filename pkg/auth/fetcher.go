package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/raywall/integra-contador-sdk/pkg/sdkerrors"
	"github.com/raywall/integra-contador-sdk/pkg/types"
)

// tokenResponse mapeia a resposta do servidor de autenticação do SERPRO
// (RFC 6749 mais o jwt_token proprietário exigido pelo gateway).
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	JWTToken    string `json:"jwt_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	ExpiresIn   int64  `json:"expires_in"` // Tempo em segundos
}

// fetchToken executa o fluxo client_credentials contra authURL usando
// Basic auth (consumer key/secret) sobre um client que já apresenta o
// certificado digital. O mapeamento de status para erro segue o
// comportamento do servidor: 400 indica problema com o certificado,
// 401/403 indicam credenciais rejeitadas.
func fetchToken(ctx context.Context, client *http.Client, authURL string, cfg types.AuthConfig, now time.Time) (*types.TokenRecord, error) {
	data := url.Values{}
	data.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, authURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, &sdkerrors.AuthError{Message: fmt.Sprintf("erro ao criar request: %v", err)}
	}

	req.SetBasicAuth(cfg.ConsumerKey, cfg.ConsumerSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Role-Type", "TERCEIROS")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &sdkerrors.AuthError{Message: fmt.Sprintf("erro de conexão com o servidor de autenticação: %v", err)}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return nil, &sdkerrors.CertificateError{AuthError: sdkerrors.AuthError{
			StatusCode: resp.StatusCode,
			Message:    "servidor de autenticação rejeitou o certificado",
			Body:       string(body),
		}}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &sdkerrors.InvalidCredentialsError{AuthError: sdkerrors.AuthError{
			StatusCode: resp.StatusCode,
			Message:    "consumer key/secret rejeitados",
			Body:       string(body),
		}}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &sdkerrors.AuthError{
			StatusCode: resp.StatusCode,
			Message:    "servidor de autenticação retornou erro",
			Body:       string(body),
		}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, &sdkerrors.AuthError{Message: fmt.Sprintf("erro ao decodificar resposta do token: %v", err)}
	}
	if tr.AccessToken == "" {
		return nil, &sdkerrors.AuthError{Message: "access_token veio vazio"}
	}

	return &types.TokenRecord{
		AccessToken: tr.AccessToken,
		JWTToken:    tr.JWTToken,
		TokenType:   tr.TokenType,
		Scope:       tr.Scope,
		ObtainedAt:  now,
		ExpiresIn:   tr.ExpiresIn,
	}, nil
}
