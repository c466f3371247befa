package integra

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/integra-contador-sdk/pkg/config"
	"github.com/raywall/integra-contador-sdk/pkg/credstore"
	"github.com/raywall/integra-contador-sdk/pkg/sdkerrors"
	"github.com/raywall/integra-contador-sdk/pkg/types"
)

func trialConfig(baseURL string) config.Config {
	p := types.Party{Numero: "11111111000191", Tipo: types.TipoPessoaJuridica}
	return config.Config{
		Environment:      config.Trial,
		Contratante:      p,
		Contribuinte:     p,
		AutorPedidoDados: p,
		BaseURL:          baseURL,
		Retry:            config.RetryConf{MaxAttempts: 1},
	}
}

func productionConfig(baseURL, authURL string) config.Config {
	cfg := trialConfig(baseURL)
	cfg.Environment = config.Production
	cfg.AuthURL = authURL
	cfg.ConsumerKey = "minha-key"
	cfg.ConsumerSecret = "meu-secret"
	cfg.CertificatePath = "/tmp/cert.p12"
	cfg.CertificatePassword = "senha"
	return cfg
}

// failingStore simula um store ilegível (permissão, disco corrompido).
type failingStore struct {
	credstore.Store
}

func (f *failingStore) LoadConfig(ctx context.Context) (*types.AuthConfig, error) {
	return nil, errors.New("permissão negada")
}

func gatewayServer(t *testing.T, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestNew(t *testing.T) {
	t.Run("Trial sem token usa o token fixo", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer "+config.TrialToken, r.Header.Get("Authorization"))
			fmt.Fprint(w, `{"status":200}`)
		}))
		defer srv.Close()

		client, err := New(trialConfig(srv.URL), WithStore(credstore.NewMemoryStore()))
		require.NoError(t, err)
		defer client.Close()

		// Nenhuma chamada de autenticação acontece no Trial.
		resp, err := client.Consultar(context.Background(), "CCMEI", "DADOSCCMEI122", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.Status)
	})

	t.Run("Produção sem credenciais falha na construção", func(t *testing.T) {
		cfg := trialConfig("")
		cfg.Environment = config.Production

		_, err := New(cfg, WithStore(credstore.NewMemoryStore()))

		var invalid *sdkerrors.InvalidCredentialsError
		require.True(t, errors.As(err, &invalid))
	})

	t.Run("Falha de leitura do store aparece no erro", func(t *testing.T) {
		cfg := trialConfig("")
		cfg.Environment = config.Production

		_, err := New(cfg, WithStore(&failingStore{Store: credstore.NewMemoryStore()}))

		var invalid *sdkerrors.InvalidCredentialsError
		require.True(t, errors.As(err, &invalid))
		assert.Contains(t, err.Error(), "permissão negada")
	})

	t.Run("Produção recupera credenciais salvas no store", func(t *testing.T) {
		store := credstore.NewMemoryStore()
		require.NoError(t, store.SaveConfig(context.Background(), &types.AuthConfig{
			Mode:                types.ModeCertificateOAuth,
			ConsumerKey:         "key-salva",
			ConsumerSecret:      "secret-salvo",
			CertificatePath:     "/tmp/cert.p12",
			CertificatePassword: "senha",
		}))

		cfg := trialConfig("")
		cfg.Environment = config.Production

		client, err := New(cfg, WithStore(store), WithAuthHTTPClient(http.DefaultClient))
		require.NoError(t, err)
		client.Close()
	})

	t.Run("Configuração inválida falha antes de tudo", func(t *testing.T) {
		cfg := trialConfig("")
		cfg.Contratante = types.Party{}

		_, err := New(cfg)
		assert.Error(t, err)
	})
}

func TestClient_Operacoes(t *testing.T) {
	t.Run("Cada operação seleciona seu endpoint fixo", func(t *testing.T) {
		var lastPath atomic.Value
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastPath.Store(r.URL.Path)
			fmt.Fprint(w, `{"status":200}`)
		}))
		defer srv.Close()

		client, err := New(trialConfig(srv.URL), WithStore(credstore.NewMemoryStore()))
		require.NoError(t, err)
		defer client.Close()

		ctx := context.Background()

		_, err = client.Consultar(ctx, "CCMEI", "DADOSCCMEI122", nil)
		require.NoError(t, err)
		assert.Equal(t, "/v1/Consultar", lastPath.Load())

		_, err = client.Emitir(ctx, "PGDASD", "GERARDAS12", map[string]any{"periodoApuracao": "202401"})
		require.NoError(t, err)
		assert.Equal(t, "/v1/Emitir", lastPath.Load())

		_, err = client.Monitorar(ctx, "CAIXAPOSTAL", "INNOVAMSG63", nil)
		require.NoError(t, err)
		assert.Equal(t, "/v1/Monitorar", lastPath.Load())

		_, err = client.Apoiar(ctx, "SITFIS", "SOLICITARPROTOCOLO91", nil)
		require.NoError(t, err)
		assert.Equal(t, "/v1/Apoiar", lastPath.Load())
	})

	t.Run("Call usa o endpoint do catálogo", func(t *testing.T) {
		var lastPath atomic.Value
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastPath.Store(r.URL.Path)
			fmt.Fprint(w, `{"status":200}`)
		}))
		defer srv.Close()

		client, err := New(trialConfig(srv.URL), WithStore(credstore.NewMemoryStore()))
		require.NoError(t, err)
		defer client.Close()

		_, err = client.Call(context.Background(), "PGDASD", "GERARDAS12", map[string]any{"periodoApuracao": "202401"})
		require.NoError(t, err)
		assert.Equal(t, "/v1/Emitir", lastPath.Load())
	})

	t.Run("Par desconhecido falha sem tocar a rede", func(t *testing.T) {
		srv, hits := gatewayServer(t, `{"status":200}`)

		client, err := New(trialConfig(srv.URL), WithStore(credstore.NewMemoryStore()))
		require.NoError(t, err)
		defer client.Close()

		_, err = client.Consultar(context.Background(), "NAOEXISTE", "X1", nil)

		var notFound *sdkerrors.RequestNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, int32(0), hits.Load())
	})

	t.Run("Payload inválido falha sem tocar a rede", func(t *testing.T) {
		srv, hits := gatewayServer(t, `{"status":200}`)

		client, err := New(trialConfig(srv.URL), WithStore(credstore.NewMemoryStore()))
		require.NoError(t, err)
		defer client.Close()

		_, err = client.Emitir(context.Background(), "PGDASD", "GERARDAS12", map[string]any{})

		var verr *sdkerrors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, int32(0), hits.Load())
	})

	t.Run("Resposta não-2xx vira APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			fmt.Fprint(w, `{"mensagens":[]}`)
		}))
		defer srv.Close()

		client, err := New(trialConfig(srv.URL), WithStore(credstore.NewMemoryStore()))
		require.NoError(t, err)
		defer client.Close()

		_, err = client.Consultar(context.Background(), "CCMEI", "DADOSCCMEI122", nil)

		var apiErr *sdkerrors.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	})
}

func TestClient_FluxoCertificado(t *testing.T) {
	const tokenBody = `{"access_token":"tok-prod","jwt_token":"jwt-prod","token_type":"Bearer","expires_in":3600}`

	var authCalls atomic.Int32
	authSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authCalls.Add(1)
		fmt.Fprint(w, tokenBody)
	}))
	defer authSrv.Close()

	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-prod", r.Header.Get("Authorization"))
		assert.Equal(t, "jwt-prod", r.Header.Get("jwt_token"))
		fmt.Fprint(w, `{"status":200}`)
	}))
	defer gateway.Close()

	store := credstore.NewMemoryStore()
	cfg := productionConfig(gateway.URL, authSrv.URL)

	client, err := New(cfg, WithStore(store), WithAuthHTTPClient(http.DefaultClient))
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()

	// Primeira chamada autentica e persiste o token.
	_, err = client.Emitir(ctx, "PGMEI", "GERARDASPDF21", map[string]any{"periodoApuracao": "202401"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), authCalls.Load())

	saved, err := store.LoadToken(ctx)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "tok-prod", saved.AccessToken)

	// Segunda chamada reaproveita o cache, sem nova autenticação.
	_, err = client.Consultar(ctx, "PGMEI", "DIVIDAATIVA24", map[string]any{"anoCalendario": "2024"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), authCalls.Load())

	// Authenticate com token fresco também não toca a rede.
	require.NoError(t, client.Authenticate(ctx))
	assert.Equal(t, int32(1), authCalls.Load())

	// Limpar cache e persistência força nova autenticação.
	require.NoError(t, client.ClearStoredToken(ctx))
	require.NoError(t, client.Authenticate(ctx))
	assert.Equal(t, int32(2), authCalls.Load())
}
