// Package transport despacha os envelopes montados contra o gateway da
// API. Falhas de rede são retentadas com backoff exponencial; respostas
// não-2xx nunca são retentadas e viram APIError.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/raywall/integra-contador-sdk/pkg/auth"
	"github.com/raywall/integra-contador-sdk/pkg/builder"
	"github.com/raywall/integra-contador-sdk/pkg/config"
	"github.com/raywall/integra-contador-sdk/pkg/metrics"
	"github.com/raywall/integra-contador-sdk/pkg/sdkerrors"
	"github.com/raywall/integra-contador-sdk/pkg/templates"
	"github.com/raywall/integra-contador-sdk/pkg/types"
)

// Options parametriza o Dispatcher. Campos nulos recebem defaults.
type Options struct {
	HTTPClient *http.Client
	Logger     *zerolog.Logger
	Metrics    metrics.Provider
	Retry      config.RetryConf
	Timeout    time.Duration
}

// Dispatcher envia requisições autenticadas para o gateway.
type Dispatcher struct {
	client  *http.Client
	baseURL string
	auth    *auth.Manager
	log     zerolog.Logger
	metrics metrics.Provider
	backoff backoffConfig
}

func NewDispatcher(baseURL string, mgr *auth.Manager, opts Options) *Dispatcher {
	d := &Dispatcher{
		client:  opts.HTTPClient,
		baseURL: baseURL,
		auth:    mgr,
		metrics: opts.Metrics,
		backoff: newBackoffConfig(opts.Retry),
	}

	if d.client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		d.client = &http.Client{Timeout: timeout}
	}
	if d.metrics == nil {
		d.metrics = &metrics.NoopProvider{}
	}
	if opts.Logger != nil {
		d.log = *opts.Logger
	} else {
		d.log = zerolog.Nop()
	}

	return d
}

// Dispatch envia o envelope para POST {base}/v1/{endpoint} e normaliza
// a resposta. O token nunca aparece nos logs.
func (d *Dispatcher) Dispatch(ctx context.Context, endpoint templates.Endpoint, env types.RequestEnvelope) (*types.ResponseEnvelope, error) {
	tok, err := d.auth.Credentials(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar envelope: %w", err)
	}

	url := d.baseURL + "/v1/" + string(endpoint)
	requestID := uuid.NewString()
	start := time.Now()

	resp, attempts, err := d.doWithRetry(ctx, url, payload, tok, requestID)
	if err != nil {
		d.metrics.Count(metrics.MetricRequests, 1, d.tags(endpoint, env, "status:network_error"))
		d.log.Error().
			Str("request_id", requestID).
			Str("endpoint", string(endpoint)).
			Int("attempts", attempts).
			Err(err).
			Msg("falha de rede ao chamar a API")
		return nil, &sdkerrors.HTTPError{Attempts: attempts, Err: err}
	}
	defer resp.Body.Close()

	if attempts > 1 {
		d.metrics.Count(metrics.MetricRequestRetries, float64(attempts-1), d.tags(endpoint, env))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &sdkerrors.HTTPError{Attempts: attempts, Err: err}
	}

	elapsed := time.Since(start)
	d.metrics.Count(metrics.MetricRequests, 1, d.tags(endpoint, env, fmt.Sprintf("status:%d", resp.StatusCode)))
	d.metrics.Histogram(metrics.MetricRequestDuration, float64(elapsed.Milliseconds()), d.tags(endpoint, env))

	d.log.Info().
		Str("request_id", requestID).
		Str("endpoint", string(endpoint)).
		Str("sistema", env.PedidoDados.IDSistema).
		Str("servico", env.PedidoDados.IDServico).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("requisição concluída")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &sdkerrors.APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return builder.Normalize(body)
}

// doWithRetry executa a requisição retentando apenas falhas de rede.
// Uma resposta recebida, qualquer que seja o status, encerra o loop.
func (d *Dispatcher) doWithRetry(ctx context.Context, url string, payload []byte, tok *types.TokenRecord, requestID string) (*http.Response, int, error) {
	var lastErr error
	attempts := 0

	for attempt := 0; attempt < d.backoff.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := calculateBackoff(attempt-1, d.backoff)
			d.log.Debug().
				Str("request_id", requestID).
				Int("attempt", attempt+1).
				Dur("delay", delay).
				Msg("retentando após falha de rede")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, attempts, ctx.Err()
			}

			// O backoff pode ter cruzado a expiração do token; o Manager
			// devolve o cache quando ele ainda está fresco.
			if fresh, err := d.auth.Credentials(ctx); err == nil {
				tok = fresh
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, attempts, err
		}
		req.Header.Set("Accept", "text/plain")
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
		req.Header.Set("X-Request-Id", requestID)
		if tok.JWTToken != "" {
			req.Header.Set("jwt_token", tok.JWTToken)
		}

		attempts++
		resp, err := d.client.Do(req)
		if err == nil {
			return resp, attempts, nil
		}
		lastErr = err

		// Contexto do chamador morto: retentar não ajuda.
		if ctx.Err() != nil {
			break
		}
	}

	return nil, attempts, lastErr
}

func (d *Dispatcher) tags(endpoint templates.Endpoint, env types.RequestEnvelope, extra ...string) []string {
	tags := []string{
		"endpoint:" + string(endpoint),
		"sistema:" + env.PedidoDados.IDSistema,
		"servico:" + env.PedidoDados.IDServico,
	}
	return append(tags, extra...)
}
