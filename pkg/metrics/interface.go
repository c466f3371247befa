package metrics

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por outra implementação sem alterar o SDK.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
	Close() error
}

// Nomes das métricas emitidas pelo SDK. As tags carregam sistema,
// serviço, endpoint e status.
const (
	MetricRequests        = "requests"
	MetricRequestDuration = "request.duration"
	MetricRequestRetries  = "request.retries"
	MetricAuthTokenFetch  = "auth.token_fetch"
)
