package transport

import (
	"math"
	"math/rand"
	"time"

	"github.com/raywall/integra-contador-sdk/pkg/config"
)

// backoffConfig é a config.RetryConf com os defaults já resolvidos.
type backoffConfig struct {
	maxAttempts  int
	initialDelay time.Duration
	maxDelay     time.Duration
	multiplier   float64
	jitter       bool
}

func newBackoffConfig(rc config.RetryConf) backoffConfig {
	return backoffConfig{
		maxAttempts:  rc.GetMaxAttempts(),
		initialDelay: rc.GetInitialDelay(),
		maxDelay:     rc.GetMaxDelay(),
		multiplier:   rc.GetMultiplier(),
		jitter:       rc.Jitter,
	}
}

// calculateBackoff calcula o delay da retentativa de índice attempt
// (base zero): initial * (multiplier ^ attempt), limitado por maxDelay.
func calculateBackoff(attempt int, cfg backoffConfig) time.Duration {
	delay := float64(cfg.initialDelay) * math.Pow(cfg.multiplier, float64(attempt))

	if delay > float64(cfg.maxDelay) {
		delay = float64(cfg.maxDelay)
	}

	// Jitter de ±25% para evitar thundering herd.
	if cfg.jitter {
		delay += delay * 0.25 * (2*rand.Float64() - 1)
	}

	return time.Duration(delay)
}
