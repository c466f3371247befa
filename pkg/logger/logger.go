// Package logger inicializa o zerolog do SDK a partir da configuração.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/raywall/integra-contador-sdk/pkg/config"
)

// Configure cria o logger raiz do SDK. Com logging desabilitado o output
// é descartado; formato "console" é voltado ao uso local.
func Configure(cfg config.LoggingConf) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var output io.Writer = os.Stdout
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("sdk", "integra-contador").
		Logger()
}
