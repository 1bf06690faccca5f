// Package observability wires logging and metrics into the fx graph.
package observability

import (
	"github.com/strideworks/paceline/internal/config"
	"github.com/strideworks/paceline/internal/observability/logger"
	"github.com/strideworks/paceline/internal/observability/metrics"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(
		provideLoggerConfig,
		logger.New,
		metrics.NewHTTPMetrics,
		metrics.NewImportMetrics,
	),
)

func provideLoggerConfig(cfg config.Config) logger.Config {
	return logger.Config{
		ServiceName:         cfg.AppName,
		Environment:         cfg.Environment,
		Version:             cfg.AppVersion,
		Level:               cfg.LogLevel,
		Format:              cfg.LogFormat,
		Debug:               !cfg.IsProduction(),
		IncludeCaller:       true,
		IncludeStackOnError: !cfg.IsProduction(),
	}
}
