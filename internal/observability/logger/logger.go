package logger

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config configures the zap logger.
type Config struct {
	ServiceName string
	Environment string
	Version     string
	Level       string
	Format      string
	Debug       bool

	IncludeCaller       bool
	IncludeStackOnError bool
}

// New builds a structured zap.Logger and registers lifecycle hooks.
func New(lc fx.Lifecycle, cfg Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Encoding = normalizeFormat(cfg.Format)
	zapCfg.EncoderConfig.TimeKey = "ts"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.OutputPaths = []string{"stdout"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	level := strings.TrimSpace(cfg.Level)
	if level == "" {
		level = "info"
	}
	if err := zapCfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	options := []zap.Option{}
	if cfg.IncludeCaller {
		options = append(options, zap.AddCaller())
	}
	if cfg.IncludeStackOnError {
		options = append(options, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	log, err := zapCfg.Build(options...)
	if err != nil {
		return nil, err
	}

	fields := []zap.Field{}
	if name := strings.TrimSpace(cfg.ServiceName); name != "" {
		fields = append(fields, zap.String("service", name))
	}
	if env := strings.TrimSpace(cfg.Environment); env != "" {
		fields = append(fields, zap.String("environment", env))
	}
	if version := strings.TrimSpace(cfg.Version); version != "" {
		fields = append(fields, zap.String("version", version))
	}
	log = log.With(fields...)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				_ = log.Sync()
				return nil
			},
		})
	}

	zap.ReplaceGlobals(log)
	return log, nil
}

func normalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "text":
		return "console"
	default:
		return "json"
	}
}
