package infra

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/davitran/clipshare/config"
)

type LoggerClient struct {
	logger   *slog.Logger
	provider *sdklog.LoggerProvider
}

// InitLoggerClient builds the service logger. With an OTLP endpoint
// configured, records are exported through the OTel log pipeline via the
// otelslog bridge; without one, logs go to stdout as JSON.
func InitLoggerClient(cfg *config.EnvConfig) *LoggerClient {
	if cfg.Observability.OTLPEndpoint == "" {
		return &LoggerClient{
			logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		}
	}

	exporter, err := otlploghttp.New(
		context.Background(),
		otlploghttp.WithEndpoint(cfg.Observability.OTLPEndpoint),
	)
	if err != nil {
		log.Printf("Warning: OTLP log exporter init failed: %v (falling back to stdout)", err)
		return &LoggerClient{
			logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		}
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.Observability.ServiceName),
		semconv.DeploymentEnvironment(cfg.Environment),
	)

	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)
	global.SetLoggerProvider(provider)

	return &LoggerClient{
		logger:   otelslog.NewLogger(cfg.Observability.ServiceName, otelslog.WithLoggerProvider(provider)),
		provider: provider,
	}
}

// NewNopLoggerClient returns a logger that discards everything. For tests.
func NewNopLoggerClient() *LoggerClient {
	return &LoggerClient{logger: slog.New(slog.DiscardHandler)}
}

func (l *LoggerClient) InfoWithContextf(ctx context.Context, format string, args ...interface{}) {
	l.logger.InfoContext(ctx, fmt.Sprintf(format, args...))
}

func (l *LoggerClient) WarningWithContextf(ctx context.Context, format string, args ...interface{}) {
	l.logger.WarnContext(ctx, fmt.Sprintf(format, args...))
}

func (l *LoggerClient) ErrorWithContextf(ctx context.Context, err error, format string, args ...interface{}) {
	if err != nil {
		l.logger.ErrorContext(ctx, fmt.Sprintf(format, args...), slog.Any("error", err))
		return
	}
	l.logger.ErrorContext(ctx, fmt.Sprintf(format, args...))
}

// Shutdown flushes buffered export batches.
func (l *LoggerClient) Shutdown(ctx context.Context) error {
	if l.provider == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return l.provider.Shutdown(ctx)
}
