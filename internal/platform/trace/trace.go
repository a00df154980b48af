// Package trace は OpenTelemetry によるトレースの初期化とスパン生成を提供します。
// 無効時はすべての関数が no-op になります。
package trace

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const instrumentationName = "trading_insights"

var (
	tracer         oteltrace.Tracer
	tracerProvider *sdktrace.TracerProvider
)

// Config はトレースの設定です。
type Config struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	// Writer はスパンの出力先です。nil の場合は標準出力を使用します。
	Writer io.Writer
}

// Init はトレーサープロバイダーを初期化し、グローバルに登録します。
func Init(ctx context.Context, cfg Config) error {
	if !cfg.Enabled {
		tracer = nil
		return nil
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		return err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return err
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)
	tracer = tracerProvider.Tracer(instrumentationName)
	return nil
}

// Shutdown は未送信のスパンをフラッシュしてプロバイダーを停止します。
func Shutdown(ctx context.Context) error {
	if tracerProvider == nil {
		return nil
	}
	err := tracerProvider.Shutdown(ctx)
	tracerProvider = nil
	tracer = nil
	return err
}

// StartSpan は新しいスパンを開始します。トレース無効時は ctx 内のスパン（通常は no-op）を返します。
func StartSpan(ctx context.Context, name string, opts ...oteltrace.SpanStartOption) (context.Context, oteltrace.Span) {
	if tracer == nil {
		return ctx, oteltrace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name, opts...)
}

// RecordError はエラーをスパンに記録し、ステータスを Error にします。err が nil の場合は何もしません。
func RecordError(span oteltrace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
