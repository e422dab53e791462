package log

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

// 统一的日志入口, 底层使用 go-zero 的 logx

func Info(format string, v ...any) {
	logx.Infof(format, v...)
}

func Error(format string, v ...any) {
	logx.Errorf(format, v...)
}

func CtxInfo(ctx context.Context, format string, v ...any) {
	withTrace(ctx).Infof(format, v...)
}

func CtxError(ctx context.Context, format string, v ...any) {
	withTrace(ctx).Errorf(format, v...)
}

// withTrace 将当前 span 的 trace id 附加到日志字段
func withTrace(ctx context.Context) logx.Logger {
	logger := logx.WithContext(ctx)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		logger = logger.WithFields(logx.Field("trace_id", sc.TraceID().String()))
	}
	return logger
}
