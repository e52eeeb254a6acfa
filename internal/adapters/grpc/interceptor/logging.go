package interceptor

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Logging は RPC ごとにメソッド、所要時間、ステータスコードを記録するインターセプタを返します。
// Internal と Unknown はエラーレベル、その他の失敗は警告レベルで出力します。
func Logging(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		attrs := []any{
			"method", info.FullMethod,
			"code", code.String(),
			"duration", time.Since(start),
		}

		switch code {
		case codes.OK:
			log.InfoContext(ctx, "rpc completed", attrs...)
		case codes.Internal, codes.Unknown:
			log.ErrorContext(ctx, "rpc failed", append(attrs, "error", err)...)
		default:
			log.WarnContext(ctx, "rpc rejected", append(attrs, "error", err)...)
		}

		return resp, err
	}
}
