package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	benefitv1 "github.com/ogurasousui/benefit-ledger/internal/adapters/grpc/gen/benefit/v1"
	"github.com/ogurasousui/benefit-ledger/internal/adapters/grpc/handler"
	"github.com/ogurasousui/benefit-ledger/internal/adapters/grpc/interceptor"
	"github.com/ogurasousui/benefit-ledger/internal/core/ledger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// PublicMethods はアクセストークンなしで呼び出せるメソッドです。
var PublicMethods = []string{
	benefitv1.LedgerService_RegisterCompany_FullMethodName,
	benefitv1.LedgerService_Authenticate_FullMethodName,
	healthpb.Health_Check_FullMethodName,
	healthpb.Health_Watch_FullMethodName,
}

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
	health     *health.Server
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
// 台帳サービスとヘルスチェックサービスを登録し、ログと認証のインターセプタを適用します。
func New(listenAddr string, svc ledger.UseCase, authenticator handler.Authenticator, tokens interceptor.TokenParser, log *slog.Logger, opts ...grpc.ServerOption) *Server {
	authInterceptor := interceptor.NewAuthInterceptor(tokens, PublicMethods...)
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(interceptor.Logging(log), authInterceptor.Unary()),
	}, opts...)

	srv := grpc.NewServer(opts...)
	benefitv1.RegisterLedgerServiceServer(srv, handler.NewLedgerGrpcHandler(svc, authenticator))

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(benefitv1.LedgerService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, healthSrv)

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
		health:     healthSrv,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は既存のリスナーで待ち受けます。
// Serve が先に終了した場合、停止用のゴルーチンもその時点で終了します。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	served := make(chan struct{})
	defer close(served)

	go func() {
		select {
		case <-ctx.Done():
			s.GracefulStop()
		case <-served:
		}
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はヘルスチェックを NOT_SERVING にしてからサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
