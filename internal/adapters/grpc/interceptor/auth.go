package interceptor

import (
	"context"
	"strings"

	"github.com/ogurasousui/benefit-ledger/internal/platform/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TokenParser はアクセストークンを検証し、会社のメールアドレスを返します。
type TokenParser interface {
	Parse(token string) (string, error)
}

// AuthInterceptor は Bearer トークンを検証し、会社のメールアドレスをコンテキストへ格納します。
type AuthInterceptor struct {
	tokens TokenParser
	public map[string]struct{}
}

// NewAuthInterceptor は publicMethods を認証不要として AuthInterceptor を生成します。
func NewAuthInterceptor(tokens TokenParser, publicMethods ...string) *AuthInterceptor {
	public := make(map[string]struct{}, len(publicMethods))
	for _, m := range publicMethods {
		public[m] = struct{}{}
	}
	return &AuthInterceptor{tokens: tokens, public: public}
}

// Unary は単項 RPC 用のサーバーインターセプタを返します。
func (i *AuthInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := i.public[info.FullMethod]; ok {
			return handler(ctx, req)
		}

		token, err := extractToken(ctx)
		if err != nil {
			return nil, err
		}

		email, err := i.tokens.Parse(token)
		if err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "invalid token: %v", err)
		}

		return handler(auth.WithCompanyEmail(ctx, email), req)
	}
}

func extractToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "metadata is not provided")
	}

	values := md.Get("authorization")
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return "", status.Error(codes.Unauthenticated, "authorization token is not provided")
	}

	token := strings.TrimSpace(values[0])
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token, nil
}
