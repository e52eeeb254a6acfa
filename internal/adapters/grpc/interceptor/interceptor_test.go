package interceptor

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ogurasousui/benefit-ledger/internal/platform/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type stubParser map[string]string

func (s stubParser) Parse(token string) (string, error) {
	email, ok := s[token]
	if !ok {
		return "", auth.ErrInvalidToken
	}
	return email, nil
}

func echoCompany(ctx context.Context, _ any) (any, error) {
	email, _ := auth.CompanyEmailFromContext(ctx)
	return email, nil
}

func TestAuthInterceptor_PublicMethod(t *testing.T) {
	t.Parallel()

	i := NewAuthInterceptor(stubParser{}, "/svc/Public")
	resp, err := i.Unary()(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Public"}, echoCompany)
	if err != nil {
		t.Fatalf("public method returned error: %v", err)
	}
	if resp != "" {
		t.Fatalf("public method must not carry a company, got %v", resp)
	}
}

func TestAuthInterceptor_InjectsCompany(t *testing.T) {
	t.Parallel()

	i := NewAuthInterceptor(stubParser{"good": "tesla@example.com"})
	info := &grpc.UnaryServerInfo{FullMethod: "/svc/Private"}

	for _, header := range []string{"Bearer good", "bearer good", "good"} {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", header))
		resp, err := i.Unary()(ctx, nil, info, echoCompany)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", header, err)
		}
		if resp != "tesla@example.com" {
			t.Fatalf("%q: unexpected company %v", header, resp)
		}
	}
}

func TestAuthInterceptor_Rejects(t *testing.T) {
	t.Parallel()

	i := NewAuthInterceptor(stubParser{"good": "tesla@example.com"})
	info := &grpc.UnaryServerInfo{FullMethod: "/svc/Private"}

	cases := map[string]context.Context{
		"no metadata": context.Background(),
		"no header":   metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-other", "1")),
		"bad token":   metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer bad")),
	}

	for name, ctx := range cases {
		_, err := i.Unary()(ctx, nil, info, echoCompany)
		if status.Code(err) != codes.Unauthenticated {
			t.Fatalf("%s: expected Unauthenticated, got %v", name, status.Code(err))
		}
	}
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	intercept := Logging(log)
	info := &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}

	if _, err := intercept(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "ok", nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	failure := status.Error(codes.FailedPrecondition, "insufficient funds")
	if _, err := intercept(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, failure
	}); !errors.Is(err, failure) {
		t.Fatalf("expected handler error to pass through, got %v", err)
	}

	out := buf.String()
	for _, want := range []string{"method=/svc/Method", "code=OK", "level=WARN", "code=FailedPrecondition"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}
