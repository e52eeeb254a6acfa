package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ogurasousui/benefit-ledger/internal/core/company"
	"golang.org/x/crypto/bcrypt"
)

type stubCredentialStore map[string]string

func (s stubCredentialStore) FindCredential(_ context.Context, email string) (string, error) {
	hash, ok := s[email]
	if !ok {
		return "", company.ErrCompanyNotFound
	}
	return hash, nil
}

func TestTokenManager_RoundTrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", "benefit-ledger", time.Hour)
	token, expiresAt, err := tm.Issue("tesla@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expiry must be in the future: %v", expiresAt)
	}

	email, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if email != "tesla@example.com" {
		t.Fatalf("unexpected subject: %s", email)
	}
}

func TestTokenManager_RejectsForeignTokens(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", "benefit-ledger", time.Hour)

	other := NewTokenManager("other-secret", "benefit-ledger", time.Hour)
	token, _, err := other.Issue("tesla@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := tm.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}

	wrongIssuer := NewTokenManager("secret", "someone-else", time.Hour)
	token, _, err = wrongIssuer.Issue("tesla@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := tm.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong issuer, got %v", err)
	}

	if _, err := tm.Parse("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", "benefit-ledger", time.Minute)
	issuedAt := time.Now().Add(-time.Hour)
	tm.now = func() time.Time { return issuedAt }

	token, _, err := tm.Issue("tesla@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	tm.now = time.Now
	if _, err := tm.Parse(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	h := BcryptHasher{Cost: bcrypt.MinCost}
	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the raw password")
	}
	if err := h.Compare(hash, "s3cret"); err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestAuthenticator(t *testing.T) {
	t.Parallel()

	h := BcryptHasher{Cost: bcrypt.MinCost}
	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	tm := NewTokenManager("secret", "benefit-ledger", time.Hour)
	a := NewAuthenticator(stubCredentialStore{"tesla@example.com": hash}, h, tm)
	ctx := context.Background()

	token, err := a.Authenticate(ctx, " Tesla@Example.com ", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	email, err := tm.Parse(token.Value)
	if err != nil || email != "tesla@example.com" {
		t.Fatalf("unexpected token subject %q: %v", email, err)
	}

	if _, err := a.Authenticate(ctx, "tesla@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := a.Authenticate(ctx, "nike@example.com", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown company, got %v", err)
	}
	if _, err := a.Authenticate(ctx, "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty input, got %v", err)
	}
}

func TestCompanyEmailContext(t *testing.T) {
	t.Parallel()

	if _, ok := CompanyEmailFromContext(context.Background()); ok {
		t.Fatal("empty context must not carry an email")
	}

	ctx := WithCompanyEmail(context.Background(), "tesla@example.com")
	email, ok := CompanyEmailFromContext(ctx)
	if !ok || email != "tesla@example.com" {
		t.Fatalf("unexpected email %q", email)
	}
}
