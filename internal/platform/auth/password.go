package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ogurasousui/benefit-ledger/internal/core/company"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials はメールアドレスまたはパスワードが一致しない場合に返却されます。
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// BcryptHasher は bcrypt によるパスワードハッシュです。
type BcryptHasher struct {
	Cost int
}

// Hash はパスワードのハッシュを返します。Cost が 0 の場合は bcrypt.DefaultCost を使用します。
func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare はハッシュとパスワードが一致するかを検証します。
func (BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// CredentialStore はメールアドレスに紐づくパスワードハッシュを返します。
type CredentialStore interface {
	FindCredential(ctx context.Context, email string) (string, error)
}

// Authenticator はパスワードを検証してアクセストークンを発行します。
type Authenticator struct {
	store  CredentialStore
	hasher BcryptHasher
	tokens *TokenManager
}

// NewAuthenticator は Authenticator を生成します。
func NewAuthenticator(store CredentialStore, hasher BcryptHasher, tokens *TokenManager) *Authenticator {
	return &Authenticator{store: store, hasher: hasher, tokens: tokens}
}

// Token は発行済みのアクセストークンです。
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Authenticate はメールアドレスとパスワードを検証し、トークンを発行します。
// 会社が存在しない場合も ErrInvalidCredentials を返します。
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*Token, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	hash, err := a.store.FindCredential(ctx, email)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.hasher.Compare(hash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	value, expiresAt, err := a.tokens.Issue(email)
	if err != nil {
		return nil, err
	}
	return &Token{Value: value, ExpiresAt: expiresAt}, nil
}
