// Package auth は会社の認証 (パスワード検証とアクセストークン) を提供します。
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken はトークンの署名・形式・発行者が不正な場合に返却されます。
	ErrInvalidToken = errors.New("auth: invalid token")
	// ErrExpiredToken はトークンの有効期限切れを表します。
	ErrExpiredToken = errors.New("auth: token has expired")
)

// Claims はアクセストークンのクレームです。Subject は会社のメールアドレスです。
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager は HS256 署名のアクセストークンを発行・検証します。
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager は TokenManager を生成します。
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue は会社のメールアドレスを主体とするトークンを発行し、有効期限とともに返します。
func (m *TokenManager) Issue(email string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   email,
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse はトークンを検証し、主体のメールアドレスを返します。
func (m *TokenManager) Parse(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
