package auth

import "context"

type companyEmailKey struct{}

// WithCompanyEmail は認証済みの会社メールアドレスをコンテキストに格納します。
func WithCompanyEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, companyEmailKey{}, email)
}

// CompanyEmailFromContext は認証済みの会社メールアドレスを取り出します。
func CompanyEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(companyEmailKey{}).(string)
	return email, ok && email != ""
}
