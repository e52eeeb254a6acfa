package ledger

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultListPageSize = 50
	maxListPageSize     = 200

	// 金額は NUMERIC(19,4) に収まる範囲のみ受け付けます。
	amountScale = 4
)

var maxAmount = decimal.New(1, 15)

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", ErrInvalidEmail
	}

	return strings.ToLower(addr.Address), nil
}

func normalizeName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidName
	}
	return trimmed, nil
}

func normalizeID(raw string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidID
	}
	return parsed.String(), nil
}

func normalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() || !fitsScale(amount) {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

func normalizeInitialBalance(balance decimal.Decimal) (decimal.Decimal, error) {
	if balance.IsNegative() || !fitsScale(balance) {
		return decimal.Zero, ErrInvalidBalance
	}
	return balance, nil
}

func fitsScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(amountScale)) && d.Abs().LessThan(maxAmount)
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}
