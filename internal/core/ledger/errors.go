package ledger

import "errors"

var (
	// ErrInsufficientFunds は会社の拠出残高が預入額に満たない場合に返却されます。
	ErrInsufficientFunds = errors.New("ledger: insufficient funds")
	// ErrDuplicateCompany はログインキーが既に登録済みの場合に返却されます。
	ErrDuplicateCompany = errors.New("ledger: company already exists")

	ErrInvalidAmount    = errors.New("ledger: invalid amount")
	ErrInvalidDate      = errors.New("ledger: invalid deposit date")
	ErrInvalidName      = errors.New("ledger: invalid name")
	ErrInvalidEmail     = errors.New("ledger: invalid email")
	ErrInvalidPassword  = errors.New("ledger: invalid password")
	ErrInvalidBalance   = errors.New("ledger: invalid initial balance")
	ErrInvalidID        = errors.New("ledger: invalid id")
	ErrInvalidPageSize  = errors.New("ledger: invalid page size")
	ErrInvalidPageToken = errors.New("ledger: invalid page token")
)
