package company

import "errors"

var (
	// ErrCompanyNotFound は会社が存在しない場合に返却されます。
	ErrCompanyNotFound = errors.New("company not found")
	// ErrEmailAlreadyExists はメールアドレス重複時に返却されます。
	ErrEmailAlreadyExists = errors.New("company email already exists")
)
