package deposit

import "errors"

var (
	// ErrInvalidType は預入種別が不正な場合に返却されます。
	ErrInvalidType = errors.New("deposit: invalid type")
)
