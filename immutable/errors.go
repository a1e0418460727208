package immutable

import "errors"

var (
	// ErrInvalidSelector is returned by Modify and Set when the selector does not name a
	// declared member of the wrapped type.
	ErrInvalidSelector = errors.New("immutable: selector must reference a declared member")
	// ErrNilOperation is returned when a builder reports success but hands back no operation.
	ErrNilOperation = errors.New("immutable: builder returned a nil operation")
	// ErrOptionType is returned when a store or builder option targets another wrapped type.
	ErrOptionType = errors.New("immutable: option does not match the wrapped type")
)
