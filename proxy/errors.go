package proxy

import "errors"

var (
	ErrNilDelegate  = errors.New("proxy: nil delegate handler")
	ErrInvalidLimit = errors.New("proxy: limit must be >= 0")
)
