package repository

import "errors"

var (
	ErrStateNotFound = errors.New("repository: session state not found")
	ErrEncodeState   = errors.New("repository: failed to encode session state")
	ErrDecodeState   = errors.New("repository: failed to decode session state")
)
