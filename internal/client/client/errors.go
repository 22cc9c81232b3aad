package client

import "errors"

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUnknownDriver      = errors.New("unknown slot driver")
)
