package user

import "errors"

var (
	ErrUnknownRole = errors.New("role tidak dikenali")
)
