package checklist

import "errors"

var (
	ErrUnknownVariant  = errors.New("jenis checklist tidak dikenali")
	ErrUnknownActivity = errors.New("aktivitas tidak dikenali untuk checklist ini")
	ErrUnknownElement  = errors.New("elemen tidak dikenali")
	ErrInvalidStatus   = errors.New("status checklist tidak valid")
	ErrMalformedEntry  = errors.New("data checklist tidak valid")
)
