package resource

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrReadOnly             = errors.New("resource is read-only")
	ErrConfirmationRequired = errors.New("Yakin ingin menghapus data ini? Kirim ulang dengan confirm=true untuk melanjutkan.")
	ErrIDRequired           = errors.New("id is required")
	// ErrSessionRevoked is returned when the upstream rejected the token on
	// a resource that ends the session on 401.
	ErrSessionRevoked = errors.New("Sesi berakhir, silakan login kembali.")
)
