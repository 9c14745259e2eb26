package auth

import "errors"

var (
	ErrTokenMissing  = errors.New("Login berhasil, tapi token tidak ditemukan di response API!")
	ErrLoginRejected = errors.New("Login gagal!")
)
