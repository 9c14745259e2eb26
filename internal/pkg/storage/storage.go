// Package storage keeps generated export files.
package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidPath = errors.New("invalid file path")
)

type FileStorage interface {
	// Upload writes file under key and returns the stored key.
	Upload(ctx context.Context, file io.Reader, key string) (string, error)

	// Download opens a stored file. Missing keys yield ErrNotFound.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
