package auth

import (
	"context"
	"encoding/json"
)

// AuthRepository forwards credentials to the upstream login endpoint and
// returns its undecoded answer.
type AuthRepository interface {
	Login(ctx context.Context, req LoginRequest) (json.RawMessage, error)
}
