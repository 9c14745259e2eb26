package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/auth"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
)

type authRepositoryImpl struct {
	client *apiclient.Client
}

func NewAuthRepository(client *apiclient.Client) auth.AuthRepository {
	return &authRepositoryImpl{client: client}
}

func (r *authRepositoryImpl) Login(ctx context.Context, req auth.LoginRequest) (json.RawMessage, error) {
	raw, err := r.client.Raw(ctx, http.MethodPost, "/auth/login", nil, req, apiclient.JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	return raw, nil
}
