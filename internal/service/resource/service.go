package resource

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/resource"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/apiclient"
)

type ResourceServiceImpl struct {
	resource.ResourceRepository
}

func NewResourceService(resourceRepository resource.ResourceRepository) resource.ResourceService {
	return &ResourceServiceImpl{ResourceRepository: resourceRepository}
}

// List implements resource.ResourceService.
func (s *ResourceServiceImpl) List(ctx context.Context, section user.Section, name string, query url.Values) ([]resource.Record, error) {
	def, err := resource.Lookup(section, name)
	if err != nil {
		return nil, err
	}
	records, err := s.ResourceRepository.List(ctx, def, query)
	if err != nil {
		return nil, revoked(def, err)
	}
	return records, nil
}

// Create implements resource.ResourceService.
func (s *ResourceServiceImpl) Create(ctx context.Context, section user.Section, name string, fields resource.Record) ([]resource.Record, error) {
	def, err := resource.Lookup(section, name)
	if err != nil {
		return nil, err
	}
	body, err := def.Prepare(fields, false)
	if err != nil {
		return nil, err
	}
	if err := s.ResourceRepository.Create(ctx, def, body); err != nil {
		return nil, revoked(def, err)
	}
	slog.Info("resource created", "resource", def.Name, "section", def.Section)
	return s.relist(ctx, def)
}

// Update implements resource.ResourceService.
func (s *ResourceServiceImpl) Update(ctx context.Context, section user.Section, name string, id string, fields resource.Record) ([]resource.Record, error) {
	def, err := resource.Lookup(section, name)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, resource.ErrIDRequired
	}
	body, err := def.Prepare(fields, true)
	if err != nil {
		return nil, err
	}
	if err := s.ResourceRepository.Update(ctx, def, id, body); err != nil {
		return nil, revoked(def, err)
	}
	slog.Info("resource updated", "resource", def.Name, "id", id)
	return s.relist(ctx, def)
}

// Delete implements resource.ResourceService.
func (s *ResourceServiceImpl) Delete(ctx context.Context, section user.Section, name string, id string, confirmed bool) ([]resource.Record, error) {
	def, err := resource.Lookup(section, name)
	if err != nil {
		return nil, err
	}
	if def.ReadOnly {
		return nil, resource.ErrReadOnly
	}
	if id == "" {
		return nil, resource.ErrIDRequired
	}
	if !confirmed {
		return nil, resource.ErrConfirmationRequired
	}
	if err := s.ResourceRepository.Delete(ctx, def, id); err != nil {
		return nil, revoked(def, err)
	}
	slog.Info("resource deleted", "resource", def.Name, "id", id)
	return s.relist(ctx, def)
}

func (s *ResourceServiceImpl) relist(ctx context.Context, def resource.Definition) ([]resource.Record, error) {
	records, err := s.ResourceRepository.List(ctx, def, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh %s: %w", def.Name, revoked(def, err))
	}
	return records, nil
}

// revoked marks a 401 on a session-ending resource so the handler can log
// the user out.
func revoked(def resource.Definition, err error) error {
	if def.LogoutOnUnauthorized && apiclient.IsUnauthorized(err) {
		return fmt.Errorf("%w: %w", resource.ErrSessionRevoked, err)
	}
	return err
}
