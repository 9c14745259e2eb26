package checklist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/checklist"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/resource"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/period"
)

type ChecklistServiceImpl struct {
	checklist.ChecklistRepository
	loc *time.Location
}

func NewChecklistService(checklistRepository checklist.ChecklistRepository, loc *time.Location) checklist.ChecklistService {
	if loc == nil {
		loc = time.UTC
	}
	return &ChecklistServiceImpl{ChecklistRepository: checklistRepository, loc: loc}
}

// List implements checklist.ChecklistService.
func (s *ChecklistServiceImpl) List(ctx context.Context, kind string, w period.Window) ([]checklist.Entry, error) {
	v, err := checklist.Lookup(kind)
	if err != nil {
		return nil, err
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	entries, err := s.list(ctx, v)
	if err != nil {
		return nil, err
	}
	return period.Filter(entries, w, s.loc, func(e checklist.Entry) time.Time { return e.Tanggal }), nil
}

// Create implements checklist.ChecklistService.
func (s *ChecklistServiceImpl) Create(ctx context.Context, kind string, req checklist.SubmitRequest) ([]checklist.Entry, error) {
	v, err := checklist.Lookup(kind)
	if err != nil {
		return nil, err
	}
	form, err := v.FormBody(req)
	if err != nil {
		return nil, err
	}
	if err := s.ChecklistRepository.Create(ctx, v, form); err != nil {
		return nil, err
	}
	slog.Info("checklist submitted", "kind", v.Kind, "shift", req.Shift)
	return s.list(ctx, v)
}

// Update implements checklist.ChecklistService.
func (s *ChecklistServiceImpl) Update(ctx context.Context, kind string, id string, req checklist.SubmitRequest) ([]checklist.Entry, error) {
	v, err := checklist.Lookup(kind)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, resource.ErrIDRequired
	}
	form, err := v.FormBody(req)
	if err != nil {
		return nil, err
	}
	if err := s.ChecklistRepository.Update(ctx, v, id, form); err != nil {
		return nil, err
	}
	slog.Info("checklist updated", "kind", v.Kind, "id", id)
	return s.list(ctx, v)
}

// Delete implements checklist.ChecklistService.
func (s *ChecklistServiceImpl) Delete(ctx context.Context, kind string, id string, confirmed bool) ([]checklist.Entry, error) {
	v, err := checklist.Lookup(kind)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, resource.ErrIDRequired
	}
	if !confirmed {
		return nil, resource.ErrConfirmationRequired
	}
	if err := s.ChecklistRepository.Delete(ctx, v, id); err != nil {
		return nil, err
	}
	slog.Info("checklist deleted", "kind", v.Kind, "id", id)
	return s.list(ctx, v)
}

func (s *ChecklistServiceImpl) list(ctx context.Context, v checklist.Variant) ([]checklist.Entry, error) {
	records, err := s.ChecklistRepository.List(ctx, v)
	if err != nil {
		return nil, err
	}
	entries, err := v.NormalizeAll(records)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s checklist: %w", v.Kind, err)
	}
	return entries, nil
}
