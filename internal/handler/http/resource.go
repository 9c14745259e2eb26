package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/auth"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/resource"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/domain/user"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/handler/http/response"
	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/jwt"
)

// ResourceHandler serves the generic list/create/update/delete views of one
// route group.
type ResourceHandler interface {
	Definitions(section user.Section) http.HandlerFunc
	List(section user.Section) http.HandlerFunc
	Create(section user.Section) http.HandlerFunc
	Update(section user.Section) http.HandlerFunc
	Delete(section user.Section) http.HandlerFunc
}

type resourceHandlerImpl struct {
	resourceService resource.ResourceService
	authService     auth.AuthService
	jwtService      jwt.Service
}

func NewResourceHandler(resourceService resource.ResourceService, authService auth.AuthService, jwtService jwt.Service) ResourceHandler {
	return &resourceHandlerImpl{
		resourceService: resourceService,
		authService:     authService,
		jwtService:      jwtService,
	}
}

type definitionView struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	ReadOnly bool     `json:"read_only"`
	Fields   []string `json:"fields,omitempty"`
	Required []string `json:"required,omitempty"`
}

// Definitions handles GET /{section}/resources
func (h *resourceHandlerImpl) Definitions(section user.Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defs := resource.InSection(section)
		out := make([]definitionView, 0, len(defs))
		for _, d := range defs {
			out = append(out, definitionView{Name: d.Name, Title: d.Title, ReadOnly: d.ReadOnly, Fields: d.Fields, Required: d.Required})
		}
		response.Success(w, out)
	}
}

// List handles GET /{section}/resources/{name}
func (h *resourceHandlerImpl) List(section user.Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := h.resourceService.List(r.Context(), section, chi.URLParam(r, "name"), r.URL.Query())
		if err != nil {
			h.fail(w, r, err)
			return
		}
		response.Success(w, records)
	}
}

// Create handles POST /{section}/resources/{name}
func (h *resourceHandlerImpl) Create(section user.Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields resource.Record
		if err := decodeBody(r, &fields); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
		records, err := h.resourceService.Create(r.Context(), section, chi.URLParam(r, "name"), fields)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		response.Created(w, "Data berhasil ditambahkan", records)
	}
}

// Update handles PUT /{section}/resources/{name}/{id}
func (h *resourceHandlerImpl) Update(section user.Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields resource.Record
		if err := decodeBody(r, &fields); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
		records, err := h.resourceService.Update(r.Context(), section, chi.URLParam(r, "name"), chi.URLParam(r, "id"), fields)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		response.SuccessWithMessage(w, "Data berhasil diperbarui", records)
	}
}

// Delete handles DELETE /{section}/resources/{name}/{id}?confirm=true
func (h *resourceHandlerImpl) Delete(section user.Section) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := h.resourceService.Delete(r.Context(), section, chi.URLParam(r, "name"), chi.URLParam(r, "id"), confirmed(r))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		response.SuccessWithMessage(w, "Data berhasil dihapus", records)
	}
}

func (h *resourceHandlerImpl) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, resource.ErrSessionRevoked) {
		endSession(w, r, h.jwtService, h.authService)
		return
	}
	response.HandleError(w, err)
}
