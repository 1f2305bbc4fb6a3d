package project

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/company-management/internal/transport"
)

type ServiceAPI interface {
	CreateProject(dto CreateProjectDTO) (*ProjectResponse, error)
	GetProjects() ([]*ProjectResponse, error)
	GetProjectByID(id string) (*ProjectResponse, error)
	UpdateProject(dto UpdateProjectDTO) (*ProjectResponse, error)
	DeleteProject(id string) (*ProjectResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var dto CreateProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.CreateProject(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Project created", result)
}

func (h *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.GetProjects()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Projects found", result)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.GetProjectByID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Project found", result)
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var dto UpdateProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dto.ID = chi.URLParam(r, "id")

	result, err := h.Service.UpdateProject(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Project updated", result)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.DeleteProject(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Project deleted", result)
}
