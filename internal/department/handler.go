package department

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/company-management/internal/transport"
)

type ServiceAPI interface {
	CreateDepartment(dto CreateDepartmentDTO) (*DepartmentResponse, error)
	GetDepartments() ([]*DepartmentResponse, error)
	GetDepartmentByID(id string) (*DepartmentResponse, error)
	UpdateDepartment(dto UpdateDepartmentDTO) (*DepartmentResponse, error)
	DeleteDepartment(id string) (*DepartmentResponse, error)
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

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var dto CreateDepartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.CreateDepartment(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Department created", result)
}

func (h *Handler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.GetDepartments()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Departments retrieved", result)
}

func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.GetDepartmentByID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Department retrieved", result)
}

func (h *Handler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var dto UpdateDepartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dto.ID = chi.URLParam(r, "id")

	result, err := h.Service.UpdateDepartment(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Department updated", result)
}

func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.DeleteDepartment(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Department deleted", result)
}
