package employee

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/company-management/internal/transport"
)

type ServiceAPI interface {
	CreateEmployee(dto CreateEmployeeDTO) (*EmployeeResponse, error)
	GetEmployees() ([]*EmployeeResponse, error)
	GetEmployeeByID(id string) (*EmployeeResponse, error)
	UpdateEmployee(dto UpdateEmployeeDTO) (*EmployeeResponse, error)
	DeleteEmployee(id string) (*EmployeeResponse, error)
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

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.CreateEmployee(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Employee created", result)
}

func (h *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.GetEmployees()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Employees found", result)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.GetEmployeeByID(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Employee found", result)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var dto UpdateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	dto.ID = chi.URLParam(r, "id")

	result, err := h.Service.UpdateEmployee(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Employee updated", result)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.DeleteEmployee(chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteSuccess(w, "Employee deleted", result)
}
