package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/tair/retail-management/internal/employee/domain"
	"github.com/tair/retail-management/internal/employee/usecase/command"
	"github.com/tair/retail-management/internal/employee/usecase/query"
	"github.com/tair/retail-management/pkg/apperrors"
	"github.com/tair/retail-management/pkg/logger"
)

// EmployeeHandler handles HTTP requests for employees
type EmployeeHandler struct {
	createHandler *command.CreateEmployeeHandler
	updateHandler *command.UpdateEmployeeHandler
	deleteHandler *command.DeleteEmployeeHandler
	listHandler   *query.ListEmployeesHandler
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(repo domain.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{
		createHandler: command.NewCreateEmployeeHandler(repo),
		updateHandler: command.NewUpdateEmployeeHandler(repo),
		deleteHandler: command.NewDeleteEmployeeHandler(repo),
		listHandler:   query.NewListEmployeesHandler(repo),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *EmployeeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/employee", h.CreateEmployee).Methods("POST")
	router.HandleFunc("/employee", h.ListEmployees).Methods("GET")
	router.HandleFunc("/employee", h.UpdateEmployee).Methods("PUT")
	router.HandleFunc("/employee/{id}", h.DeleteEmployee).Methods("DELETE")
}

type employeeRequest struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	HireDate string `json:"hire_date"`
}

// CreateEmployee handles POST /employee
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	employee, err := h.createHandler.Handle(command.CreateEmployeeCommand{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		HireDate: req.HireDate,
	})
	if err != nil {
		respondError(w, err, "Failed to create employee")
		return
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Employee created successfully", Data: employee})
}

// ListEmployees handles GET /employee
func (h *EmployeeHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.listHandler.Handle(query.ListEmployeesQuery{})
	if err != nil {
		respondError(w, err, "Failed to fetch employees")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: employees})
}

// UpdateEmployee handles PUT /employee
func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	employee, err := h.updateHandler.Handle(command.UpdateEmployeeCommand{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		HireDate: req.HireDate,
	})
	if err != nil {
		respondError(w, err, "Failed to update employee")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Employee updated successfully", Data: employee})
}

// DeleteEmployee handles DELETE /employee/{id}
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid employee ID"})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteEmployeeCommand{ID: uint(id)}); err != nil {
		respondError(w, err, "Failed to delete employee")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func respondError(w http.ResponseWriter, err error, message string) {
	if apperrors.IsValidation(err) {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: apperrors.MessageOf(err)})
		return
	}

	logger.Logger.Error().Err(err).Msg(message)
	respondJSON(w, http.StatusInternalServerError, Response{Success: false, Message: message, Error: err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
