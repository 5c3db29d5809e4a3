package command

import (
	"github.com/tair/retail-management/internal/employee/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// DeleteEmployeeCommand represents the command to delete an employee
type DeleteEmployeeCommand struct {
	ID uint
}

// DeleteEmployeeHandler handles employee deletion command
type DeleteEmployeeHandler struct {
	repo domain.EmployeeRepository
}

// NewDeleteEmployeeHandler creates a new delete employee handler
func NewDeleteEmployeeHandler(repo domain.EmployeeRepository) *DeleteEmployeeHandler {
	return &DeleteEmployeeHandler{repo: repo}
}

// Handle executes the delete employee command
func (h *DeleteEmployeeHandler) Handle(cmd DeleteEmployeeCommand) error {
	if cmd.ID == 0 {
		return apperrors.Validation("the id is required")
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return apperrors.Storage("failed to delete employee", err)
	}

	return nil
}
