package command

import (
	"github.com/tair/retail-management/internal/client/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// DeleteClientCommand represents the command to delete a client
type DeleteClientCommand struct {
	ID uint
}

// DeleteClientHandler handles client deletion command
type DeleteClientHandler struct {
	repo domain.ClientRepository
}

// NewDeleteClientHandler creates a new delete client handler
func NewDeleteClientHandler(repo domain.ClientRepository) *DeleteClientHandler {
	return &DeleteClientHandler{repo: repo}
}

// Handle executes the delete client command
func (h *DeleteClientHandler) Handle(cmd DeleteClientCommand) error {
	if cmd.ID == 0 {
		return apperrors.Validation("the id is required")
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return apperrors.Storage("failed to delete client", err)
	}

	return nil
}
