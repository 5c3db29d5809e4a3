package command

import (
	"net/mail"

	"github.com/tair/retail-management/internal/client/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// UpdateClientCommand represents the command to update a client.
// Zero-valued fields are left untouched on the stored row.
type UpdateClientCommand struct {
	ID      uint
	Name    string
	Email   string
	Phone   string
	Address string
}

// UpdateClientHandler handles client update command
type UpdateClientHandler struct {
	repo domain.ClientRepository
}

// NewUpdateClientHandler creates a new update client handler
func NewUpdateClientHandler(repo domain.ClientRepository) *UpdateClientHandler {
	return &UpdateClientHandler{repo: repo}
}

// Handle executes the update client command
func (h *UpdateClientHandler) Handle(cmd UpdateClientCommand) (*domain.Client, error) {
	if cmd.ID == 0 {
		return nil, apperrors.Validation("the id is required")
	}
	if len(cmd.Name) > 150 {
		return nil, apperrors.Validation("the name must have a maximum of 150 characters")
	}
	if cmd.Email != "" {
		if _, err := mail.ParseAddress(cmd.Email); err != nil {
			return nil, apperrors.Validation("the email must be a valid email")
		}
	}

	client, err := h.repo.Update(cmd.ID, func(c *domain.Client) {
		if cmd.Name != "" {
			c.Name = cmd.Name
		}
		if cmd.Email != "" {
			c.Email = cmd.Email
		}
		if cmd.Phone != "" {
			c.Phone = cmd.Phone
		}
		if cmd.Address != "" {
			c.Address = cmd.Address
		}
	})
	if err != nil {
		return nil, apperrors.Storage("failed to update client", err)
	}

	return client, nil
}
