package command

import (
	"net/mail"

	"github.com/tair/retail-management/internal/client/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// CreateClientCommand represents the command to create a new client
type CreateClientCommand struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// CreateClientHandler handles client creation command
type CreateClientHandler struct {
	repo domain.ClientRepository
}

// NewCreateClientHandler creates a new create client handler
func NewCreateClientHandler(repo domain.ClientRepository) *CreateClientHandler {
	return &CreateClientHandler{repo: repo}
}

// Handle executes the create client command
func (h *CreateClientHandler) Handle(cmd CreateClientCommand) (*domain.Client, error) {
	if cmd.Name == "" {
		return nil, apperrors.Validation("the name is required")
	}
	if len(cmd.Name) > 150 {
		return nil, apperrors.Validation("the name must have a maximum of 150 characters")
	}
	if cmd.Email == "" {
		return nil, apperrors.Validation("the email is required")
	}
	if _, err := mail.ParseAddress(cmd.Email); err != nil {
		return nil, apperrors.Validation("the email must be a valid email")
	}

	client := &domain.Client{
		Name:    cmd.Name,
		Email:   cmd.Email,
		Phone:   cmd.Phone,
		Address: cmd.Address,
	}

	if err := h.repo.Create(client); err != nil {
		return nil, apperrors.Storage("failed to create client", err)
	}

	return client, nil
}
