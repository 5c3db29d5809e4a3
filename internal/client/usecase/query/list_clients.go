package query

import (
	"github.com/tair/retail-management/internal/client/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

// ListClientsQuery represents the query to list all clients
type ListClientsQuery struct{}

// ListClientsHandler handles list clients query
type ListClientsHandler struct {
	repo domain.ClientRepository
}

// NewListClientsHandler creates a new list clients handler
func NewListClientsHandler(repo domain.ClientRepository) *ListClientsHandler {
	return &ListClientsHandler{repo: repo}
}

// Handle executes the list clients query
func (h *ListClientsHandler) Handle(ListClientsQuery) ([]domain.Client, error) {
	clients, err := h.repo.FindAll()
	if err != nil {
		return nil, apperrors.Storage("failed to fetch clients", err)
	}
	return clients, nil
}
