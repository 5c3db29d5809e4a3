package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/retail-management/internal/client/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

type fakeClientRepo struct {
	clients map[uint]*domain.Client
	nextID  uint
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uint]*domain.Client), nextID: 1}
}

func (f *fakeClientRepo) Create(client *domain.Client) error {
	client.ID = f.nextID
	f.nextID++
	f.clients[client.ID] = client
	return nil
}

func (f *fakeClientRepo) FindAll() ([]domain.Client, error) {
	clients := make([]domain.Client, 0, len(f.clients))
	for _, c := range f.clients {
		clients = append(clients, *c)
	}
	return clients, nil
}

func (f *fakeClientRepo) Update(id uint, apply func(*domain.Client)) (*domain.Client, error) {
	client, ok := f.clients[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	apply(client)
	return client, nil
}

func (f *fakeClientRepo) Delete(id uint) error {
	delete(f.clients, id)
	return nil
}

func TestCreateClient(t *testing.T) {
	handler := NewCreateClientHandler(newFakeClientRepo())

	client, err := handler.Handle(CreateClientCommand{
		Name:  "Alice Stone",
		Email: "alice@example.com",
		Phone: "555-0101",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), client.ID)
}

func TestCreateClientValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateClientCommand
	}{
		{"missing name", CreateClientCommand{Email: "a@example.com"}},
		{"missing email", CreateClientCommand{Name: "Alice"}},
		{"invalid email", CreateClientCommand{Name: "Alice", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCreateClientHandler(newFakeClientRepo())
			_, err := handler.Handle(tt.cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestUpdateClientMergesFields(t *testing.T) {
	repo := newFakeClientRepo()
	repo.clients[1] = &domain.Client{
		ID:      1,
		Name:    "Alice Stone",
		Email:   "alice@example.com",
		Phone:   "555-0101",
		Address: "1 Main St",
	}
	handler := NewUpdateClientHandler(repo)

	client, err := handler.Handle(UpdateClientCommand{ID: 1, Phone: "555-0202"})
	require.NoError(t, err)

	assert.Equal(t, "555-0202", client.Phone)
	// Absent fields keep their stored values.
	assert.Equal(t, "Alice Stone", client.Name)
	assert.Equal(t, "alice@example.com", client.Email)
	assert.Equal(t, "1 Main St", client.Address)
}

func TestUpdateClientInvalidEmail(t *testing.T) {
	repo := newFakeClientRepo()
	repo.clients[1] = &domain.Client{ID: 1, Name: "Alice", Email: "alice@example.com"}
	handler := NewUpdateClientHandler(repo)

	_, err := handler.Handle(UpdateClientCommand{ID: 1, Email: "broken"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	// The stored row is untouched.
	assert.Equal(t, "alice@example.com", repo.clients[1].Email)
}

func TestDeleteClient(t *testing.T) {
	repo := newFakeClientRepo()
	repo.clients[1] = &domain.Client{ID: 1}
	handler := NewDeleteClientHandler(repo)

	require.NoError(t, handler.Handle(DeleteClientCommand{ID: 1}))
	assert.NotContains(t, repo.clients, uint(1))
}
