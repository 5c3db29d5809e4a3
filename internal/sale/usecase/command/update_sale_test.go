package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/retail-management/internal/sale/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

func TestUpdateSaleStatus(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.sales[7] = &domain.Sale{ID: 7, Status: domain.StatusPending, TotalAmount: 50}
	handler := NewUpdateSaleHandler(repo)

	sale, err := handler.Handle(UpdateSaleCommand{ID: 7, Status: domain.StatusCompleted})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, sale.Status)
	// Only the status changed.
	assert.Equal(t, 50.0, sale.TotalAmount)
}

func TestUpdateSaleValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  UpdateSaleCommand
	}{
		{"missing id", UpdateSaleCommand{Status: domain.StatusCanceled}},
		{"missing status", UpdateSaleCommand{ID: 1}},
		{"unknown status", UpdateSaleCommand{ID: 1, Status: "Refunded"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewUpdateSaleHandler(newFakeSaleRepo())
			_, err := handler.Handle(tt.cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestUpdateSaleStorageError(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.updateStatusErr = errors.New("connection reset")
	handler := NewUpdateSaleHandler(repo)

	_, err := handler.Handle(UpdateSaleCommand{ID: 1, Status: domain.StatusCanceled})
	require.Error(t, err)
	assert.False(t, apperrors.IsValidation(err))
}

func TestDeleteSale(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.sales[3] = &domain.Sale{ID: 3}
	handler := NewDeleteSaleHandler(repo)

	require.NoError(t, handler.Handle(DeleteSaleCommand{ID: 3}))
	assert.Equal(t, []uint{3}, repo.deleteCalls)
}

func TestDeleteSaleMissingID(t *testing.T) {
	handler := NewDeleteSaleHandler(newFakeSaleRepo())
	err := handler.Handle(DeleteSaleCommand{})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
