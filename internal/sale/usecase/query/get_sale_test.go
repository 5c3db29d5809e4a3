package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdomain "github.com/tair/retail-management/internal/product/domain"
	"github.com/tair/retail-management/internal/sale/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

type fakeSaleRepo struct {
	sales   map[uint]*domain.Sale
	items   map[uint][]domain.ItemWithProduct
	findErr error
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{
		sales: make(map[uint]*domain.Sale),
		items: make(map[uint][]domain.ItemWithProduct),
	}
}

func (f *fakeSaleRepo) CreateWithItems(sale *domain.Sale, items []domain.SaleItem) (*domain.SaleWithItems, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSaleRepo) FindByID(id uint) (*domain.Sale, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	sale, ok := f.sales[id]
	if !ok {
		return nil, domain.ErrSaleNotFound
	}
	return sale, nil
}

func (f *fakeSaleRepo) FindAll() ([]domain.Sale, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	sales := make([]domain.Sale, 0, len(f.sales))
	for _, s := range f.sales {
		sales = append(sales, *s)
	}
	return sales, nil
}

func (f *fakeSaleRepo) FindItems(saleID uint) ([]domain.ItemWithProduct, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.items[saleID], nil
}

func (f *fakeSaleRepo) UpdateStatus(id uint, status string) (*domain.Sale, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSaleRepo) Delete(id uint) error {
	return nil
}

func TestGetSale(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.sales[5] = &domain.Sale{ID: 5, ClientID: 1, EmployeeID: 2, TotalAmount: 40, Status: domain.StatusPending}
	repo.items[5] = []domain.ItemWithProduct{
		{
			SaleItem: domain.SaleItem{ID: 1, SaleID: 5, ProductID: 10, Quantity: 2, Price: 20},
			Product:  productdomain.Product{ID: 10, Name: "Keyboard", Stock: 8},
		},
	}
	handler := NewGetSaleHandler(repo)

	sale, err := handler.Handle(GetSaleQuery{ID: 5})
	require.NoError(t, err)

	assert.Equal(t, uint(5), sale.ID)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "Keyboard", sale.Items[0].Product.Name)
}

func TestGetSaleUnknownID(t *testing.T) {
	handler := NewGetSaleHandler(newFakeSaleRepo())

	// An unknown id still answers with an empty header and no items.
	sale, err := handler.Handle(GetSaleQuery{ID: 999})
	require.NoError(t, err)

	assert.Equal(t, uint(0), sale.ID)
	assert.NotNil(t, sale.Items)
	assert.Empty(t, sale.Items)
}

func TestGetSaleMissingID(t *testing.T) {
	handler := NewGetSaleHandler(newFakeSaleRepo())
	_, err := handler.Handle(GetSaleQuery{})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetSaleStorageError(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.findErr = errors.New("connection reset")
	handler := NewGetSaleHandler(repo)

	_, err := handler.Handle(GetSaleQuery{ID: 1})
	require.Error(t, err)
	assert.False(t, apperrors.IsValidation(err))
}

func TestListSales(t *testing.T) {
	repo := newFakeSaleRepo()
	repo.sales[1] = &domain.Sale{ID: 1}
	repo.sales[2] = &domain.Sale{ID: 2}
	handler := NewListSalesHandler(repo)

	sales, err := handler.Handle(ListSalesQuery{})
	require.NoError(t, err)
	assert.Len(t, sales, 2)
}
