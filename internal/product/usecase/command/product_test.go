package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/retail-management/internal/product/domain"
	"github.com/tair/retail-management/pkg/apperrors"
)

type fakeProductRepo struct {
	products    map[uint]*domain.Product
	inventories []domain.Inventory
	nextID      uint
	restockErr  error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uint]*domain.Product), nextID: 1}
}

func (f *fakeProductRepo) Create(product *domain.Product) error {
	product.ID = f.nextID
	f.nextID++
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) FindAll() ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		products = append(products, *p)
	}
	return products, nil
}

func (f *fakeProductRepo) Update(id uint, apply func(*domain.Product)) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	apply(product)
	return product, nil
}

func (f *fakeProductRepo) Delete(id uint) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) Restock(productID uint, quantity int) (*domain.Inventory, error) {
	if f.restockErr != nil {
		return nil, f.restockErr
	}
	product, ok := f.products[productID]
	if !ok {
		return nil, errors.New("record not found")
	}
	product.Stock += quantity
	inventory := domain.Inventory{ID: uint(len(f.inventories) + 1), ProductID: productID, Quantity: quantity}
	f.inventories = append(f.inventories, inventory)
	return &inventory, nil
}

func TestCreateProduct(t *testing.T) {
	repo := newFakeProductRepo()
	handler := NewCreateProductHandler(repo)

	product, err := handler.Handle(CreateProductCommand{Name: "Monitor", Price: 199.90, Stock: 4})
	require.NoError(t, err)

	assert.Equal(t, uint(1), product.ID)
	assert.Equal(t, 4, product.Stock)
}

func TestCreateProductValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateProductCommand
	}{
		{"missing name", CreateProductCommand{Price: 10}},
		{"name too long", CreateProductCommand{Name: strings.Repeat("a", 151), Price: 10}},
		{"description too long", CreateProductCommand{Name: "x", Description: strings.Repeat("a", 256), Price: 10}},
		{"zero price", CreateProductCommand{Name: "x"}},
		{"negative price", CreateProductCommand{Name: "x", Price: -1}},
		{"negative stock", CreateProductCommand{Name: "x", Price: 10, Stock: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCreateProductHandler(newFakeProductRepo())
			_, err := handler.Handle(tt.cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestUpdateProductMergesFields(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products[1] = &domain.Product{ID: 1, Name: "Monitor", Description: "24 inch", Price: 199.90, Stock: 4}
	handler := NewUpdateProductHandler(repo)

	product, err := handler.Handle(UpdateProductCommand{ID: 1, Price: 179.90})
	require.NoError(t, err)

	// Untouched fields keep their stored values.
	assert.Equal(t, "Monitor", product.Name)
	assert.Equal(t, "24 inch", product.Description)
	assert.Equal(t, 179.90, product.Price)
	assert.Equal(t, 4, product.Stock)
}

func TestUpdateProductDoesNotTouchStock(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products[1] = &domain.Product{ID: 1, Name: "Monitor", Price: 199.90, Stock: 4}
	handler := NewUpdateProductHandler(repo)

	product, err := handler.Handle(UpdateProductCommand{ID: 1, Name: "Monitor v2"})
	require.NoError(t, err)
	assert.Equal(t, 4, product.Stock)
}

func TestRestockInventory(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products[1] = &domain.Product{ID: 1, Name: "Monitor", Price: 199.90, Stock: 4}
	handler := NewRestockInventoryHandler(repo)

	inventory, err := handler.Handle(RestockInventoryCommand{ProductID: 1, Quantity: 6})
	require.NoError(t, err)

	assert.Equal(t, 6, inventory.Quantity)
	assert.Equal(t, 10, repo.products[1].Stock)
	require.Len(t, repo.inventories, 1)
}

func TestRestockInventoryValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  RestockInventoryCommand
	}{
		{"missing product id", RestockInventoryCommand{Quantity: 1}},
		{"zero quantity", RestockInventoryCommand{ProductID: 1}},
		{"negative quantity", RestockInventoryCommand{ProductID: 1, Quantity: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRestockInventoryHandler(newFakeProductRepo())
			_, err := handler.Handle(tt.cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestRestockInventoryStorageError(t *testing.T) {
	repo := newFakeProductRepo()
	repo.restockErr = errors.New("connection reset")
	handler := NewRestockInventoryHandler(repo)

	_, err := handler.Handle(RestockInventoryCommand{ProductID: 1, Quantity: 2})
	require.Error(t, err)
	assert.False(t, apperrors.IsValidation(err))
}
