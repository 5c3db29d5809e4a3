package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdomain "github.com/tair/retail-management/internal/product/domain"
	"github.com/tair/retail-management/internal/sale/domain"
)

type fakeSaleRepo struct {
	stocks    map[uint]int
	sales     map[uint]*domain.Sale
	items     map[uint][]domain.ItemWithProduct
	nextID    uint
	createErr error
}

func (f *fakeSaleRepo) reset() {
	f.stocks = map[uint]int{}
	f.sales = map[uint]*domain.Sale{}
	f.items = map[uint][]domain.ItemWithProduct{}
	f.nextID = 1
	f.createErr = nil
}

func (f *fakeSaleRepo) CreateWithItems(sale *domain.Sale, items []domain.SaleItem) (*domain.SaleWithItems, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	sale.ID = f.nextID
	f.nextID++

	enriched := make([]domain.ItemWithProduct, 0, len(items))
	for i := range items {
		f.stocks[items[i].ProductID] -= items[i].Quantity
		items[i].SaleID = sale.ID
		enriched = append(enriched, domain.ItemWithProduct{
			SaleItem: items[i],
			Product:  productdomain.Product{ID: items[i].ProductID, Stock: f.stocks[items[i].ProductID]},
		})
	}
	f.sales[sale.ID] = sale
	f.items[sale.ID] = enriched
	return &domain.SaleWithItems{Sale: *sale, Items: enriched}, nil
}

func (f *fakeSaleRepo) FindByID(id uint) (*domain.Sale, error) {
	sale, ok := f.sales[id]
	if !ok {
		return nil, domain.ErrSaleNotFound
	}
	return sale, nil
}

func (f *fakeSaleRepo) FindAll() ([]domain.Sale, error) {
	sales := make([]domain.Sale, 0, len(f.sales))
	for _, s := range f.sales {
		sales = append(sales, *s)
	}
	return sales, nil
}

func (f *fakeSaleRepo) FindItems(saleID uint) ([]domain.ItemWithProduct, error) {
	return f.items[saleID], nil
}

func (f *fakeSaleRepo) UpdateStatus(id uint, status string) (*domain.Sale, error) {
	sale, ok := f.sales[id]
	if !ok {
		return nil, domain.ErrSaleNotFound
	}
	sale.Status = status
	return sale, nil
}

func (f *fakeSaleRepo) Delete(id uint) error {
	delete(f.sales, id)
	return nil
}

// Prometheus collectors register globally, so the handler is built once
// and shared across tests.
var (
	setupOnce  sync.Once
	testRepo   = &fakeSaleRepo{}
	testRouter *mux.Router
)

func setup() (*fakeSaleRepo, *mux.Router) {
	setupOnce.Do(func() {
		handler := NewSaleHandler(testRepo)
		testRouter = mux.NewRouter()
		handler.RegisterRoutes(testRouter)
	})
	testRepo.reset()
	return testRepo, testRouter
}

func doRequest(router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateSaleEndpoint(t *testing.T) {
	repo, router := setup()
	repo.stocks[10] = 10

	rec := doRequest(router, http.MethodPost, "/sale", map[string]interface{}{
		"client_id":    1,
		"employee_id":  2,
		"total_amount": 59.97,
		"status":       "Pending",
		"items": []map[string]interface{}{
			{"product_id": 10, "quantity": 3, "price": 19.99},
		},
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Sale created successfully", resp.Message)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "Pending", data["status"])
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	product := items[0].(map[string]interface{})["product"].(map[string]interface{})
	assert.Equal(t, float64(7), product["stock"])
}

func TestCreateSaleEndpointRepeatedProduct(t *testing.T) {
	repo, router := setup()
	repo.stocks[10] = 10

	rec := doRequest(router, http.MethodPost, "/sale", map[string]interface{}{
		"client_id":    1,
		"employee_id":  2,
		"total_amount": 30,
		"status":       "Pending",
		"items": []map[string]interface{}{
			{"product_id": 10, "quantity": 1, "price": 10},
			{"product_id": 10, "quantity": 2, "price": 10},
		},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "cannot create a sale with a repeated product", resp.Error)
	assert.Equal(t, 10, repo.stocks[10])
}

func TestCreateSaleEndpointInvalidBody(t *testing.T) {
	_, router := setup()

	req := httptest.NewRequest(http.MethodPost, "/sale", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSaleEndpointStorageError(t *testing.T) {
	repo, router := setup()
	repo.createErr = errors.New("connection reset")

	rec := doRequest(router, http.MethodPost, "/sale", map[string]interface{}{
		"client_id":    1,
		"employee_id":  2,
		"total_amount": 10,
		"status":       "Pending",
		"items": []map[string]interface{}{
			{"product_id": 10, "quantity": 1, "price": 10},
		},
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to create sale", resp.Message)
	assert.NotEmpty(t, resp.Error)
}

func TestGetSaleEndpoint(t *testing.T) {
	repo, router := setup()
	repo.sales[1] = &domain.Sale{ID: 1, ClientID: 1, EmployeeID: 2, TotalAmount: 20, Status: domain.StatusPending}

	rec := doRequest(router, http.MethodGet, "/sale/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.NotNil(t, data["items"])
}

func TestGetSaleEndpointUnknownID(t *testing.T) {
	_, router := setup()

	rec := doRequest(router, http.MethodGet, "/sale/999", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(0), data["id"])
}

func TestGetSaleEndpointBadID(t *testing.T) {
	_, router := setup()
	rec := doRequest(router, http.MethodGet, "/sale/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSaleEndpoint(t *testing.T) {
	repo, router := setup()
	repo.sales[4] = &domain.Sale{ID: 4, Status: domain.StatusPending}

	rec := doRequest(router, http.MethodPut, "/sale", map[string]interface{}{
		"id":     4,
		"status": "Canceled",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StatusCanceled, repo.sales[4].Status)
}

func TestUpdateSaleEndpointUnknownStatus(t *testing.T) {
	_, router := setup()

	rec := doRequest(router, http.MethodPut, "/sale", map[string]interface{}{
		"id":     1,
		"status": "Refunded",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteSaleEndpoint(t *testing.T) {
	repo, router := setup()
	repo.sales[9] = &domain.Sale{ID: 9}

	rec := doRequest(router, http.MethodDelete, "/sale/9", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
	assert.NotContains(t, repo.sales, uint(9))
}

func TestListSalesEndpoint(t *testing.T) {
	repo, router := setup()
	repo.sales[1] = &domain.Sale{ID: 1}

	rec := doRequest(router, http.MethodGet, "/sale", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data.([]interface{}), 1)
}
