package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/tair/retail-management/internal/product/domain"
	"github.com/tair/retail-management/internal/product/usecase/command"
	"github.com/tair/retail-management/internal/product/usecase/query"
	"github.com/tair/retail-management/pkg/apperrors"
	"github.com/tair/retail-management/pkg/logger"
)

// ProductHandler handles HTTP requests for products and inventory
type ProductHandler struct {
	createHandler  *command.CreateProductHandler
	updateHandler  *command.UpdateProductHandler
	deleteHandler  *command.DeleteProductHandler
	restockHandler *command.RestockInventoryHandler
	listHandler    *query.ListProductsHandler
}

// NewProductHandler creates a new product handler
func NewProductHandler(repo domain.ProductRepository) *ProductHandler {
	return &ProductHandler{
		createHandler:  command.NewCreateProductHandler(repo),
		updateHandler:  command.NewUpdateProductHandler(repo),
		deleteHandler:  command.NewDeleteProductHandler(repo),
		restockHandler: command.NewRestockInventoryHandler(repo),
		listHandler:    query.NewListProductsHandler(repo),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	// /product/inventory has to be registered before the {id} route
	router.HandleFunc("/product/inventory", h.RestockInventory).Methods("POST")
	router.HandleFunc("/product", h.CreateProduct).Methods("POST")
	router.HandleFunc("/product", h.ListProducts).Methods("GET")
	router.HandleFunc("/product", h.UpdateProduct).Methods("PUT")
	router.HandleFunc("/product/{id}", h.DeleteProduct).Methods("DELETE")
}

// CreateProduct handles POST /product
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Stock       int     `json:"stock"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	product, err := h.createHandler.Handle(command.CreateProductCommand{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		respondError(w, err, "Failed to create product")
		return
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Product created successfully", Data: product})
}

// ListProducts handles GET /product
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.listHandler.Handle(query.ListProductsQuery{})
	if err != nil {
		respondError(w, err, "Failed to fetch products")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// UpdateProduct handles PUT /product
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          uint    `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	product, err := h.updateHandler.Handle(command.UpdateProductCommand{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		respondError(w, err, "Failed to update product")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Product updated successfully", Data: product})
}

// DeleteProduct handles DELETE /product/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: uint(id)}); err != nil {
		respondError(w, err, "Failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RestockInventory handles POST /product/inventory
func (h *ProductHandler) RestockInventory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	inventory, err := h.restockHandler.Handle(command.RestockInventoryCommand{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(w, err, "Failed to update inventory")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Inventory updated successfully", Data: inventory})
}

func respondError(w http.ResponseWriter, err error, message string) {
	if apperrors.IsValidation(err) {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: apperrors.MessageOf(err)})
		return
	}

	logger.Logger.Error().Err(err).Msg(message)
	respondJSON(w, http.StatusInternalServerError, Response{Success: false, Message: message, Error: err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
