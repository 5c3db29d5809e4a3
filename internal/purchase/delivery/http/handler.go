package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/tair/retail-management/internal/purchase/domain"
	"github.com/tair/retail-management/internal/purchase/usecase/command"
	"github.com/tair/retail-management/internal/purchase/usecase/query"
	"github.com/tair/retail-management/pkg/apperrors"
	"github.com/tair/retail-management/pkg/logger"
)

// PurchaseHandler handles HTTP requests for purchases
type PurchaseHandler struct {
	createHandler *command.CreatePurchaseHandler
	updateHandler *command.UpdatePurchaseHandler
	deleteHandler *command.DeletePurchaseHandler
	listHandler   *query.ListPurchasesHandler
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(repo domain.PurchaseRepository) *PurchaseHandler {
	return &PurchaseHandler{
		createHandler: command.NewCreatePurchaseHandler(repo),
		updateHandler: command.NewUpdatePurchaseHandler(repo),
		deleteHandler: command.NewDeletePurchaseHandler(repo),
		listHandler:   query.NewListPurchasesHandler(repo),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *PurchaseHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/purchase", h.CreatePurchase).Methods("POST")
	router.HandleFunc("/purchase", h.ListPurchases).Methods("GET")
	router.HandleFunc("/purchase", h.UpdatePurchase).Methods("PUT")
	router.HandleFunc("/purchase/{id}", h.DeletePurchase).Methods("DELETE")
}

type purchaseRequest struct {
	ID            uint    `json:"id"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	PaymentMethod string  `json:"payment_method"`
}

// CreatePurchase handles POST /purchase
func (h *PurchaseHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	purchase, err := h.createHandler.Handle(command.CreatePurchaseCommand{
		Description:   req.Description,
		Price:         req.Price,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondError(w, err, "Failed to create purchase")
		return
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Purchase created successfully", Data: purchase})
}

// ListPurchases handles GET /purchase
func (h *PurchaseHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.listHandler.Handle(query.ListPurchasesQuery{})
	if err != nil {
		respondError(w, err, "Failed to fetch purchases")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: purchases})
}

// UpdatePurchase handles PUT /purchase
func (h *PurchaseHandler) UpdatePurchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	purchase, err := h.updateHandler.Handle(command.UpdatePurchaseCommand{
		ID:            req.ID,
		Description:   req.Description,
		Price:         req.Price,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		respondError(w, err, "Failed to update purchase")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Purchase updated successfully", Data: purchase})
}

// DeletePurchase handles DELETE /purchase/{id}
func (h *PurchaseHandler) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid purchase ID"})
		return
	}

	if err := h.deleteHandler.Handle(command.DeletePurchaseCommand{ID: uint(id)}); err != nil {
		respondError(w, err, "Failed to delete purchase")
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
