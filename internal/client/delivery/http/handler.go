package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/tair/retail-management/internal/client/domain"
	"github.com/tair/retail-management/internal/client/usecase/command"
	"github.com/tair/retail-management/internal/client/usecase/query"
	"github.com/tair/retail-management/pkg/apperrors"
	"github.com/tair/retail-management/pkg/logger"
)

// ClientHandler handles HTTP requests for clients
type ClientHandler struct {
	createHandler *command.CreateClientHandler
	updateHandler *command.UpdateClientHandler
	deleteHandler *command.DeleteClientHandler
	listHandler   *query.ListClientsHandler
}

// NewClientHandler creates a new client handler
func NewClientHandler(repo domain.ClientRepository) *ClientHandler {
	return &ClientHandler{
		createHandler: command.NewCreateClientHandler(repo),
		updateHandler: command.NewUpdateClientHandler(repo),
		deleteHandler: command.NewDeleteClientHandler(repo),
		listHandler:   query.NewListClientsHandler(repo),
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *ClientHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/client", h.CreateClient).Methods("POST")
	router.HandleFunc("/client", h.ListClients).Methods("GET")
	router.HandleFunc("/client", h.UpdateClient).Methods("PUT")
	router.HandleFunc("/client/{id}", h.DeleteClient).Methods("DELETE")
}

// CreateClient handles POST /client
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	client, err := h.createHandler.Handle(command.CreateClientCommand{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		respondError(w, err, "Failed to create client")
		return
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Client created successfully", Data: client})
}

// ListClients handles GET /client
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.listHandler.Handle(query.ListClientsQuery{})
	if err != nil {
		respondError(w, err, "Failed to fetch clients")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: clients})
}

// UpdateClient handles PUT /client
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID      uint   `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	client, err := h.updateHandler.Handle(command.UpdateClientCommand{
		ID:      req.ID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		respondError(w, err, "Failed to update client")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Client updated successfully", Data: client})
}

// DeleteClient handles DELETE /client/{id}
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid client ID"})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteClientCommand{ID: uint(id)}); err != nil {
		respondError(w, err, "Failed to delete client")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondError maps validation errors to 400 and everything else to a
// generic server error, keeping the underlying error attached.
func respondError(w http.ResponseWriter, err error, message string) {
	if apperrors.IsValidation(err) {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: apperrors.MessageOf(err)})
		return
	}

	logger.Logger.Error().Err(err).Msg(message)
	respondJSON(w, http.StatusInternalServerError, Response{Success: false, Message: message, Error: err.Error()})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
