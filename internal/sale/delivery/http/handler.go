package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tair/retail-management/internal/sale/domain"
	"github.com/tair/retail-management/internal/sale/usecase/command"
	"github.com/tair/retail-management/internal/sale/usecase/query"
	"github.com/tair/retail-management/kafka"
	"github.com/tair/retail-management/pkg/apperrors"
	"github.com/tair/retail-management/pkg/logger"
)

// SaleHandler handles HTTP requests for sales
type SaleHandler struct {
	createHandler *command.CreateSaleHandler
	updateHandler *command.UpdateSaleHandler
	deleteHandler *command.DeleteSaleHandler
	getHandler    *query.GetSaleHandler
	listHandler   *query.ListSalesHandler

	kafkaPublisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalSales     prometheus.Gauge
}

// NewSaleHandler creates a new sale handler (manual DI)
func NewSaleHandler(repo domain.SaleRepository) *SaleHandler {
	return NewSaleHandlerWithDI(
		command.NewCreateSaleHandler(repo),
		command.NewUpdateSaleHandler(repo),
		command.NewDeleteSaleHandler(repo),
		query.NewGetSaleHandler(repo),
		query.NewListSalesHandler(repo),
	)
}

// NewSaleHandlerWithDI creates a new sale handler from pre-built
// command and query handlers. Used by Wire.
func NewSaleHandlerWithDI(
	createHandler *command.CreateSaleHandler,
	updateHandler *command.UpdateSaleHandler,
	deleteHandler *command.DeleteSaleHandler,
	getHandler *query.GetSaleHandler,
	listHandler *query.ListSalesHandler,
) *SaleHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sale_service_requests_total",
			Help: "Total number of requests to sale endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sale_service_request_duration_seconds",
			Help:    "Duration of sale requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "sale_service_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalSales := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sale_service_total_sales",
			Help: "Total number of sales recorded",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalSales)

	return &SaleHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
		totalSales:     totalSales,
	}
}

// SetKafkaPublisher attaches an event publisher. Without one, sale
// creation simply skips the event.
func (h *SaleHandler) SetKafkaPublisher(publisher *kafka.Publisher) {
	h.kafkaPublisher = publisher
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *SaleHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *SaleHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sale", h.metricsMiddleware("/sale", h.CreateSale)).Methods("POST")
	router.HandleFunc("/sale", h.metricsMiddleware("/sale", h.ListSales)).Methods("GET")
	router.HandleFunc("/sale", h.metricsMiddleware("/sale", h.UpdateSale)).Methods("PUT")
	router.HandleFunc("/sale/{id}", h.metricsMiddleware("/sale/{id}", h.GetSale)).Methods("GET")
	router.HandleFunc("/sale/{id}", h.metricsMiddleware("/sale/{id}", h.DeleteSale)).Methods("DELETE")
}

type saleItemRequest struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type saleRequest struct {
	ID          uint              `json:"id"`
	ClientID    uint              `json:"client_id"`
	EmployeeID  uint              `json:"employee_id"`
	TotalAmount float64           `json:"total_amount"`
	Status      string            `json:"status"`
	Items       []saleItemRequest `json:"items"`
}

// CreateSale handles POST /sale
func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	items := make([]command.SaleItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = command.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	sale, err := h.createHandler.Handle(command.CreateSaleCommand{
		ClientID:    req.ClientID,
		EmployeeID:  req.EmployeeID,
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
		Items:       items,
	})
	if err != nil {
		respondError(w, err, "Failed to create sale")
		return
	}

	h.totalSales.Inc()

	if h.kafkaPublisher != nil {
		event := kafka.SaleCreatedEvent{
			SaleID:      sale.ID,
			ClientID:    sale.ClientID,
			EmployeeID:  sale.EmployeeID,
			TotalAmount: sale.TotalAmount,
			Status:      sale.Status,
			Items:       make([]kafka.SaleItemEvent, len(sale.Items)),
		}
		for i, item := range sale.Items {
			event.Items[i] = kafka.SaleItemEvent{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
		}
		if err := h.kafkaPublisher.PublishSaleCreated(r.Context(), event); err != nil {
			logger.Logger.Error().Err(err).Uint("sale_id", sale.ID).Msg("Failed to publish sale created event")
		}
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Sale created successfully", Data: sale})
}

// ListSales handles GET /sale
func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.listHandler.Handle(query.ListSalesQuery{})
	if err != nil {
		respondError(w, err, "Failed to fetch sales")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: sales})
}

// GetSale handles GET /sale/{id}
func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid sale ID"})
		return
	}

	sale, err := h.getHandler.Handle(query.GetSaleQuery{ID: uint(id)})
	if err != nil {
		respondError(w, err, "Failed to fetch sale")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: sale})
}

// UpdateSale handles PUT /sale
func (h *SaleHandler) UpdateSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	sale, err := h.updateHandler.Handle(command.UpdateSaleCommand{
		ID:     req.ID,
		Status: req.Status,
	})
	if err != nil {
		respondError(w, err, "Failed to update sale")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Sale updated successfully", Data: sale})
}

// DeleteSale handles DELETE /sale/{id}
func (h *SaleHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid sale ID"})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteSaleCommand{ID: uint(id)}); err != nil {
		respondError(w, err, "Failed to delete sale")
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
