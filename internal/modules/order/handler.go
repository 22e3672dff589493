package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	CustomerName string     `json:"customerName"`
	Items        []LineItem `json:"items"`
}

// UpdateStatusRequest is the payload for changing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Get("/", h.listOrders)
		r.Post("/", h.placeOrder)
		r.Put("/{id}/status", h.updateStatus)
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		http.Error(w, "customerName is required", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "at least one item is required", http.StatusBadRequest)
		return
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			http.Error(w, fmt.Sprintf("quantity for product %d must be at least 1", item.Product.ID), http.StatusBadRequest)
			return
		}
	}
	o, err := h.service.PlaceOrder(r.Context(), req.CustomerName, req.Items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !ValidStatus(req.Status) {
		http.Error(w, fmt.Sprintf("status must be one of %s, %s, %s", StatusPending, StatusShipped, StatusDelivered), http.StatusBadRequest)
		return
	}
	o, err := h.service.UpdateStatus(r.Context(), id, OrderStatus(req.Status))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	respond(w, http.StatusOK, o)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
