package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sanvicreation/boutique-backend/internal/modules/catalog"
	"github.com/sanvicreation/boutique-backend/internal/modules/order"
)

// Handler exposes cart HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

type itemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type checkoutRequest struct {
	CustomerName string `json:"customerName"`
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/carts", func(r chi.Router) {
		r.Post("/", h.createCart)
		r.Get("/{id}", h.getCart)
		r.Post("/{id}/items", h.addItem)
		r.Put("/{id}/items", h.setQuantity)
		r.Post("/{id}/checkout", h.checkout)
	})
}

func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusCreated, h.service.CreateCart())
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCart(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c, err := h.service.AddItem(r.Context(), chi.URLParam(r, "id"), req.ProductID, req.Quantity)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c, err := h.service.SetQuantity(r.Context(), chi.URLParam(r, "id"), req.ProductID, req.Quantity)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	o, err := h.service.Checkout(r.Context(), chi.URLParam(r, "id"), req.CustomerName)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, http.StatusCreated, o)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadQuantity), errors.Is(err, ErrCustomerName), errors.Is(err, order.ErrEmptyOrder):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
