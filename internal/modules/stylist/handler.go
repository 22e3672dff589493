package stylist

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the style advisor endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

type adviceRequest struct {
	Occasion string `json:"occasion"`
}

type adviceResponse struct {
	Advice string `json:"advice"`
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/stylist/advice", h.advise)
}

func (h *Handler) advise(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	advice, err := h.service.Advise(r.Context(), req.Occasion)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNoOccasion) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(adviceResponse{Advice: advice})
}
