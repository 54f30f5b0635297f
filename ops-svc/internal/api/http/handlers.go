package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"luciafood-express/ops-svc/internal/service"
)

type Handler struct {
	Store service.StoreInterface
}

func NewHandler(store service.StoreInterface) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "ops-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/ops/top-today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/ops/top-revenue", h.getTopRevenue).Methods("GET")
	r.HandleFunc("/api/ops/zones", h.getZoneActivity).Methods("GET")
	r.HandleFunc("/api/ops/restaurants/{restaurantId}/summary", h.getRestaurantSummary).Methods("GET")
}

func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	data, err := h.Store.TopRestaurantsToday(limitParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) getTopRevenue(w http.ResponseWriter, r *http.Request) {
	data, err := h.Store.TopRestaurantsByRevenue(limitParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) getZoneActivity(w http.ResponseWriter, r *http.Request) {
	data, err := h.Store.ZoneActivityToday()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) getRestaurantSummary(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	summary, err := h.Store.RestaurantSummary(restaurantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "No orders recorded for restaurant", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(summary)
}

func limitParam(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return 10
	}
	return limit
}
