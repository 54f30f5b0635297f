package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"luciafood-express/order-svc/internal/domain"
	"luciafood-express/order-svc/internal/service"
)

type Handler struct {
	Carts    *service.CartStore
	Menu     service.MenuReader
	Checkout service.CheckoutInterface
	Profiles service.ProfileReader
	Fees     *service.FeeTable
	QR       service.QRGenerator
}

func NewHandler(carts *service.CartStore, menu service.MenuReader, checkout service.CheckoutInterface,
	profiles service.ProfileReader, fees *service.FeeTable, qr service.QRGenerator,
) *Handler {
	return &Handler{Carts: carts, Menu: menu, Checkout: checkout, Profiles: profiles, Fees: fees, QR: qr}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "order-svc"})
	}).Methods("GET")

	r.HandleFunc("/api/cart/{sessionId}/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/cart/{sessionId}/items/{itemId}", h.updateQuantity).Methods("PUT")
	r.HandleFunc("/api/cart/{sessionId}/items/{itemId}", h.removeItem).Methods("DELETE")
	r.HandleFunc("/api/cart/{sessionId}", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/{sessionId}", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/{sessionId}/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/zones", h.getZones).Methods("GET")
	r.HandleFunc("/api/profile/{phone}", h.getProfile).Methods("GET")
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var payload struct {
		ItemID   int `json:"item_id"`
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.ItemID <= 0 {
		http.Error(w, "Missing item_id", http.StatusBadRequest)
		return
	}

	item, err := h.Menu.GetMenuItem(payload.ItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Menu item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.Carts.AddItem(sessionID, *item, payload.Quantity); err != nil {
		if errors.Is(err, service.ErrRestaurantLimit) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.Carts.Snapshot(sessionID))
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	itemID, _ := strconv.Atoi(vars["itemId"])

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.Carts.UpdateQuantity(sessionID, itemID, payload.Quantity)
	writeJSON(w, h.Carts.Snapshot(sessionID))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.Carts.RemoveItem(vars["sessionId"], atoi(vars["itemId"]))
	writeJSON(w, h.Carts.Snapshot(vars["sessionId"]))
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Carts.Snapshot(mux.Vars(r)["sessionId"]))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Carts.Clear(mux.Vars(r)["sessionId"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var info domain.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Checkout.Checkout(r.Context(), sessionID, info)
	if err != nil {
		var missing *service.MissingCustomerInfoError
		switch {
		case errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, service.ErrMultiRestaurantCheckout):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.As(err, &missing):
			http.Error(w, missing.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrCheckoutInProgress):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, service.ErrOrderSave),
			errors.Is(err, service.ErrChatLink):
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Checkout.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	link, err := h.Checkout.OrderChatLink(orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	png, err := h.QR.Generate(link)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getZones(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"zones":       h.Fees.Zones(),
		"default_fee": h.Fees.DefaultFee(),
	})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Profiles.GetProfile(mux.Vars(r)["phone"])
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, profile)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
