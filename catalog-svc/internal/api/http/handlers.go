package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"luciafood-express/catalog-svc/internal/domain"
	"luciafood-express/catalog-svc/internal/service"
)

type Handler struct {
	Catalog   service.CatalogInterface
	UploadDir string
}

func NewHandler(catalog service.CatalogInterface, uploadDir string) *Handler {
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	return &Handler{Catalog: catalog, UploadDir: uploadDir}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}", h.deleteRestaurant).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id}/image", h.uploadRestaurantImage).Methods("POST")

	r.HandleFunc("/api/restaurants/{restaurantId}/items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/items", h.getMenuItems).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/items/{itemId}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/items/{itemId}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/items/{itemId}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{restaurantId}/items/{itemId}/image", h.uploadMenuItemImage).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":    "healthy",
		"service":   "catalog-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var restaurant domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Catalog.CreateRestaurant(&restaurant); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, restaurant)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.ListRestaurants()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	restaurant, err := h.Catalog.GetRestaurant(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, restaurant)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var restaurant domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Catalog.UpdateRestaurant(id, &restaurant); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, restaurant)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Catalog.DeleteRestaurant(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.RestaurantID = restaurantID

	if err := h.Catalog.CreateMenuItem(&item); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, item)
}

func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	items, err := h.Catalog.ListMenuItems(restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["restaurantId"])
	itemID, _ := strconv.Atoi(vars["itemId"])

	item, err := h.Catalog.GetMenuItem(restaurantID, itemID)
	if err != nil {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}

	writeJSON(w, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["restaurantId"])
	itemID, _ := strconv.Atoi(vars["itemId"])

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Catalog.UpdateMenuItem(restaurantID, itemID, &item); err != nil {
		writeServiceError(w, err)
		return
	}

	item.ID = itemID
	item.RestaurantID = restaurantID
	writeJSON(w, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["restaurantId"])
	itemID, _ := strconv.Atoi(vars["itemId"])

	if err := h.Catalog.DeleteMenuItem(restaurantID, itemID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "Menu item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadRestaurantImage(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	imageURL, err := h.saveUpload(r, fmt.Sprintf("restaurant_%d", id))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Catalog.SetRestaurantImage(id, imageURL); err != nil {
		http.Error(w, "Failed to update restaurant", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"image_url": imageURL})
}

func (h *Handler) uploadMenuItemImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, _ := strconv.Atoi(vars["restaurantId"])
	itemID, _ := strconv.Atoi(vars["itemId"])

	imageURL, err := h.saveUpload(r, fmt.Sprintf("item_%d_%d", restaurantID, itemID))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Catalog.SetMenuItemImage(restaurantID, itemID, imageURL); err != nil {
		http.Error(w, "Failed to update menu item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"image_url": imageURL})
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handler) saveUpload(r *http.Request, prefix string) (string, error) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return "", errors.New("file too large")
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return "", errors.New("error retrieving the file")
	}
	defer file.Close()

	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		return "", errors.New("invalid file type, only JPEG, PNG, GIF, WebP allowed")
	}

	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		return "", errors.New("failed to create upload directory")
	}

	filename := fmt.Sprintf("%s_%s", prefix, header.Filename)
	dst, err := os.Create(h.UploadDir + "/" + filename)
	if err != nil {
		return "", errors.New("failed to create file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", errors.New("failed to save file")
	}

	return "/uploads/" + filename, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNameRequired), errors.Is(err, service.ErrInvalidPrice):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
