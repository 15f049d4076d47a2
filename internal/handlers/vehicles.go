package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"greengear/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

// fuelTypeFilter normalizes the fuel_type query parameter; "all" means no
// filter, case-insensitively.
func fuelTypeFilter(r *http.Request) string {
	fuelType := r.URL.Query().Get("fuel_type")
	if strings.EqualFold(fuelType, "all") {
		return ""
	}
	return fuelType
}

func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vehicles, err := h.DB.ListVehiclesByUser(r.Context(), userID, fuelTypeFilter(r))
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}

	respondJSON(w, http.StatusOK, vehicles)
}

func (h *Handler) MarketplaceVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.DB.ListAllVehicles(r.Context(), fuelTypeFilter(r))
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}

	respondJSON(w, http.StatusOK, vehicles)
}

func (h *Handler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	data, err := decodeBody(r)
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	if !hasFields(data, "company", "model", "year", "price", "mileage", "fuel_type", "transmission") {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	year, yearOK := intField(data, "year")
	price, priceOK := floatField(data, "price")
	mileage, mileageOK := floatField(data, "mileage")
	if !yearOK || !priceOK || !mileageOK {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	vehicle := models.Vehicle{
		UserID:             userID,
		Company:            stringField(data, "company"),
		Model:              stringField(data, "model"),
		Year:               year,
		Price:              price,
		Mileage:            mileage,
		FuelType:           stringField(data, "fuel_type"),
		Transmission:       stringField(data, "transmission"),
		ImageURL:           optionalString(data, "image_url"),
		Color:              optionalString(data, "color"),
		RegistrationNumber: optionalString(data, "registration_number"),
	}

	vehicleType := "car"
	if t := stringField(data, "type"); t != "" {
		vehicleType = t
	}
	vehicle.Type = &vehicleType

	if dateStr := stringField(data, "purchase_date"); dateStr != "" {
		purchaseDate, err := parseDate(dateStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid purchase date")
			return
		}
		vehicle.PurchaseDate = &purchaseDate
	}

	if err := h.DB.CreateVehicle(r.Context(), &vehicle); err != nil {
		h.respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"id":      vehicle.ID,
		"message": "Vehicle added successfully",
	})
}

// UpdateVehicle applies a partial update: only fields present in the body
// change, everything else keeps its prior value.
func (h *Handler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vehicleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Vehicle not found")
		return
	}

	vehicle, err := h.DB.GetVehicleForOwner(r.Context(), userID, vehicleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondError(w, http.StatusNotFound, "Vehicle not found")
			return
		}
		h.respondAppError(w, err)
		return
	}

	data, err := decodeBody(r)
	if err != nil {
		h.respondAppError(w, err)
		return
	}

	if _, ok := data["company"]; ok {
		vehicle.Company = stringField(data, "company")
	}
	if _, ok := data["model"]; ok {
		vehicle.Model = stringField(data, "model")
	}
	if _, ok := data["year"]; ok {
		if year, ok := intField(data, "year"); ok {
			vehicle.Year = year
		}
	}
	if _, ok := data["price"]; ok {
		if price, ok := floatField(data, "price"); ok {
			vehicle.Price = price
		}
	}
	if _, ok := data["mileage"]; ok {
		if mileage, ok := floatField(data, "mileage"); ok {
			vehicle.Mileage = mileage
		}
	}
	if _, ok := data["fuel_type"]; ok {
		vehicle.FuelType = stringField(data, "fuel_type")
	}
	if _, ok := data["transmission"]; ok {
		vehicle.Transmission = stringField(data, "transmission")
	}
	if _, ok := data["image_url"]; ok {
		vehicle.ImageURL = optionalString(data, "image_url")
	}

	updated, err := h.DB.UpdateVehicle(r.Context(), vehicle)
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if !updated {
		respondError(w, http.StatusNotFound, "Vehicle not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Vehicle updated successfully"})
}

func (h *Handler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vehicleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Vehicle not found")
		return
	}

	deleted, err := h.DB.DeleteVehicle(r.Context(), userID, vehicleID)
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Vehicle not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Vehicle deleted successfully"})
}
