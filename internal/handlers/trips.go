package handlers

import (
	"net/http"

	"greengear/internal/db"
	"greengear/internal/models"
)

func (h *Handler) CreateTrip(w http.ResponseWriter, r *http.Request) {
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

	if !hasFields(data, "start_location", "end_location", "distance", "start_time", "end_time", "vehicle_id") {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	distance, distanceOK := floatField(data, "distance")
	vehicleID, vehicleOK := intField(data, "vehicle_id")
	if !distanceOK || !vehicleOK {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	startTime, err := parseTimestamp(stringField(data, "start_time"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid start time")
		return
	}
	endTime, err := parseTimestamp(stringField(data, "end_time"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid end time")
		return
	}
	if endTime.Before(startTime) {
		respondError(w, http.StatusBadRequest, "End time must not be before start time")
		return
	}

	trip := models.Trip{
		UserID:        userID,
		StartLocation: stringField(data, "start_location"),
		EndLocation:   stringField(data, "end_location"),
		Distance:      distance,
		StartTime:     startTime,
		EndTime:       endTime,
		VehicleID:     vehicleID,
	}

	if err := h.DB.CreateTrip(r.Context(), &trip); err != nil {
		if db.IsForeignKeyViolation(err) {
			respondError(w, http.StatusBadRequest, "Invalid vehicle reference")
			return
		}
		h.respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"id":      trip.ID,
		"message": "Trip recorded successfully",
	})
}

func (h *Handler) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	trips, err := h.DB.ListTripsByUser(r.Context(), userID)
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if trips == nil {
		trips = []models.Trip{}
	}

	respondJSON(w, http.StatusOK, trips)
}

func (h *Handler) RecordEmission(w http.ResponseWriter, r *http.Request) {
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

	if !hasFields(data, "trip_id", "vehicle_id", "co2_emissions", "distance", "fuel_consumed", "record_date") {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	co2, co2OK := floatField(data, "co2_emissions")
	distance, distanceOK := floatField(data, "distance")
	fuelConsumed, fuelOK := floatField(data, "fuel_consumed")
	vehicleID, vehicleOK := intField(data, "vehicle_id")
	if !co2OK || !distanceOK || !fuelOK || !vehicleOK {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	recordDate, err := parseDate(stringField(data, "record_date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid record date")
		return
	}

	record := models.EmissionRecord{
		UserID:       userID,
		VehicleID:    vehicleID,
		CO2Emissions: co2,
		Distance:     distance,
		FuelConsumed: fuelConsumed,
		RecordDate:   recordDate,
	}

	// trip_id is optional in the schema; the route requires it but null is
	// tolerated the way the original tolerated it.
	if tripID, ok := intField(data, "trip_id"); ok {
		record.TripID = &tripID
	}

	if err := h.DB.CreateEmission(r.Context(), &record); err != nil {
		if db.IsForeignKeyViolation(err) {
			respondError(w, http.StatusBadRequest, "Invalid trip or vehicle reference")
			return
		}
		if db.IsUniqueViolation(err) {
			respondError(w, http.StatusBadRequest, "Trip already has an emission record")
			return
		}
		h.respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"id":      record.ID,
		"message": "Emission record created successfully",
	})
}

func (h *Handler) ListEmissions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := h.DB.ListEmissionsByUser(r.Context(), userID)
	if err != nil {
		h.respondAppError(w, err)
		return
	}
	if records == nil {
		records = []models.EmissionRecord{}
	}

	respondJSON(w, http.StatusOK, records)
}
