package db

import (
	"context"

	"greengear/internal/models"
)

func (db *Database) CreateTrip(ctx context.Context, t *models.Trip) error {
	return db.Pool.QueryRow(ctx,
		`INSERT INTO trips (user_id, start_location, end_location, distance, start_time, end_time, vehicle_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		t.UserID, t.StartLocation, t.EndLocation, t.Distance, t.StartTime, t.EndTime, t.VehicleID,
	).Scan(&t.ID, &t.CreatedAt)
}

// ListTripsByUser returns the caller's trips newest-first, each with its
// vehicle summary and the CO2 value of its linked emission record, if any.
func (db *Database) ListTripsByUser(ctx context.Context, userID int) ([]models.Trip, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT t.id, t.user_id, t.start_location, t.end_location, t.distance,
			t.start_time, t.end_time, t.vehicle_id, t.created_at,
			v.id, v.model, v.company, e.co2_emissions
		 FROM trips t
		 JOIN vehicles v ON t.vehicle_id = v.id
		 LEFT JOIN emission_records e ON e.trip_id = t.id
		 WHERE t.user_id = $1
		 ORDER BY t.created_at DESC, t.id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.ID, &t.UserID, &t.StartLocation, &t.EndLocation, &t.Distance,
			&t.StartTime, &t.EndTime, &t.VehicleID, &t.CreatedAt,
			&t.Vehicle.ID, &t.Vehicle.Model, &t.Vehicle.Company, &t.Emissions); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}

	return trips, rows.Err()
}

func (db *Database) CreateEmission(ctx context.Context, e *models.EmissionRecord) error {
	return db.Pool.QueryRow(ctx,
		`INSERT INTO emission_records (trip_id, user_id, vehicle_id, co2_emissions, distance, fuel_consumed, record_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		e.TripID, e.UserID, e.VehicleID, e.CO2Emissions, e.Distance, e.FuelConsumed, e.RecordDate,
	).Scan(&e.ID, &e.CreatedAt)
}

func (db *Database) ListEmissionsByUser(ctx context.Context, userID int) ([]models.EmissionRecord, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT e.id, e.trip_id, e.user_id, e.vehicle_id, e.co2_emissions, e.distance,
			e.fuel_consumed, e.record_date, e.created_at,
			v.id, v.model, v.company
		 FROM emission_records e
		 JOIN vehicles v ON e.vehicle_id = v.id
		 WHERE e.user_id = $1
		 ORDER BY e.record_date DESC, e.id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.EmissionRecord
	for rows.Next() {
		var e models.EmissionRecord
		if err := rows.Scan(&e.ID, &e.TripID, &e.UserID, &e.VehicleID, &e.CO2Emissions, &e.Distance,
			&e.FuelConsumed, &e.RecordDate, &e.CreatedAt,
			&e.Vehicle.ID, &e.Vehicle.Model, &e.Vehicle.Company); err != nil {
			return nil, err
		}
		records = append(records, e)
	}

	return records, rows.Err()
}
