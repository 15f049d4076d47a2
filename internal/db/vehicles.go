package db

import (
	"context"

	"greengear/internal/models"

	"github.com/jackc/pgx/v5"
)

const vehicleColumns = `id, user_id, company, model, year, price, mileage, fuel_type, transmission,
	image_url, type, color, registration_number, purchase_date, created_at`

func (db *Database) CreateVehicle(ctx context.Context, v *models.Vehicle) error {
	return db.Pool.QueryRow(ctx,
		`INSERT INTO vehicles (user_id, company, model, year, price, mileage, fuel_type, transmission,
			image_url, type, color, registration_number, purchase_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id, created_at`,
		v.UserID, v.Company, v.Model, v.Year, v.Price, v.Mileage, v.FuelType, v.Transmission,
		v.ImageURL, v.Type, v.Color, v.RegistrationNumber, v.PurchaseDate,
	).Scan(&v.ID, &v.CreatedAt)
}

// ListVehiclesByUser returns the caller's vehicles, optionally restricted to
// one fuel type. An empty fuelType means no filter.
func (db *Database) ListVehiclesByUser(ctx context.Context, userID int, fuelType string) ([]models.Vehicle, error) {
	query := "SELECT " + vehicleColumns + " FROM vehicles WHERE user_id = $1"
	args := []any{userID}
	if fuelType != "" {
		query += " AND fuel_type = $2"
		args = append(args, fuelType)
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanVehicles(rows)
}

// ListAllVehicles is the marketplace view: every vehicle across every owner.
func (db *Database) ListAllVehicles(ctx context.Context, fuelType string) ([]models.Vehicle, error) {
	query := "SELECT " + vehicleColumns + " FROM vehicles"
	var args []any
	if fuelType != "" {
		query += " WHERE fuel_type = $1"
		args = append(args, fuelType)
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanVehicles(rows)
}

func scanVehicles(rows pgx.Rows) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.UserID, &v.Company, &v.Model, &v.Year, &v.Price, &v.Mileage,
			&v.FuelType, &v.Transmission, &v.ImageURL, &v.Type, &v.Color,
			&v.RegistrationNumber, &v.PurchaseDate, &v.CreatedAt); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

// GetVehicleForOwner loads a vehicle only if it belongs to userID.
func (db *Database) GetVehicleForOwner(ctx context.Context, userID, vehicleID int) (*models.Vehicle, error) {
	var v models.Vehicle

	err := db.Pool.QueryRow(ctx,
		"SELECT "+vehicleColumns+" FROM vehicles WHERE id = $1 AND user_id = $2",
		vehicleID, userID,
	).Scan(&v.ID, &v.UserID, &v.Company, &v.Model, &v.Year, &v.Price, &v.Mileage,
		&v.FuelType, &v.Transmission, &v.ImageURL, &v.Type, &v.Color,
		&v.RegistrationNumber, &v.PurchaseDate, &v.CreatedAt)

	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (db *Database) UpdateVehicle(ctx context.Context, v *models.Vehicle) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE vehicles SET company = $1, model = $2, year = $3, price = $4, mileage = $5,
			fuel_type = $6, transmission = $7, image_url = $8
		 WHERE id = $9 AND user_id = $10`,
		v.Company, v.Model, v.Year, v.Price, v.Mileage, v.FuelType, v.Transmission, v.ImageURL,
		v.ID, v.UserID,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (db *Database) DeleteVehicle(ctx context.Context, userID, vehicleID int) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		"DELETE FROM vehicles WHERE id = $1 AND user_id = $2",
		vehicleID, userID,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
