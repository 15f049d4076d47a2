package db

import (
	"context"

	"greengear/internal/models"
)

func (db *Database) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	var user models.User

	err := db.Pool.QueryRow(ctx,
		"INSERT INTO users (username, email, password_hash, role) VALUES ($1, $2, $3, 'customer') RETURNING id, username, email, role, created_at",
		username, email, passwordHash,
	).Scan(&user.ID, &user.Username, &user.Email, &user.Role, &user.CreatedAt)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (db *Database) CreateAdmin(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	var user models.User

	err := db.Pool.QueryRow(ctx,
		"INSERT INTO users (username, email, password_hash, role) VALUES ($1, $2, $3, 'admin') RETURNING id, username, email, role, created_at",
		username, email, passwordHash,
	).Scan(&user.ID, &user.Username, &user.Email, &user.Role, &user.CreatedAt)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (db *Database) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	err := db.Pool.QueryRow(ctx,
		"SELECT id, username, email, password_hash, role, created_at FROM users WHERE username = $1",
		username,
	).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (db *Database) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User

	err := db.Pool.QueryRow(ctx,
		"SELECT id, username, email, role, created_at FROM users WHERE id = $1",
		id,
	).Scan(&user.ID, &user.Username, &user.Email, &user.Role, &user.CreatedAt)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (db *Database) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int

	err := db.Pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM users WHERE username = $1",
		username,
	).Scan(&count)

	return count > 0, err
}

func (db *Database) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int

	err := db.Pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM users WHERE email = $1",
		email,
	).Scan(&count)

	return count > 0, err
}
