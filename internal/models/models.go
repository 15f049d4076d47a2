package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserSummary is the author annotation attached to posts and comments.
type UserSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type Vehicle struct {
	ID                 int        `json:"id"`
	UserID             int        `json:"-"`
	Company            string     `json:"company"`
	Model              string     `json:"model"`
	Year               int        `json:"year"`
	Price              float64    `json:"price"`
	Mileage            float64    `json:"mileage"`
	FuelType           string     `json:"fuel_type"`
	Transmission       string     `json:"transmission"`
	ImageURL           *string    `json:"image_url"`
	Type               *string    `json:"type,omitempty"`
	Color              *string    `json:"color,omitempty"`
	RegistrationNumber *string    `json:"registration_number,omitempty"`
	PurchaseDate       *time.Time `json:"purchase_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// VehicleSummary is the short form embedded in trip and emission listings.
type VehicleSummary struct {
	ID      int    `json:"id"`
	Model   string `json:"model"`
	Company string `json:"company"`
}

type Trip struct {
	ID            int            `json:"id"`
	UserID        int            `json:"-"`
	StartLocation string         `json:"start_location"`
	EndLocation   string         `json:"end_location"`
	Distance      float64        `json:"distance"`
	StartTime     time.Time      `json:"start_time"`
	EndTime       time.Time      `json:"end_time"`
	VehicleID     int            `json:"-"`
	Vehicle       VehicleSummary `json:"vehicle"`
	Emissions     *float64       `json:"emissions"`
	CreatedAt     time.Time      `json:"-"`
}

type EmissionRecord struct {
	ID           int            `json:"id"`
	TripID       *int           `json:"trip_id"`
	UserID       int            `json:"-"`
	VehicleID    int            `json:"-"`
	CO2Emissions float64        `json:"co2_emissions"`
	Distance     float64        `json:"distance"`
	FuelConsumed float64        `json:"fuel_consumed"`
	RecordDate   time.Time      `json:"record_date"`
	Vehicle      VehicleSummary `json:"vehicle"`
	CreatedAt    time.Time      `json:"-"`
}

type CommunityPost struct {
	ID            int         `json:"id"`
	UserID        int         `json:"-"`
	Title         string      `json:"title"`
	Content       string      `json:"content"`
	PostType      string      `json:"post_type"`
	Likes         int         `json:"likes"`
	Views         int         `json:"views"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"-"`
	Author        UserSummary `json:"author"`
	CommentsCount int         `json:"comments_count"`
}

type PostComment struct {
	ID        int         `json:"id"`
	PostID    int         `json:"-"`
	UserID    int         `json:"-"`
	Content   string      `json:"content"`
	Likes     int         `json:"likes"`
	CreatedAt time.Time   `json:"created_at"`
	Author    UserSummary `json:"author"`
}

type Message struct {
	ID         int       `json:"id"`
	Content    string    `json:"content"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// PostTypes is the allowed set for CommunityPost.PostType.
var PostTypes = map[string]bool{
	"discussion":  true,
	"achievement": true,
	"question":    true,
	"tip":         true,
}
