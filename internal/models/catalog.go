package models

import "time"

// Movie is a read-only catalog record; this core never edits it.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	Director    string    `json:"director"`
	DurationMin int       `json:"duration_min"`
	Rating      float64   `json:"rating"`
	ReleaseDate time.Time `json:"release_date"`
	Description string    `json:"description,omitempty"`
}

// UserRole distinguishes staff from customers in the catalog.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleCustomer UserRole = "CUSTOMER"
)

// User is a read-only catalog record used to attribute orders.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Phone string   `json:"phone"`
	Role  UserRole `json:"role"`
}
