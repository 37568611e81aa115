package entity

import "time"

// Event compromisso da agenda, opcionalmente vinculado a um cliente.
type Event struct {
	ID          string
	Title       string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
	CustomerID  *string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
