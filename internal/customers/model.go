package customers

import "time"

// Customer is a registered buyer. The password hash never serializes.
type Customer struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Document     string    `json:"document"`
	RegisteredAt time.Time `json:"registered_at"`
}
