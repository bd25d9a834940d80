package repository

import "time"

// Account represents an accounts row.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
