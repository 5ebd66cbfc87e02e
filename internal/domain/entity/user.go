package entity

import "time"

// User usuario de la API (acceso a operaciones de escritura e importación).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
