package entity

import "time"

// User cuenta de acceso a la API (colección users).
// Username y Email son únicos a nivel del store (índices únicos).
type User struct {
	ID           string
	Username     string
	Email        string // siempre en minúsculas
	PasswordHash string // bcrypt, nunca el texto plano
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
