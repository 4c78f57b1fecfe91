package domain

import "time"

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id_pengguna"`
	Username     string    `json:"nama_pengguna"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"peran_pengguna"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
