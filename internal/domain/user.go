package domain

import "time"

// User is a stationhub account. Password always holds the encoded form,
// never plaintext. IsActive stays false until the activation code is
// redeemed; until then the account cannot log in.
type User struct {
	ID             string
	FullName       string
	Username       string // unique
	Email          string // unique
	Password       string // pbkdf2 encoded
	Role           Role
	IsActive       bool
	ActivationCode string
	ProfilePicture string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
