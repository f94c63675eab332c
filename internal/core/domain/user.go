package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrTokenInvalid = errors.New("token rejected")

// User models a registered account able to log in and register animals.
type User struct {
	ID           string    `json:"id"`
	HandleName   string    `json:"handle_name"`
	EmailAddress string    `json:"email_address,omitempty"`
	PasswordHash string    `json:"-"`
	Deactivated  bool      `json:"deactivated"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
