package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// User is the verified identity attached to every authenticated request.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Admin        bool      `json:"admin"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Claims struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
	jwt.RegisteredClaims
}

var ErrUsernameTaken = errors.New("username already exists")

var ErrInvalidCredentials = errors.New("invalid username or password")

var ErrUserNotFound = errors.New("user not found")

var ErrInvalidToken = errors.New("invalid token")
