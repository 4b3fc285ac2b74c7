package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("auth: invalid username or password")
	ErrInvalidToken       = errors.New("auth: invalid token")
	ErrExpiredToken       = errors.New("auth: token expired")
	ErrSessionRevoked     = errors.New("auth: session revoked")
	ErrNoSession          = errors.New("auth: not logged in")
)
