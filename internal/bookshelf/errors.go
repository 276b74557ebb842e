package bookshelf

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPair        = errors.New("invalid credentials")
	ErrUnauthorizedAccess = errors.New("invalid token")
	ErrBookNotFound       = errors.New("book not found")
	ErrTokenNotFound      = errors.New("token not found")
)
