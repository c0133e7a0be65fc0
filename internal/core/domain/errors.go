package domain

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrValidation         = errors.New("validation failed")
)
