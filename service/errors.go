package service

import (
	"errors"

	"gorm.io/gorm"
)

// NotFoundError means a referenced id did not resolve to a row
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func notFound(msg string) error { return &NotFoundError{Message: msg} }

// ConflictError means the write would break a uniqueness rule
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

var ErrInvalidCredentials = errors.New("invalid email or password")

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
