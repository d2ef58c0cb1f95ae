package usecase

import "errors"

// Sentinel errors services wrap so handlers can map them onto the HTTP
// error taxonomy without string matching.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("already exists")
	ErrMailDelivery = errors.New("mail delivery failed")
	ErrUpload       = errors.New("upload failed")
)
