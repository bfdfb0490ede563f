package usecase

import "errors"

// Sentinel errors for the adaptor layer to map onto HTTP statuses.
// The texts are phrased so wrapped errors read naturally, e.g.
// "client with this phone already exists".
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicate          = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrSelfDelete         = errors.New("own account cannot be deleted")
)
