package catalog

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrNameTaken         = errors.New("excursion name already exists")
	ErrExcursionInactive = errors.New("excursion is not active")
	ErrInvalidTransition = errors.New("invalid slot status transition")
)
