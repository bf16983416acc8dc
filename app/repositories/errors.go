package repositories

import "errors"

var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("record not found")
	ErrCategoryInUse = errors.New("category is still referenced by products")
)
