package usecase

import "errors"

var (
	ErrInvalidPage = errors.New("invalid page: page number must be >= 1")
)
