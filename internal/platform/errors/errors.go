package apperrors

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrConfigNotFound  = errors.New("config file not found")
	ErrHistoryDisabled = errors.New("session history is disabled")
	ErrEmptyManuscript = errors.New("nothing was written")
)
