package services

import "errors"

var (
	ErrEmptyPayload = errors.New("request data is empty")
	ErrInvalidInput = errors.New("invalid input")
)
