package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoToken          = errors.New("no token: login or signup first")
	ErrInvalidBaseURL   = errors.New("invalid server url")
	ErrUnexpectedFormat = errors.New("unexpected response format")
)
