package services

import "errors"

var (
	ErrNotFound       = errors.New("applytrack: application not found")
	ErrEmailTaken     = errors.New("applytrack: email already registered")
	ErrBadCredentials = errors.New("applytrack: invalid email or password")
)
