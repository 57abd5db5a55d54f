package domain

import "errors"

// Business-rule rejections for the registration workflow. Handlers report
// these as flash-style messages on an otherwise successful response.
var (
	ErrAlreadyRegistered = errors.New("already registered")
	ErrActivityFull      = errors.New("activity full")
	ErrNotEligible       = errors.New("not eligible")
	ErrSessionFull       = errors.New("session full")
)
