package services

import "errors"

// Failure taxonomy handled at the controller boundary. Controllers convert
// these to a flash message plus redirect, or to an error page.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("required fields are missing")
	ErrAuthExchange = errors.New("authorization exchange failed")
	ErrNotLoggedIn  = errors.New("not logged in")
)
