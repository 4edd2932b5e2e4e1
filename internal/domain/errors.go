package domain

import (
	"errors"
	"fmt"
)

// InvalidZipError marks malformed postal-code input. Recoverable by the
// caller correcting the input.
type InvalidZipError struct {
	Zip string
}

func (e InvalidZipError) Error() string {
	if e.Zip == "" {
		return "zip code is empty"
	}
	return fmt.Sprintf("invalid zip code %q", e.Zip)
}

// GeocodeUnavailableError marks a remote geocoder failure. Surfaced to the
// caller because distance cannot proceed without it or a precomputed value.
type GeocodeUnavailableError struct {
	Zip string
	Err error
}

func (e GeocodeUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geocode unavailable for %s: %v", e.Zip, e.Err)
	}
	return fmt.Sprintf("geocode unavailable for %s", e.Zip)
}

func (e GeocodeUnavailableError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "" && e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	default:
		return "validation error"
	}
}

func (e ValidationError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsInvalidZip(err error) bool {
	var target InvalidZipError
	return errors.As(err, &target)
}

func IsGeocodeUnavailable(err error) bool {
	var target GeocodeUnavailableError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}
