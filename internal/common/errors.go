package common

import (
	"errors"
	"fmt"
)

// Business logic errors
var (
	// General errors
	ErrInvalidInput = errors.New("invalid input")

	// Blog errors
	ErrPostNotFound = errors.New("blog post not found")

	// Apps errors
	ErrAppsNotFound = errors.New("apps data not found")
)

// RenderError reports an unexpected failure while reading or rendering a
// single blog post. It always surfaces as an internal error.
type RenderError struct {
	Slug string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("error reading blog post: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// DataFormatError reports a data file that exists but cannot be decoded
type DataFormatError struct {
	Path string
	Err  error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("invalid data format in %s: %v", e.Path, e.Err)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}
