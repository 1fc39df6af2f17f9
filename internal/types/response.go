package types

import (
	ierr "github.com/listingdesk/backoffice/internal/errors"
)

// Response is the envelope every query operation returns through
type Response[T any] struct {
	Status  bool    `json:"status"`
	Title   string  `json:"title"`
	Message string  `json:"message"`
	Detail  *string `json:"detail"`
	Data    *T      `json:"data"`

	err error
}

// ListData is the payload of a list response
type ListData[T any] struct {
	TotalCount int `json:"totalCount"`
	Items      []T `json:"items"`
}

// NewSuccessResponse wraps a payload
func NewSuccessResponse[T any](data T, title, message string) *Response[T] {
	return &Response[T]{
		Status:  true,
		Title:   title,
		Message: message,
		Data:    &data,
	}
}

// NewFailureResponse wraps a classified error. The error text is kept as detail
// so storage failures stay diagnosable.
func NewFailureResponse[T any](err error) *Response[T] {
	title, message := describe(err)
	resp := &Response[T]{
		Status:  false,
		Title:   title,
		Message: message,
		err:     err,
	}
	if err != nil {
		detail := err.Error()
		resp.Detail = &detail
	}
	return resp
}

// Err returns the error a failure response was built from
func (r *Response[T]) Err() error {
	return r.err
}

func describe(err error) (string, string) {
	hint := ierr.Hint(err)
	switch ierr.Code(err) {
	case ierr.ErrCodeNotFound:
		return "Not found", orDefault(hint, "The requested record does not exist or is not visible")
	case ierr.ErrCodeInvalidIdentifier:
		return "Invalid identifier", orDefault(hint, "The identifier could not be parsed")
	case ierr.ErrCodeValidation:
		return "Invalid request", orDefault(hint, "The request parameters are invalid")
	case ierr.ErrCodePermissionDenied:
		return "Unauthorized", orDefault(hint, "The request could not be authenticated")
	case ierr.ErrCodeDatabase:
		return "Storage failure", orDefault(hint, "The records could not be read")
	default:
		return "Unexpected error", orDefault(hint, "An unexpected error occurred")
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
