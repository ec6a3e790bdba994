package models

import "fmt"

// NotFoundError represents an error when a requested case is not present
// in the store or in a fetched case list
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// RequestError represents a failed call to the Remote Case Service. Both
// transport failures and non-2xx statuses collapse into it; the client
// draws no distinction between the two.
type RequestError struct {
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
