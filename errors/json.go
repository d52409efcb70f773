package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat, serializable form of an error.
// The wrapped error chain is intentionally excluded.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Context contains optional metadata about the error.
	Context map[string]any `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse.
// Returns nil if err is nil.
//
// For Error values the message and context are taken directly. For other
// errors the full error text becomes the message and the code is taken from
// the first Coder in the chain.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var ctx map[string]any

	var e Error
	if As(err, &e) {
		message = e.Message()
		ctx = e.Context()
	}

	return &ErrorResponse{
		Code:    string(GetCode(err)),
		Message: message,
		Context: ctx,
	}
}

// MarshalJSON implements json.Marshaler.
func (e *codedError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:    string(e.code),
		Message: e.message,
		Context: e.context,
	})
	if err != nil {
		return nil, &codedError{
			code:    CodeInternal,
			message: "failed to marshal error response",
			cause:   err,
		}
	}
	return data, nil
}
