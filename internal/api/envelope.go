package api

import "encoding/json"

// FieldError is a backend validation error attributed to a single named
// input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// envelope is the wrapper every backend response carries.
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data,omitempty"`
	Errors    []FieldError    `json:"errors,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
	Path      string          `json:"path,omitempty"`
}
