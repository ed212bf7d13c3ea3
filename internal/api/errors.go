package api

import "fmt"

// APIError is a backend-reported failure: the envelope said success=false
// or the status code indicated a client error. Fields holds any structured
// field-scoped validation errors the backend attached.
type APIError struct {
	Status  int
	Message string
	Fields  []FieldError
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// FieldMap returns the field-scoped errors keyed by field name, for mapping
// back onto form inputs. Returns an empty map if there are none.
func (e *APIError) FieldMap() map[string]string {
	m := make(map[string]string, len(e.Fields))
	for _, fe := range e.Fields {
		if _, ok := m[fe.Field]; !ok {
			m[fe.Field] = fe.Message
		}
	}
	return m
}
