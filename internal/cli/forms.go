package cli

import (
	"errors"

	"github.com/dmitrijs2005/userhub/internal/api"
	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/dmitrijs2005/userhub/internal/validation"
)

// printFieldErrors renders one inline message per failed field, in the
// schema's field order.
func printFieldErrors(schema validation.Schema, result validation.Result) {
	for _, f := range schema.Fields {
		if msg, ok := result[f.Name]; ok {
			printlnFn("  " + f.Name + ": " + msg)
		}
	}
}

// printRequestError renders a backend or transport failure as a banner
// line, plus inline lines for any field-scoped errors the backend attached.
// Unauthorized errors print nothing: the session invalidation hook already
// notified the user, and an expired session must never surface as a form
// error.
func printRequestError(err error) {
	var apiErr *api.APIError

	switch {
	case errors.Is(err, common.ErrUnauthorized):
		return
	case errors.Is(err, common.ErrUnavailable):
		printlnFn("Server unavailable, please try again later.")
	case errors.As(err, &apiErr):
		printlnFn("Error: " + apiErr.Error())
		for _, fe := range apiErr.Fields {
			printlnFn("  " + fe.Field + ": " + fe.Message)
		}
	default:
		printlnFn("Error: " + err.Error())
	}
}
