package validation

import (
	"strconv"

	"github.com/dmitrijs2005/userhub/internal/models"
)

// LoginValues flattens a login request into form values for LoginSchema.
func LoginValues(req models.LoginRequest) Values {
	return Values{
		"identifier": req.Identifier,
		"password":   req.Password,
		"rememberMe": strconv.FormatBool(req.RememberMe),
	}
}

// RegistrationValues flattens a registration request into form values for
// RegistrationSchema.
func RegistrationValues(req models.RegistrationRequest) Values {
	return Values{
		"username":        req.Username,
		"email":           req.Email,
		"password":        req.Password,
		"confirmPassword": req.ConfirmPassword,
		"firstName":       req.FirstName,
		"lastName":        req.LastName,
		"phone":           req.Phone,
		"dateOfBirth":     req.DateOfBirth,
		"acceptTerms":     strconv.FormatBool(req.AcceptTerms),
	}
}
