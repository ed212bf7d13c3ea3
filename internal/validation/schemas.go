package validation

import "github.com/dmitrijs2005/userhub/internal/models"

// LoginSchema builds the login form contract. The identifier field is
// validated as an email only when the caller selected email mode; the mode
// is an explicit choice, never inferred from the identifier's content.
func LoginSchema(mode models.LoginMode) Schema {
	identifier := Field{Name: "identifier"}
	if mode == models.LoginModeEmail {
		identifier.Rules = []Rule{
			Required("please enter your email"),
			EmailSyntax("please enter a valid email address"),
		}
	} else {
		identifier.Rules = []Rule{
			Required("please enter your username"),
		}
	}

	return Schema{Fields: []Field{
		identifier,
		{Name: "password", Rules: []Rule{
			Required("please enter your password"),
		}},
	}}
}

// RegistrationSchema builds the registration form contract.
func RegistrationSchema() Schema {
	return Schema{Fields: []Field{
		{Name: "username", Rules: []Rule{
			Required("please enter a username"),
			MinLength(3, "username must be at least 3 characters"),
			MaxLength(30, "username must be at most 30 characters"),
			Pattern(usernameRe, "username may only contain letters, digits and underscores"),
		}},
		{Name: "email", Rules: []Rule{
			Required("please enter your email"),
			EmailSyntax("please enter a valid email address"),
		}},
		{Name: "password", Rules: []Rule{
			Required("please enter a password"),
			MinLength(8, "password must be at least 8 characters"),
			StrongPassword("password is not strong enough"),
		}},
		{Name: "confirmPassword", Rules: []Rule{
			Required("please confirm your password"),
			EqualsField("password", "passwords do not match"),
		}},
		{Name: "firstName", Rules: []Rule{
			Required("please enter your first name"),
			MaxLength(50, "first name must be at most 50 characters"),
		}},
		{Name: "lastName", Rules: []Rule{
			Required("please enter your last name"),
			MaxLength(50, "last name must be at most 50 characters"),
		}},
		{Name: "phone", Rules: []Rule{
			Pattern(phoneRe, "please enter a valid international phone number (e.g. +8613800138000) or leave empty"),
		}},
		{Name: "acceptTerms", Rules: []Rule{
			IsTrue("you must accept the terms of service"),
		}},
	}}
}

// ChangePasswordSchema builds the change-password form contract. The new
// password is held to the same strength bar as registration.
func ChangePasswordSchema() Schema {
	return Schema{Fields: []Field{
		{Name: "currentPassword", Rules: []Rule{
			Required("please enter your current password"),
		}},
		{Name: "newPassword", Rules: []Rule{
			Required("please enter a new password"),
			MinLength(8, "password must be at least 8 characters"),
			StrongPassword("password is not strong enough"),
		}},
		{Name: "confirmPassword", Rules: []Rule{
			Required("please confirm your new password"),
			EqualsField("newPassword", "passwords do not match"),
		}},
	}}
}

// ResetPasswordSchema builds the reset-password form contract (forgot
// password flow, completed with the emailed token).
func ResetPasswordSchema() Schema {
	return Schema{Fields: []Field{
		{Name: "token", Rules: []Rule{
			Required("please enter the reset token"),
		}},
		{Name: "newPassword", Rules: []Rule{
			Required("please enter a new password"),
			MinLength(8, "password must be at least 8 characters"),
			StrongPassword("password is not strong enough"),
		}},
		{Name: "confirmPassword", Rules: []Rule{
			Required("please confirm your new password"),
			EqualsField("newPassword", "passwords do not match"),
		}},
	}}
}

// ProfileSchema builds the profile edit form contract.
func ProfileSchema() Schema {
	return Schema{Fields: []Field{
		{Name: "firstName", Rules: []Rule{
			Required("please enter your first name"),
			MaxLength(50, "first name must be at most 50 characters"),
		}},
		{Name: "lastName", Rules: []Rule{
			Required("please enter your last name"),
			MaxLength(50, "last name must be at most 50 characters"),
		}},
		{Name: "phone", Rules: []Rule{
			Pattern(phoneRe, "please enter a valid phone number"),
		}},
		{Name: "bio", Rules: []Rule{
			MaxLength(500, "bio must be at most 500 characters"),
		}},
	}}
}
