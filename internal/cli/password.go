package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/userhub/internal/models"
	"github.com/dmitrijs2005/userhub/internal/validation"
)

// ChangePassword prompts for the current and new password and submits the
// change. The new password is validated locally against the same strength
// bar as registration.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		printlnFn("Please log in first.")
		return nil
	}

	current, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	newPassword, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	showStrength(newPassword, os.Stdout)
	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}

	schema := validation.ChangePasswordSchema()
	values := validation.Values{
		"currentPassword": current,
		"newPassword":     newPassword,
		"confirmPassword": confirm,
	}
	if result := schema.Validate(values); !result.Valid() {
		printFieldErrors(schema, result)
		return nil
	}

	req := models.ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     newPassword,
		ConfirmPassword: confirm,
	}
	if err := a.api.ChangePassword(ctx, req); err != nil {
		printRequestError(err)
		return nil
	}

	printlnFn("Password changed.")
	return nil
}

// ForgotPassword requests a password reset email.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your account email", os.Stdout)
	if err != nil {
		return err
	}

	schema := validation.Schema{Fields: []validation.Field{
		{Name: "email", Rules: []validation.Rule{
			validation.Required("please enter your email"),
			validation.EmailSyntax("please enter a valid email address"),
		}},
	}}
	if result := schema.Validate(validation.Values{"email": email}); !result.Valid() {
		printFieldErrors(schema, result)
		return nil
	}

	if err := a.api.ForgotPassword(ctx, email); err != nil {
		printRequestError(err)
		return nil
	}

	printlnFn("If the address is registered, a reset email is on its way.")
	return nil
}

// ResetPassword completes the forgot-password flow with the emailed token.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter the reset token from the email", os.Stdout)
	if err != nil {
		return err
	}
	newPassword, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	showStrength(newPassword, os.Stdout)
	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}

	schema := validation.ResetPasswordSchema()
	values := validation.Values{
		"token":           token,
		"newPassword":     newPassword,
		"confirmPassword": confirm,
	}
	if result := schema.Validate(values); !result.Valid() {
		printFieldErrors(schema, result)
		return nil
	}

	req := models.ResetPasswordRequest{
		Token:           token,
		NewPassword:     newPassword,
		ConfirmPassword: confirm,
	}
	if err := a.api.ResetPassword(ctx, req); err != nil {
		printRequestError(err)
		return nil
	}

	printlnFn("Password reset. You can log in with the new password now.")
	return nil
}

// VerifyEmail submits an email verification token.
func (a *App) VerifyEmail(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter the verification token from the email", os.Stdout)
	if err != nil {
		return err
	}
	if token == "" {
		printlnFn("  token: please enter the verification token")
		return nil
	}

	if err := a.api.VerifyEmail(ctx, token); err != nil {
		printRequestError(err)
		return nil
	}

	printlnFn("Email verified. You can log in now.")
	return nil
}
