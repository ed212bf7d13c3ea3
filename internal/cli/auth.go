package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/dmitrijs2005/userhub/internal/models"
	"github.com/dmitrijs2005/userhub/internal/validation"
)

// getSimpleText and friends are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText  = GetSimpleText
	getTextDefault = GetTextDefault
	getYesNo       = GetYesNo
	getPassword    = GetPassword
)

// Login prompts for credentials and attempts to authenticate.
//
// The identifier is a username or an email; the user picks which, the
// client never sniffs the content. Input is validated locally first — a
// form that fails validation never reaches the network. A rejected login
// leaves the session untouched and is reported as a single banner line that
// does not reveal which of identifier or password was wrong.
func (a *App) Login(ctx context.Context) error {
	modeAnswer, err := getSimpleText(a.reader, "Log in with username or email? [u/e]", os.Stdout)
	if err != nil {
		return err
	}
	mode := models.LoginModeUsername
	if strings.HasPrefix(strings.ToLower(modeAnswer), "e") {
		mode = models.LoginModeEmail
	}

	identifier, err := getSimpleText(a.reader, fmt.Sprintf("Enter %s", mode), os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	rememberMe, err := getYesNo(a.reader, "Remember me?", os.Stdout)
	if err != nil {
		return err
	}

	req := models.LoginRequest{
		Identifier: identifier,
		Mode:       mode,
		Password:   password,
		RememberMe: rememberMe,
	}

	schema := validation.LoginSchema(mode)
	if result := schema.Validate(validation.LoginValues(req)); !result.Valid() {
		printFieldErrors(schema, result)
		return nil
	}

	if _, err := a.session.Login(ctx, req); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			printlnFn("Invalid credentials.")
			return nil
		}
		printRequestError(err)
		return nil
	}

	printlnFn("Login successful!")
	return nil
}

// Register walks through the registration form, validates it locally, and
// submits it. Registration never logs the user in: if the account comes
// back pending verification the user is told to check their inbox.
func (a *App) Register(ctx context.Context) error {
	req, err := a.promptRegistration()
	if err != nil {
		return err
	}

	schema := validation.RegistrationSchema()
	if result := schema.Validate(validation.RegistrationValues(*req)); !result.Valid() {
		printFieldErrors(schema, result)
		return nil
	}

	result, err := a.session.Register(ctx, *req)
	if err != nil {
		printRequestError(err)
		return nil
	}

	printlnFn("Registration successful!")
	if result.Status == "pending_verification" {
		printlnFn("Check your inbox: the account must be verified before you can log in.")
	}
	return nil
}

// Logout ends the session. The backend call is best-effort; local state is
// cleared no matter what, and logging out while logged out is harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printRequestError(err)
		return nil
	}
	printlnFn("Logged out.")
	return nil
}

func (a *App) promptRegistration() (*models.RegistrationRequest, error) {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return nil, err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return nil, err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return nil, err
	}
	showStrength(password, os.Stdout)
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return nil, err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return nil, err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return nil, err
	}
	phone, err := getSimpleText(a.reader, "Enter phone (optional, e.g. +8613800138000)", os.Stdout)
	if err != nil {
		return nil, err
	}
	dateOfBirth, err := getSimpleText(a.reader, "Enter date of birth (optional, YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return nil, err
	}
	acceptTerms, err := getYesNo(a.reader, "Do you accept the terms of service?", os.Stdout)
	if err != nil {
		return nil, err
	}

	return &models.RegistrationRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
		FirstName:       firstName,
		LastName:        lastName,
		Phone:           phone,
		DateOfBirth:     dateOfBirth,
		AcceptTerms:     acceptTerms,
	}, nil
}

// showStrength prints the advisory password strength indicator. The tier is
// informational only; the schema enforces the actual rejection threshold.
func showStrength(password string, w io.Writer) {
	s := validation.CheckPasswordStrength(password)
	fmt.Fprintf(w, "Password strength: %s (%d/5)\n", s.Tier(), s.Score)
}
