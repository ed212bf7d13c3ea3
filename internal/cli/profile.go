package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/userhub/internal/models"
	"github.com/dmitrijs2005/userhub/internal/validation"
)

// Whoami prints the current user's profile.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s>", u.FullName(), u.Email))
	printlnFn(fmt.Sprintf("  username: %s", u.Username))
	printlnFn(fmt.Sprintf("  role:     %s", u.Role))
	printlnFn(fmt.Sprintf("  status:   %s", u.Status))
	if u.Phone != nil && *u.Phone != "" {
		printlnFn(fmt.Sprintf("  phone:    %s", *u.Phone))
	}
	if u.DateOfBirth != nil {
		printlnFn(fmt.Sprintf("  born:     %s", u.DateOfBirth.Format("2006-01-02")))
	}
	if u.Bio != nil && *u.Bio != "" {
		printlnFn(fmt.Sprintf("  bio:      %s", *u.Bio))
	}
	if u.LastLoginAt != nil {
		printlnFn(fmt.Sprintf("  last login: %s", u.LastLoginAt.Format(time.RFC3339)))
	}
	return nil
}

// EditProfile walks through the profile form with the current values as
// defaults, validates the result, and submits the update. The displayed
// outcome comes from the backend's re-fetched profile, so any server-side
// normalization is reflected immediately.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		printlnFn("Please log in first.")
		return nil
	}

	current := a.profileDefaults(ctx)

	firstName, err := getTextDefault(a.reader, "First name", current.FirstName, os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getTextDefault(a.reader, "Last name", current.LastName, os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getTextDefault(a.reader, "Phone", deref(current.Phone), os.Stdout)
	if err != nil {
		return err
	}
	dateOfBirth, err := getTextDefault(a.reader, "Date of birth (YYYY-MM-DD)", formatDate(current.DateOfBirth), os.Stdout)
	if err != nil {
		return err
	}
	bio, err := getTextDefault(a.reader, "Bio", deref(current.Bio), os.Stdout)
	if err != nil {
		return err
	}

	schema := validation.ProfileSchema()
	values := validation.Values{
		"firstName":   firstName,
		"lastName":    lastName,
		"phone":       phone,
		"dateOfBirth": dateOfBirth,
		"bio":         bio,
	}
	if result := schema.Validate(values); !result.Valid() {
		printFieldErrors(schema, result)
		return nil
	}

	req := models.UpdateProfileRequest{
		FirstName:   &firstName,
		LastName:    &lastName,
		Phone:       &phone,
		DateOfBirth: &dateOfBirth,
		Bio:         &bio,
	}

	user, err := a.session.UpdateProfile(ctx, req)
	if err != nil {
		printRequestError(err)
		return nil
	}

	printlnFn(fmt.Sprintf("Profile updated: %s", user.FullName()))
	return nil
}

// profileDefaults fetches a fresh profile to prefill the form. A fetch
// failure is swallowed: the form falls back to the session's cached user.
func (a *App) profileDefaults(ctx context.Context) *models.User {
	if user, err := a.api.GetProfile(ctx); err == nil {
		return user
	}
	if u := a.session.CurrentUser(); u != nil {
		return u
	}
	return &models.User{}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
