// Package api contains the HTTP gateway to the userhub backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the full REST surface: register/login/logout, token refresh, email
//     verification, password recovery, and profile reads/writes.
//  2. A concrete implementation (see HTTPClient) that wraps net/http,
//     injects the bearer credential on every request, decodes the response
//     envelope, and maps failures to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: common.ErrUnavailable for transport failures,
// common.ErrUnauthorized for rejected credentials, common.ErrForbidden for
// insufficient rights. Envelope-level failures carry an *APIError with the
// backend message and any field-scoped errors.
//
// A 401 on any endpoint additionally fires the hook registered via
// HTTPClient.OnUnauthorized before the error is returned; the session layer
// uses this to invalidate itself no matter which call tripped the credential.
package api

import (
	"context"

	"github.com/dmitrijs2005/userhub/internal/models"
)

// Client is the API contract against the userhub backend. All operations
// accept a context and honor cancellation/timeouts.
type Client interface {
	Register(ctx context.Context, req models.RegistrationRequest) (*models.RegistrationResult, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context, refreshToken string) (*models.RefreshResult, error)
	VerifyEmail(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
}
