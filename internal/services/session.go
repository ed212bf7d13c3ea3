// Package services contains the application services of the userhub client.
// This file defines the session service: the single source of truth for
// "who is logged in", with durable carry-over across process restarts.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userhub/internal/api"
	"github.com/dmitrijs2005/userhub/internal/logging"
	"github.com/dmitrijs2005/userhub/internal/models"
	sessionrepo "github.com/dmitrijs2005/userhub/internal/repositories/session"
)

// SessionService owns the authentication state for the process lifetime.
//
// Contract:
//   - Restore: one startup attempt to revive a persisted session.
//   - Login: authenticate and persist the returned token and user together.
//   - Register: pure pass-through; never mutates session state.
//   - Logout: best-effort server call, guaranteed local cleanup.
//   - UpdateProfile: partial update, then re-fetch of the canonical profile.
//   - HandleUnauthorized: the global invalidation side effect for 401s.
//
// After every operation completes, IsAuthenticated() == (CurrentUser() != nil).
// All methods must honor context cancellation/timeouts.
type SessionService interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error)
	Register(ctx context.Context, req models.RegistrationRequest) (*models.RegistrationResult, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	HandleUnauthorized(ctx context.Context)
	OnInvalidate(fn func())

	CurrentUser() *models.User
	IsAuthenticated() bool
	IsLoading() bool
}

// sessionService is the concrete SessionService backed by the remote API
// client and the local artifact repository.
type sessionService struct {
	client api.Client
	repo   sessionrepo.Repository
	log    logging.Logger

	mu            sync.Mutex
	currentUser   *models.User
	authenticated bool
	loading       bool
	restored      bool
	onInvalidate  func()
}

// NewSessionService constructs a SessionService. The session starts in the
// loading state until Restore completes.
func NewSessionService(client api.Client, repo sessionrepo.Repository, log logging.Logger) SessionService {
	return &sessionService{client: client, repo: repo, log: log, loading: true}
}

// OnInvalidate registers fn to run whenever the session is invalidated by a
// rejected credential. The callback is the navigation signal: it tells the
// consumer to return the user to the login entry point. Register once at
// startup.
func (s *sessionService) OnInvalidate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onInvalidate = fn
}

// Restore attempts to revive a persisted session. If artifacts exist, the
// profile is fetched fresh from the backend using the stored token; the
// cached user copy is never trusted as current state. Any failure wipes the
// artifacts and leaves the session logged out. The loading flag drops
// exactly once, at the end of the first call; subsequent calls are no-ops.
func (s *sessionService) Restore(ctx context.Context) error {
	s.mu.Lock()
	if s.restored {
		s.mu.Unlock()
		return nil
	}
	s.restored = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	artifacts, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stored session: %w", err)
	}
	if artifacts == nil {
		s.setUser(nil)
		return nil
	}

	user, err := s.client.GetProfile(ctx)
	if err != nil {
		s.log.Warn(ctx, "stored session could not be restored", "error", err)
		if clearErr := s.repo.Clear(ctx); clearErr != nil {
			s.log.Error(ctx, "failed to clear stale session", "error", clearErr)
		}
		s.setUser(nil)
		return nil
	}

	if err := s.persist(ctx, artifacts.AccessToken, user); err != nil {
		return err
	}
	s.setUser(user)
	s.log.Info(ctx, "session restored", "user", user.Username)
	return nil
}

// Login authenticates against the backend. On success the returned token
// and user are persisted together and the in-memory state is updated; on
// failure nothing is mutated and the error propagates for display. There is
// no retry.
func (s *sessionService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	result, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx, result.Token.AccessToken, &result.User); err != nil {
		return nil, err
	}
	s.setUser(&result.User)
	s.log.Info(ctx, "logged in", "user", result.User.Username)
	return result, nil
}

// Register forwards the registration to the backend. It never mutates
// session state and does not log the new user in: a "pending_verification"
// status in the result is a successful registration with activation
// deferred until the email is confirmed.
func (s *sessionService) Register(ctx context.Context, req models.RegistrationRequest) (*models.RegistrationResult, error) {
	return s.client.Register(ctx, req)
}

// Logout calls the backend best-effort (a failure is logged, never
// surfaced) and then unconditionally clears the persisted artifacts and
// resets the in-memory state. Calling it while already logged out is safe.
func (s *sessionService) Logout(ctx context.Context) (err error) {
	defer func() {
		if clearErr := s.repo.Clear(ctx); clearErr != nil {
			err = clearErr
		}
		s.setUser(nil)
	}()

	if apiErr := s.client.Logout(ctx); apiErr != nil {
		s.log.Warn(ctx, "logout request failed", "error", apiErr)
	}
	return nil
}

// UpdateProfile sends the partial update and then re-fetches the canonical
// profile in a second round trip. State and artifacts are set from the
// fetched copy — the backend owns derived and normalized fields, so neither
// the input nor the update response is trusted as stored state.
func (s *sessionService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	if _, err := s.client.UpdateProfile(ctx, req); err != nil {
		return nil, err
	}

	user, err := s.client.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	artifacts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if artifacts != nil {
		if err := s.persist(ctx, artifacts.AccessToken, user); err != nil {
			return nil, err
		}
	}
	s.setUser(user)
	return user, nil
}

// HandleUnauthorized is the invalidation side effect: wipe the artifacts,
// drop the in-memory session, and signal navigation. It is wired to the
// gateway's 401 hook, so it fires no matter which call tripped the
// credential.
func (s *sessionService) HandleUnauthorized(ctx context.Context) {
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear session on unauthorized response", "error", err)
	}
	s.setUser(nil)
	s.log.Info(ctx, "session invalidated")

	s.mu.Lock()
	fn := s.onInvalidate
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// CurrentUser returns the authenticated user, or nil.
func (s *sessionService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser
}

// IsAuthenticated reports whether a user is logged in.
func (s *sessionService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// IsLoading reports whether the startup restore attempt is still in flight.
func (s *sessionService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// setUser is the single mutation point for the user/authenticated pair,
// which keeps the isAuthenticated == (currentUser != nil) invariant.
func (s *sessionService) setUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = user
	s.authenticated = user != nil
}

// persist writes the token and the serialized user as one pair.
func (s *sessionService) persist(ctx context.Context, accessToken string, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user record: %w", err)
	}
	if err := s.repo.Save(ctx, accessToken, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
