package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userhub/internal/common"
	"github.com/dmitrijs2005/userhub/internal/models"
)

// ---- input/output stubs ----

// stubIO swaps all interactive seams for queued canned answers and captures
// everything printed. The returned restore func must be deferred.
type stubIO struct {
	texts     []string
	defaults  []string
	passwords []string
	yesNos    []bool
	out       []string
}

func (s *stubIO) install(t *testing.T) func() {
	t.Helper()
	origText, origDefault, origYN, origPw, origPrintln :=
		getSimpleText, getTextDefault, getYesNo, getPassword, printlnFn

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		require.NotEmpty(t, s.texts, "unexpected text prompt")
		v := s.texts[0]
		s.texts = s.texts[1:]
		return v, nil
	}
	getTextDefault = func(_ *bufio.Reader, _ string, def string, _ io.Writer) (string, error) {
		require.NotEmpty(t, s.defaults, "unexpected default prompt")
		v := s.defaults[0]
		s.defaults = s.defaults[1:]
		if v == "" {
			return def, nil
		}
		return v, nil
	}
	getPassword = func(_ string, _ io.Writer) (string, error) {
		require.NotEmpty(t, s.passwords, "unexpected password prompt")
		v := s.passwords[0]
		s.passwords = s.passwords[1:]
		return v, nil
	}
	getYesNo = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		require.NotEmpty(t, s.yesNos, "unexpected yes/no prompt")
		v := s.yesNos[0]
		s.yesNos = s.yesNos[1:]
		return v, nil
	}
	printlnFn = func(args ...any) (int, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			if str, ok := a.(string); ok {
				parts[i] = str
			}
		}
		s.out = append(s.out, strings.Join(parts, " "))
		return 0, nil
	}

	return func() {
		getSimpleText, getTextDefault, getYesNo, getPassword, printlnFn =
			origText, origDefault, origYN, origPw, origPrintln
	}
}

func (s *stubIO) printed() string { return strings.Join(s.out, "\n") }

// ---- fake session service ----

type fakeSession struct {
	user *models.User

	loginReq *models.LoginRequest
	loginRet *models.LoginResult
	loginErr error

	registerReq *models.RegistrationRequest
	registerRet *models.RegistrationResult
	registerErr error

	logoutCalls int

	updateReq *models.UpdateProfileRequest
	updateRet *models.User
	updateErr error
}

func (f *fakeSession) Restore(context.Context) error { return nil }

func (f *fakeSession) Login(_ context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	f.loginReq = &req
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.user = &f.loginRet.User
	return f.loginRet, nil
}

func (f *fakeSession) Register(_ context.Context, req models.RegistrationRequest) (*models.RegistrationResult, error) {
	f.registerReq = &req
	return f.registerRet, f.registerErr
}

func (f *fakeSession) Logout(context.Context) error {
	f.logoutCalls++
	f.user = nil
	return nil
}

func (f *fakeSession) UpdateProfile(_ context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	f.updateReq = &req
	return f.updateRet, f.updateErr
}

func (f *fakeSession) HandleUnauthorized(context.Context) { f.user = nil }
func (f *fakeSession) OnInvalidate(func())                {}
func (f *fakeSession) CurrentUser() *models.User          { return f.user }
func (f *fakeSession) IsAuthenticated() bool              { return f.user != nil }
func (f *fakeSession) IsLoading() bool                    { return false }

// ---- TESTS ----

func TestLogin_Success(t *testing.T) {
	sio := &stubIO{
		texts:     []string{"u", "alice"},
		passwords: []string{"Secret1!"},
		yesNos:    []bool{true},
	}
	defer sio.install(t)()

	f := &fakeSession{loginRet: &models.LoginResult{User: models.User{Username: "alice"}}}
	a := &App{session: f}

	require.NoError(t, a.Login(context.Background()))

	require.NotNil(t, f.loginReq)
	require.Equal(t, "alice", f.loginReq.Identifier)
	require.Equal(t, models.LoginModeUsername, f.loginReq.Mode)
	require.Equal(t, "Secret1!", f.loginReq.Password)
	require.True(t, f.loginReq.RememberMe)
	require.Contains(t, sio.printed(), "Login successful!")
}

func TestLogin_EmailModeSelected(t *testing.T) {
	sio := &stubIO{
		texts:     []string{"email", "alice@example.org"},
		passwords: []string{"Secret1!"},
		yesNos:    []bool{false},
	}
	defer sio.install(t)()

	f := &fakeSession{loginRet: &models.LoginResult{}}
	a := &App{session: f}

	require.NoError(t, a.Login(context.Background()))
	require.Equal(t, models.LoginModeEmail, f.loginReq.Mode)
}

func TestLogin_EmptyPassword_NoNetworkCall(t *testing.T) {
	sio := &stubIO{
		texts:     []string{"u", "alice"},
		passwords: []string{""},
		yesNos:    []bool{false},
	}
	defer sio.install(t)()

	f := &fakeSession{}
	a := &App{session: f}

	require.NoError(t, a.Login(context.Background()))

	require.Nil(t, f.loginReq, "validation failure must prevent the network call")
	require.Contains(t, sio.printed(), "password: please enter your password")
}

func TestLogin_InvalidEmail_NoNetworkCall(t *testing.T) {
	sio := &stubIO{
		texts:     []string{"e", "not-an-email"},
		passwords: []string{"pw"},
		yesNos:    []bool{false},
	}
	defer sio.install(t)()

	f := &fakeSession{}
	a := &App{session: f}

	require.NoError(t, a.Login(context.Background()))
	require.Nil(t, f.loginReq)
	require.Contains(t, sio.printed(), "identifier: please enter a valid email address")
}

func TestLogin_BadCredentials_SingleBanner(t *testing.T) {
	sio := &stubIO{
		texts:     []string{"u", "alice"},
		passwords: []string{"wrong"},
		yesNos:    []bool{false},
	}
	defer sio.install(t)()

	f := &fakeSession{loginErr: common.ErrUnauthorized}
	a := &App{session: f}

	require.NoError(t, a.Login(context.Background()))
	require.Contains(t, sio.printed(), "Invalid credentials.")
}

func registerInputs() *stubIO {
	return &stubIO{
		texts:     []string{"alice_01", "alice@example.org", "Alice", "Smith", "", ""},
		passwords: []string{"Abcdef1!", "Abcdef1!"},
		yesNos:    []bool{true},
	}
}

func TestRegister_Success_PendingVerification(t *testing.T) {
	sio := registerInputs()
	defer sio.install(t)()

	f := &fakeSession{registerRet: &models.RegistrationResult{Status: "pending_verification"}}
	a := &App{session: f}

	require.NoError(t, a.Register(context.Background()))

	require.NotNil(t, f.registerReq)
	require.Equal(t, "alice_01", f.registerReq.Username)
	require.True(t, f.registerReq.AcceptTerms)
	require.Contains(t, sio.printed(), "Registration successful!")
	require.Contains(t, sio.printed(), "verified before you can log in")
}

func TestRegister_PasswordMismatch_NoNetworkCall(t *testing.T) {
	sio := registerInputs()
	sio.passwords = []string{"Abcdef1!", "Different1!"}
	defer sio.install(t)()

	f := &fakeSession{}
	a := &App{session: f}

	require.NoError(t, a.Register(context.Background()))

	require.Nil(t, f.registerReq, "validation failure must prevent the network call")
	require.Contains(t, sio.printed(), "confirmPassword: passwords do not match")
}

func TestRegister_TermsNotAccepted(t *testing.T) {
	sio := registerInputs()
	sio.yesNos = []bool{false}
	defer sio.install(t)()

	f := &fakeSession{}
	a := &App{session: f}

	require.NoError(t, a.Register(context.Background()))
	require.Nil(t, f.registerReq)
	require.Contains(t, sio.printed(), "acceptTerms: you must accept the terms of service")
}

func TestLogout_Prints(t *testing.T) {
	sio := &stubIO{}
	defer sio.install(t)()

	f := &fakeSession{user: &models.User{Username: "alice"}}
	a := &App{session: f}

	require.NoError(t, a.Logout(context.Background()))
	require.Equal(t, 1, f.logoutCalls)
	require.Contains(t, sio.printed(), "Logged out.")
}
