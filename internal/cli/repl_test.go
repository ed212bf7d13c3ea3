package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeExec records which commands the REPL dispatched.
type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool                     { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error       { return f.record("register") }
func (f *fakeExec) Login(context.Context) error          { return f.record("login") }
func (f *fakeExec) Logout(context.Context) error         { return f.record("logout") }
func (f *fakeExec) Whoami(context.Context) error         { return f.record("whoami") }
func (f *fakeExec) EditProfile(context.Context) error    { return f.record("profile") }
func (f *fakeExec) ChangePassword(context.Context) error { return f.record("passwd") }
func (f *fakeExec) ForgotPassword(context.Context) error { return f.record("forgot") }
func (f *fakeExec) ResetPassword(context.Context) error  { return f.record("reset") }
func (f *fakeExec) VerifyEmail(context.Context) error    { return f.record("verify") }

func runWithInput(t *testing.T, f *fakeExec, input string) string {
	t.Helper()
	sio := &stubIO{}
	defer sio.install(t)()

	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), f, func() string { return "guest" }, scanner)
	return sio.printed()
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	f := &fakeExec{}
	runWithInput(t, f, "login\nwhoami\nprofile\npasswd\nlogout\nexit\n")

	require.Equal(t, []string{"login", "whoami", "profile", "passwd", "logout"}, f.calls)
}

func TestRunREPL_ExitPrintsBye(t *testing.T) {
	out := runWithInput(t, &fakeExec{}, "exit\n")
	require.Contains(t, out, "Bye!")
}

func TestRunREPL_QuitAlias(t *testing.T) {
	out := runWithInput(t, &fakeExec{}, "quit\n")
	require.Contains(t, out, "Bye!")
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	f := &fakeExec{}
	out := runWithInput(t, f, "frobnicate\nexit\n")

	require.Contains(t, out, "Unknown command:")
	require.Empty(t, f.calls)
}

func TestRunREPL_BlankLinesIgnored(t *testing.T) {
	f := &fakeExec{}
	runWithInput(t, f, "\n   \nlogin\nexit\n")

	require.Equal(t, []string{"login"}, f.calls)
}

func TestRunREPL_EOFStopsLoop(t *testing.T) {
	f := &fakeExec{}
	runWithInput(t, f, "login\n") // no exit, input just ends

	require.Equal(t, []string{"login"}, f.calls)
}

func TestRunREPL_HelpDependsOnAuthState(t *testing.T) {
	out := runWithInput(t, &fakeExec{loggedIn: false}, "help\nexit\n")
	require.Contains(t, out, "register, login")

	out = runWithInput(t, &fakeExec{loggedIn: true}, "help\nexit\n")
	require.Contains(t, out, "whoami, profile")
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	f := &fakeExec{}
	sio := &stubIO{}
	defer sio.install(t)()

	scanner := bufio.NewScanner(strings.NewReader("exit\n"))
	runREPL(context.Background(), f, func() string { return "alice" }, scanner)

	require.Contains(t, sio.printed(), "uh alice> ")
}
