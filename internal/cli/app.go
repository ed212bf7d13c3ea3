package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/userhub/internal/api"
	"github.com/dmitrijs2005/userhub/internal/config"
	"github.com/dmitrijs2005/userhub/internal/logging"
	sessionrepo "github.com/dmitrijs2005/userhub/internal/repositories/session"
	"github.com/dmitrijs2005/userhub/internal/services"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	session services.SessionService
	api     api.Client
	log     logging.Logger
	reader  *bufio.Reader
	db      *sql.DB
}

// NewApp wires the local database, the API gateway, and the session
// service. The gateway sources the bearer credential from the artifact
// repository on every request and reports 401s back into the session
// service, which reacts by invalidating itself.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := sessionrepo.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	repo := sessionrepo.NewSQLiteRepository(db)

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, func(ctx context.Context) string {
		artifacts, err := repo.Load(ctx)
		if err != nil || artifacts == nil {
			return ""
		}
		return artifacts.AccessToken
	})

	sess := services.NewSessionService(apiClient, repo, log)
	apiClient.OnUnauthorized(sess.HandleUnauthorized)
	sess.OnInvalidate(func() {
		printlnFn("Your session is no longer valid. Please log in again.")
	})

	return &App{
		config:  cfg,
		session: sess,
		api:     apiClient,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		db:      db,
	}, nil
}

// Run restores any persisted session and starts the REPL. It blocks until
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if err := a.session.Restore(ctx); err != nil {
		a.log.Error(ctx, "session restore failed", "error", err)
	}
	if u := a.session.CurrentUser(); u != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", u.Username))
	}

	printlnFn("Welcome to userhub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.session.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}
