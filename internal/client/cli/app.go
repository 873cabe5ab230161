package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/econdash/internal/client/api"
	"github.com/dmitrijs2005/econdash/internal/client/bookmarks"
	"github.com/dmitrijs2005/econdash/internal/client/config"
	"github.com/dmitrijs2005/econdash/internal/client/credentials"
	"github.com/dmitrijs2005/econdash/internal/client/dashboard"
	"github.com/dmitrijs2005/econdash/internal/client/gateway"
	"github.com/dmitrijs2005/econdash/internal/client/session"
	"github.com/dmitrijs2005/econdash/internal/client/settings"
	"github.com/dmitrijs2005/econdash/internal/client/storage"
	"github.com/dmitrijs2005/econdash/internal/cryptox"
	"github.com/dmitrijs2005/econdash/internal/logging"
)

// App owns every store and acts as the top-level coordinator: it is the
// subscriber that turns the gateway's session-expired event into
// "navigation" back to the login prompt.
type App struct {
	config   *config.Config
	log      logging.Logger
	creds    credentials.Store
	session  *session.Store
	dash     *dashboard.Store
	books    *bookmarks.Coordinator
	settings *settings.Store
	reader   *bufio.Reader
	out      io.Writer

	mu      sync.Mutex
	notices []string
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	key, err := cryptox.LoadOrCreateKey(cfg.DatabasePath + ".key")
	if err != nil {
		return nil, err
	}

	creds := credentials.NewSQLiteStore(db, key)
	gw := gateway.New(cfg.APIEndpointURL, creds, log, gateway.WithTimeout(cfg.RequestTimeout))
	apiClient := api.NewHTTPClient(gw)

	app := &App{
		config:   cfg,
		log:      log,
		creds:    creds,
		session:  session.New(apiClient, creds, log),
		dash:     dashboard.New(apiClient, log),
		books:    bookmarks.New(apiClient, log),
		settings: settings.NewStore(db),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	// Session expiry is global: reset the session and put the user back at
	// the login prompt, regardless of which call observed the 401.
	gw.OnSessionExpired(func() {
		app.session.Reset()
		app.notify("Session expired, please log in again.")
	})

	// Self-healing for deleted lists: the sidebar equivalent here is a
	// notice telling the user the stale entry is gone.
	app.books.OnListsRefresh(func() {
		app.notify("The selected bookmark list was deleted on the server; selection cleared.")
	})

	return app, nil
}

func (a *App) notify(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.notices = append(a.notices, msg)
}

func (a *App) drainNotices() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.notices
	a.notices = nil
	return out
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated
}

// Run restores the session once (the mount-time check), starts the
// background refresh watcher, and enters the REPL.
func (a *App) Run(ctx context.Context) {
	if err := a.session.CheckSession(ctx); err != nil {
		a.log.Warn(ctx, "stored session invalid", "error", err)
	}

	go a.StartRefreshWatcher(ctx)

	a.Root(ctx)
}

// StartRefreshWatcher periodically refreshes the dashboard resources while
// a session is active, at the interval from the user's preferences.
func (a *App) StartRefreshWatcher(ctx context.Context) {
	prefs, err := a.settings.Load(ctx)
	if err != nil {
		a.log.Warn(ctx, "loading settings, using defaults", "error", err)
	}

	ticker := time.NewTicker(prefs.RefreshInterval.Duration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.isLoggedIn() {
				continue
			}
			refreshCtx, cancel := context.WithTimeout(context.Background(), a.config.RequestTimeout)
			if err := a.dash.FetchAll(refreshCtx); err != nil {
				a.log.Debug(ctx, "background refresh incomplete", "error", err)
			}
			cancel()

		case <-ctx.Done():
			return
		}
	}
}
