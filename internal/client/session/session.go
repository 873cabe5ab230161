// Package session owns the login/register/logout/check-session lifecycle and
// the authenticated-user identity. The token itself lives only in the
// credential store; this package reads and writes it exclusively through
// that store.
//
// Login, Register and CheckSession are not guarded against re-entrant
// concurrent invocation; the last write wins. The UI triggers them only
// from discrete user gestures or a single mount-time check, so a guard
// would buy nothing.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/econdash/internal/client/api"
	"github.com/dmitrijs2005/econdash/internal/client/credentials"
	"github.com/dmitrijs2005/econdash/internal/client/gateway"
	"github.com/dmitrijs2005/econdash/internal/client/models"
	"github.com/dmitrijs2005/econdash/internal/logging"
)

// Distinguishable failure stages of Register.
var (
	ErrRegistration      = errors.New("registration failed")
	ErrPostRegisterLogin = errors.New("login after registration failed")
)

// State is what the UI renders. Authenticated implies a stored credential;
// User may lag briefly behind the token while the identity fetch resolves.
type State struct {
	User          *models.Identity
	Authenticated bool
	Loading       bool
	LastErr       error
}

// Store is the per-process session. One instance exists for the whole
// client lifetime; it is created once and never torn down.
type Store struct {
	api   api.Client
	creds credentials.Store
	log   logging.Logger

	mu    sync.Mutex
	state State
}

func New(apiClient api.Client, creds credentials.Store, log logging.Logger) *Store {
	return &Store{api: apiClient, creds: creds, log: log}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Login authenticates, persists the token, then resolves the identity.
// A 2xx login response without an access token is an invalid response, not
// a silent no-op. If the follow-up identity fetch fails, the token is
// cleared and the session reset: no partial-authenticated state survives.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.setLoading()

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.fail(err)
		return err
	}
	if res.AccessToken == "" {
		err := &gateway.Error{Kind: gateway.ErrInvalidResponse, Message: "login response missing access token"}
		s.fail(err)
		return err
	}

	if err := s.creds.Set(ctx, res.AccessToken); err != nil {
		err = fmt.Errorf("persist credential: %w", err)
		s.fail(err)
		return err
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		// A session that cannot resolve its own identity is treated as
		// invalid: drop the token rather than keep a half-open session.
		if clearErr := s.creds.Clear(ctx); clearErr != nil {
			s.log.Error(ctx, "clear credential after failed identity fetch", "error", clearErr)
		}
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.state = State{User: user, Authenticated: true}
	s.mu.Unlock()
	s.log.Info(ctx, "logged in", "email", user.Email)
	return nil
}

// Register creates the account, then logs in with the same credentials.
// The two stages fail distinguishably: match ErrRegistration or
// ErrPostRegisterLogin with errors.Is.
func (s *Store) Register(ctx context.Context, email, password, fullName string) error {
	if _, err := s.api.Register(ctx, email, password, fullName); err != nil {
		s.fail(err)
		return fmt.Errorf("%w: %s", ErrRegistration, err)
	}
	if err := s.Login(ctx, email, password); err != nil {
		return fmt.Errorf("%w: %s", ErrPostRegisterLogin, err)
	}
	return nil
}

// Logout is best-effort against the server and unconditional locally: the
// credential is cleared and the state reset even when the server call fails.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn(ctx, "server-side logout failed", "error", err)
	}
	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	s.Reset()
	s.log.Info(ctx, "logged out")
	return nil
}

// CheckSession restores the session from the stored credential. With no
// credential it sets the logged-out state immediately, issuing no network
// call. Any identity-fetch failure, transient or not, invalidates the
// session: the credential is cleared and the state reset, no retry.
func (s *Store) CheckSession(ctx context.Context) error {
	token, err := s.creds.Get(ctx)
	if err != nil {
		s.fail(err)
		return err
	}
	if token == "" {
		s.Reset()
		return nil
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		if clearErr := s.creds.Clear(ctx); clearErr != nil {
			s.log.Error(ctx, "clear credential after failed session check", "error", clearErr)
		}
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.state = State{User: user, Authenticated: true}
	s.mu.Unlock()
	return nil
}

// Reset puts the store into the logged-out state. Safe to apply redundantly;
// the session-expiry coordinator calls it on every gateway 401 event.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
}

func (s *Store) setLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = true
	s.state.LastErr = nil
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{LastErr: err}
}
