package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/econdash/internal/client/session"
	"github.com/dmitrijs2005/econdash/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Logged in.")
	return nil
}

// Register prompts for the new account's details, creates it, and logs in.
// The two failure stages are reported distinguishably.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.session.Register(ctx, email, string(password), fullName)
	switch {
	case errors.Is(err, session.ErrRegistration):
		fmt.Fprintf(a.out, "Registration failed: %s\n", err.Error())
		return err
	case errors.Is(err, session.ErrPostRegisterLogin):
		fmt.Fprintf(a.out, "Account created, but login failed: %s\n", err.Error())
		return err
	case err != nil:
		return err
	}

	fmt.Fprintln(a.out, "Account created, logged in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout error: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) WhoAmI() {
	st := a.session.Snapshot()
	if !st.Authenticated || st.User == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> (member since %s)\n",
		st.User.FullName, st.User.Email, st.User.CreatedAt.Format("2006-01-02"))
}

// Status reports the session state, the API endpoint, and a display-only
// peek at the token's expiry claim. The claim is parsed unverified and
// never used for validation; the credential stays opaque to the stores.
func (a *App) Status(ctx context.Context) {
	st := a.session.Snapshot()
	fmt.Fprintf(a.out, "API endpoint: %s\n", a.config.APIEndpointURL)
	if !st.Authenticated {
		fmt.Fprintln(a.out, "Session: not logged in")
		if st.LastErr != nil {
			fmt.Fprintf(a.out, "Last error: %s\n", st.LastErr.Error())
		}
		return
	}

	fmt.Fprintf(a.out, "Session: logged in as %s\n", st.User.Email)
	token, err := a.creds.Get(ctx)
	if err == nil && token != "" {
		if exp, ok := tokenExpiry(token); ok {
			fmt.Fprintf(a.out, "Token expires: %s\n", exp.Local().Format(time.RFC1123))
		}
	}
}

func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
