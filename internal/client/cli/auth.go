package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/landkeeper/internal/client/client"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// SignIn prompts for the admin email (defaulting to the configured one)
// and password, opens a session and starts the notice watcher.
func (a *App) SignIn(ctx context.Context, args []string) error {
	if a.isSignedIn() {
		return errors.New("already signed in; signout first")
	}

	email := a.config.Email
	if len(args) > 0 {
		email = args[0]
	}
	if email == "" {
		var err error
		email, err = getSimpleText(a.reader, "Enter email", a.out)
		if err != nil {
			return err
		}
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	cctx, cancel := a.call(ctx)
	defer cancel()

	resp, err := a.client.SignIn(cctx, email, string(password))
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return errors.New("wrong email or password")
		}
		return err
	}

	a.mu.Lock()
	a.email = email
	a.mu.Unlock()

	fmt.Fprintf(a.out, "Signed in until %s\n", resp.ExpiresAt.Local().Format("Jan 2 15:04"))

	if a.config.Watch {
		a.startWatching(ctx)
	}
	return nil
}

// SignOut ends the session on the server and stops the notice watcher.
func (a *App) SignOut(ctx context.Context, _ []string) error {
	a.stopWatching()

	cctx, cancel := a.call(ctx)
	defer cancel()

	err := a.client.SignOut(cctx)

	a.mu.Lock()
	a.email = ""
	a.mu.Unlock()

	if err != nil && !errors.Is(err, client.ErrSessionExpired) {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}
