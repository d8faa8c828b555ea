package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	a.mu.Lock()
	email := a.email
	a.mu.Unlock()

	if !a.isSignedIn() || email == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", email)
}

// Root greets the user, offers a sign-in and runs the REPL on the app's
// input until exit or EOF.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the landkeeper console (type 'help' for commands)")

	if err := a.SignIn(ctx, nil); err != nil {
		printlnFn("Error:", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
