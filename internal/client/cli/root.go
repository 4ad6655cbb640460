package cli

import "context"

// Root prints the banner and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	a.printf("Welcome to shelfkeeper CLI (type 'help' for commands)\n")
	runREPL(ctx, a, a.getStatus, a.reader)
}
