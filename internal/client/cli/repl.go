package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Get(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Books(ctx context.Context, args []string) error
	Update(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit".
// Handlers report their own errors, so results are dropped here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("shelf%s> ", statusFn()))

		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, get, search, books, update, delete, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (l)ist, get, search, books, exit")
			}
		case "register":
			_ = a.Register(ctx, args)
		case "login":
			_ = a.Login(ctx, args)
		case "logout":
			_ = a.Logout(ctx, args)
		case "l", "list":
			_ = a.List(ctx, args)
		case "get":
			_ = a.Get(ctx, args)
		case "search":
			_ = a.Search(ctx, args)
		case "books":
			_ = a.Books(ctx, args)
		case "update":
			_ = a.Update(ctx, args)
		case "delete":
			_ = a.Delete(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
