package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	SignUp(ctx context.Context) error
	Guest(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Herbs(ctx context.Context) error
	Letters(ctx context.Context) error
	Jump(ctx context.Context, letter string) error
	Search(ctx context.Context, query string) error
	Home(ctx context.Context, args []string) error
}

// protected commands need a session; without one the user is sent to login.
var protected = map[string]bool{
	"herbs":   true,
	"letters": true,
	"jump":    true,
	"search":  true,
	"home":    true,
	"whoami":  true,
	"logout":  true,
}

// runREPL starts a simple read-eval-print loop for the herbalist CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                      - show available commands
//	  - login | signup | guest    - sign in, create an account, browse anonymously
//	  - exit | quit               - leave the program
//
//	Signed in:
//	  - herbs                     - the alphabetical herb index
//	  - letters                   - index letters
//	  - jump <letter>             - one section of the index
//	  - search <query>            - herbs by name, slug or family
//	  - home [category] [query]   - the home feed
//	  - whoami                    - current identity
//	  - logout                    - sign out
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("herbalist%s> ", prefixSpace(statusFn())))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		if protected[cmd] && !a.isLoggedIn(ctx) {
			printlnFn("Please sign in first.")
			_ = a.Login(ctx)
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: herbs, letters, jump <letter>, search <query>, home [category] [query], whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, guest, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.SignUp(ctx)

		case "guest":
			_ = a.Guest(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "herbs":
			_ = a.Herbs(ctx)

		case "letters":
			_ = a.Letters(ctx)

		case "jump":
			if len(args) == 0 {
				printlnFn("Usage: jump <letter>")
				continue
			}
			_ = a.Jump(ctx, args[0])

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <query>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "home":
			_ = a.Home(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
