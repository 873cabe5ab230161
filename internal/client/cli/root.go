package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	st := a.session.Snapshot()
	if st.Authenticated && st.User != nil {
		return fmt.Sprintf("(%s)", st.User.Email)
	}
	return ""
}

// Root runs the REPL until the user exits or stdin closes.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to econdash CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		for _, n := range a.drainNotices() {
			fmt.Fprintln(a.out, n)
		}

		fmt.Fprintf(a.out, "econdash %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: dashboard, today, lists, select <id>, marks, settings, whoami, status, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, status, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI()
		case "status":
			a.Status(ctx)
		case "dashboard":
			a.Dashboard(ctx)
		case "today":
			a.Today(ctx)
		case "lists":
			a.Lists(ctx)
		case "select":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: select <list-id>")
				continue
			}
			a.SelectList(ctx, args[0])
		case "marks":
			a.Marks(ctx)
		case "settings":
			a.Settings(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
