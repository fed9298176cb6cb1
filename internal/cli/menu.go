package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/fundraise/internal/common"
	"github.com/dmitrijs2005/fundraise/internal/logging"
	"github.com/dmitrijs2005/fundraise/internal/recordio"
)

// execIface is the command surface the menu dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	CreateProject(ctx context.Context) error
	ViewProjects(ctx context.Context) error
	EditProject(ctx context.Context) error
	DeleteProject(ctx context.Context) error
	SearchProjects(ctx context.Context) error
}

type menuItem struct {
	key    string
	label  string
	authed bool
	run    func(execIface, context.Context) error
}

var menuItems = []menuItem{
	{"1", "Register", false, execIface.Register},
	{"2", "Login", false, execIface.Login},
	{"3", "Create project", true, execIface.CreateProject},
	{"4", "View projects", true, execIface.ViewProjects},
	{"5", "Edit project", true, execIface.EditProject},
	{"6", "Delete project", true, execIface.DeleteProject},
	{"7", "Search project", true, execIface.SearchProjects},
}

const quitKey = "8"

func printMenu(w io.Writer, th *theme, loggedIn bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, th.heading.Render("Welcome to "+common.AppName+"!"))
	for _, it := range menuItems {
		if it.authed != loggedIn {
			continue
		}
		line := it.key + ". " + it.label
		if it.authed {
			line = th.menuAuthed.Render(line)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, quitKey+". Quit")
}

// runMenu draws the menu, reads a choice and dispatches it until the user
// picks Quit or input ends.
//
// Handlers print their own user-facing results. Any error they return is an
// operational failure: it is shown as "Error: ..." and logged, and the menu
// continues. Malformed data files are the exception and end the loop with
// the error.
func runMenu(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer, log logging.Logger) error {
	th := newTheme(w)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		printMenu(w, th, a.isLoggedIn())
		choice, err := GetLine(reader, "Enter your choice: ", w)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(w)
			return nil
		}
		if err != nil {
			return err
		}

		if choice == quitKey {
			fmt.Fprintln(w, th.success.Render("Thank you for using "+common.AppName+"!"))
			return nil
		}

		item, ok := lookup(choice)
		switch {
		case !ok:
			fmt.Fprintln(w, th.failure.Render("Invalid choice."))
			continue
		case item.authed && !a.isLoggedIn():
			fmt.Fprintln(w, th.failure.Render("Please login first."))
			continue
		case !item.authed && a.isLoggedIn():
			fmt.Fprintln(w, th.failure.Render("Please logout first."))
			continue
		}

		err = item.run(a, ctx)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			fmt.Fprintln(w)
			return nil
		case errors.Is(err, recordio.ErrMalformedRecord):
			log.Error(ctx, "data file is corrupt", "error", err)
			return err
		case errors.Is(err, common.ErrNotAuthenticated):
			fmt.Fprintln(w, th.failure.Render("Please login first."))
		default:
			log.Error(ctx, "operation failed", "choice", choice, "error", err)
			fmt.Fprintln(w, th.failure.Render("Error: "+err.Error()))
		}
	}
}

func lookup(choice string) (menuItem, bool) {
	for _, it := range menuItems {
		if it.key == choice {
			return it, true
		}
	}
	return menuItem{}, false
}
