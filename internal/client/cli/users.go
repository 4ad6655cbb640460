package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/shelfkeeper/internal/api"
)

var errLoginRequired = errors.New("login required")

func (a *App) printUsers(users []*api.User) {
	if len(users) == 0 {
		a.printf("No users\n")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.Role)
	}
	_ = tw.Flush()
}

func (a *App) List(ctx context.Context, _ []string) error {
	users, err := a.client.ListUsers(ctx)
	if err != nil {
		return a.fail("list", err)
	}
	a.printUsers(users)
	return nil
}

func (a *App) Get(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return a.fail("get", err)
	}
	u, err := a.client.GetUser(ctx, id)
	if err != nil {
		return a.fail("get", err)
	}
	a.printUsers([]*api.User{u})
	return nil
}

// Search treats the rest of the line as the term; no term lists everyone.
func (a *App) Search(ctx context.Context, args []string) error {
	users, err := a.client.SearchUsers(ctx, strings.Join(args, " "))
	if err != nil {
		return a.fail("search", err)
	}
	a.printUsers(users)
	return nil
}

func (a *App) Books(ctx context.Context, _ []string) error {
	users, err := a.client.ListUsersWithItems(ctx)
	if err != nil {
		return a.fail("books", err)
	}
	if len(users) == 0 {
		a.printf("No users\n")
		return nil
	}
	for _, u := range users {
		a.printf("%s (id %d)\n", u.Username, u.ID)
		if len(u.Items) == 0 {
			a.printf("  -\n")
		}
		for _, it := range u.Items {
			a.printf("  [%d] %s by %s\n", it.ID, it.Title, it.Author)
		}
	}
	return nil
}

// Update prompts for the new username and email; blank answers keep the
// current value.
func (a *App) Update(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return a.fail("update", errLoginRequired)
	}
	id, err := parseID(args)
	if err != nil {
		return a.fail("update", err)
	}

	userName, err := GetSimpleText(a.reader, "New user name (blank to keep)", a.out)
	if err != nil {
		return a.fail("update", err)
	}
	email, err := GetSimpleText(a.reader, "New email (blank to keep)", a.out)
	if err != nil {
		return a.fail("update", err)
	}

	u, err := a.client.UpdateUser(ctx, id, optional(userName), optional(email))
	if err != nil {
		return a.fail("update", err)
	}
	a.printUsers([]*api.User{u})
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return a.fail("delete", errLoginRequired)
	}
	id, err := parseID(args)
	if err != nil {
		return a.fail("delete", err)
	}

	ok, err := a.client.DeleteUser(ctx, id)
	if err != nil {
		return a.fail("delete", err)
	}
	if !ok {
		a.printf("No user with id %d\n", id)
		return nil
	}
	a.printf("Deleted user %d\n", id)
	return nil
}
