package cli

import (
	"context"

	"github.com/dmitrijs2005/shelfkeeper/internal/common"
)

// getPassword is a test seam for GetPassword.
var getPassword = GetPassword

func (a *App) Register(ctx context.Context, _ []string) error {
	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return a.fail("register", err)
	}
	email, err := GetSimpleText(a.reader, "Enter email (optional)", a.out)
	if err != nil {
		return a.fail("register", err)
	}
	password, err := getPassword(a.out)
	if err != nil {
		return a.fail("register", err)
	}
	defer common.WipeByteArray(password)

	u, err := a.client.Register(ctx, userName, email, password)
	if err != nil {
		return a.fail("register", err)
	}

	a.printf("Registered %s (id %d, role %s)\n", u.Username, u.ID, u.Role)
	return nil
}

func (a *App) Login(ctx context.Context, _ []string) error {
	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return a.fail("login", err)
	}
	password, err := getPassword(a.out)
	if err != nil {
		return a.fail("login", err)
	}
	defer common.WipeByteArray(password)

	if err := a.client.Login(ctx, userName, password); err != nil {
		return a.fail("login", err)
	}

	a.userName = userName
	a.printf("Login successful\n")
	return nil
}

func (a *App) Logout(_ context.Context, _ []string) error {
	a.client.Logout()
	a.userName = ""
	a.printf("Logged out\n")
	return nil
}
