package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/shelfkeeper/internal/api"
)

type fakeClient struct {
	loggedIn bool

	registered  []string
	loginUser   string
	loginPass   []byte
	loginErr    error
	users       []*api.User
	withItems   []*api.UserWithItems
	searchTerm  string
	updID       int64
	updUsername *string
	updEmail    *string
	deleted     bool
	err         error
}

func (f *fakeClient) Close() error     { return nil }
func (f *fakeClient) IsLoggedIn() bool { return f.loggedIn }
func (f *fakeClient) Register(_ context.Context, username, email string, password []byte) (*api.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.registered = []string{username, email, string(password)}
	return &api.User{ID: 1, Username: username, Email: email, Role: "member"}, nil
}
func (f *fakeClient) Login(_ context.Context, username string, password []byte) error {
	f.loginUser = username
	f.loginPass = password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loggedIn = true
	return nil
}
func (f *fakeClient) Logout() { f.loggedIn = false }
func (f *fakeClient) ListUsers(context.Context) ([]*api.User, error) {
	return f.users, f.err
}
func (f *fakeClient) GetUser(_ context.Context, id int64) (*api.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &api.User{ID: id, Username: "ada"}, nil
}
func (f *fakeClient) SearchUsers(_ context.Context, term string) ([]*api.User, error) {
	f.searchTerm = term
	return f.users, f.err
}
func (f *fakeClient) ListUsersWithItems(context.Context) ([]*api.UserWithItems, error) {
	return f.withItems, f.err
}
func (f *fakeClient) UpdateUser(_ context.Context, id int64, username, email *string) (*api.User, error) {
	f.updID, f.updUsername, f.updEmail = id, username, email
	if f.err != nil {
		return nil, f.err
	}
	return &api.User{ID: id, Username: "ada"}, nil
}
func (f *fakeClient) DeleteUser(context.Context, int64) (bool, error) {
	return f.deleted, f.err
}

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func newTestApp(c *fakeClient, in *bufio.Reader) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{client: c, reader: in, out: &out}, &out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}
