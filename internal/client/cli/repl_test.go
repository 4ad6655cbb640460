package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, fmt.Sprintf("%s %v", name, args))
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(_ context.Context, args []string) error {
	return f.record("register", args)
}
func (f *fakeExec) Login(_ context.Context, args []string) error {
	f.loggedIn = true
	return f.record("login", args)
}
func (f *fakeExec) Logout(_ context.Context, args []string) error {
	f.loggedIn = false
	return f.record("logout", args)
}
func (f *fakeExec) List(_ context.Context, args []string) error   { return f.record("list", args) }
func (f *fakeExec) Get(_ context.Context, args []string) error    { return f.record("get", args) }
func (f *fakeExec) Search(_ context.Context, args []string) error { return f.record("search", args) }
func (f *fakeExec) Books(_ context.Context, args []string) error  { return f.record("books", args) }
func (f *fakeExec) Update(_ context.Context, args []string) error { return f.record("update", args) }
func (f *fakeExec) Delete(_ context.Context, args []string) error { return f.record("delete", args) }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	out := captureOutput(t)

	in := readerFromLines(
		"help",
		"login",
		"help",
		"",
		"l",
		"get 42",
		"search ada lovelace",
		"books",
		"update 3",
		"delete 3",
		"logout",
		"register",
		"foobar",
		"exit",
		"list",
	)
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, in)

	assert.Equal(t, []string{
		"login []",
		"list []",
		"get [42]",
		"search [ada lovelace]",
		"books []",
		"update [3]",
		"delete [3]",
		"logout []",
		"register []",
	}, exec.calls)
	assert.Contains(t, *out, "Unknown command:foobar")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, readerFromLines("list"))

	assert.Equal(t, []string{"list []"}, exec.calls)
}
