package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/fundraise/internal/common"
	"github.com/dmitrijs2005/fundraise/internal/logging"
	"github.com/dmitrijs2005/fundraise/internal/recordio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	errs     map[string]error
}

func (f *fakeExec) call(name string) error {
	f.calls = append(f.calls, name)
	return f.errs[name]
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.call("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	err := f.call("login")
	if err == nil {
		f.loggedIn = true
	}
	return err
}
func (f *fakeExec) CreateProject(ctx context.Context) error  { return f.call("create") }
func (f *fakeExec) ViewProjects(ctx context.Context) error   { return f.call("view") }
func (f *fakeExec) EditProject(ctx context.Context) error    { return f.call("edit") }
func (f *fakeExec) DeleteProject(ctx context.Context) error  { return f.call("delete") }
func (f *fakeExec) SearchProjects(ctx context.Context) error { return f.call("search") }

func runScript(t *testing.T, f *fakeExec, lines ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := runMenu(context.Background(), f, rdr(strings.Join(lines, "\n")+"\n"), &out, logging.NewNop())
	return out.String(), err
}

func TestRunMenu_DispatchAndGating(t *testing.T) {
	f := &fakeExec{}

	out, err := runScript(t, f, "3", "1", "2", "1", "3", "4", "5", "6", "7", " 8 ")
	require.NoError(t, err)

	assert.Equal(t, []string{"register", "login", "create", "view", "edit", "delete", "search"}, f.calls)
	assert.Contains(t, out, "Please login first.")
	assert.Contains(t, out, "Please logout first.")
	assert.Contains(t, out, "Thank you for using Fundraise!")
	assert.Contains(t, out, "Welcome to Fundraise!")
}

func TestRunMenu_InvalidChoices(t *testing.T) {
	for _, choice := range []string{"0", "9", "12", "abc", "", "-1"} {
		t.Run(fmt.Sprintf("%q", choice), func(t *testing.T) {
			f := &fakeExec{}
			out, err := runScript(t, f, choice, "8")
			require.NoError(t, err)
			assert.Contains(t, out, "Invalid choice.")
			assert.Empty(t, f.calls)
		})
	}
}

func TestRunMenu_MenuDependsOnSession(t *testing.T) {
	out, err := runScript(t, &fakeExec{}, "8")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Register")
	assert.Contains(t, out, "2. Login")
	assert.NotContains(t, out, "3. Create project")
	assert.Contains(t, out, "8. Quit")

	out, err = runScript(t, &fakeExec{loggedIn: true}, "8")
	require.NoError(t, err)
	assert.NotContains(t, out, "1. Register")
	for _, item := range []string{"3. Create project", "4. View projects", "5. Edit project", "6. Delete project", "7. Search project", "8. Quit"} {
		assert.Contains(t, out, item)
	}
}

func TestRunMenu_EOFEndsLoop(t *testing.T) {
	f := &fakeExec{}
	var out bytes.Buffer
	err := runMenu(context.Background(), f, rdr("1\n"), &out, logging.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"register"}, f.calls)
	assert.NotContains(t, out.String(), "Thank you")
}

func TestRunMenu_OperationalErrorContinues(t *testing.T) {
	f := &fakeExec{loggedIn: true, errs: map[string]error{"view": errors.New("disk unplugged")}}

	out, err := runScript(t, f, "4", "7", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Error: disk unplugged")
	assert.Equal(t, []string{"view", "search"}, f.calls)
}

func TestRunMenu_NotAuthenticatedFromHandler(t *testing.T) {
	f := &fakeExec{loggedIn: true, errs: map[string]error{"create": common.ErrNotAuthenticated}}

	out, err := runScript(t, f, "3", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Please login first.")
}

func TestRunMenu_MalformedDataIsFatal(t *testing.T) {
	bad := fmt.Errorf("load users: %w", recordio.ErrMalformedRecord)
	f := &fakeExec{errs: map[string]error{"login": bad}}

	_, err := runScript(t, f, "2", "1", "8")
	require.ErrorIs(t, err, recordio.ErrMalformedRecord)
	assert.Equal(t, []string{"login"}, f.calls)
}

func TestRunMenu_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runMenu(ctx, &fakeExec{}, rdr("8\n"), &bytes.Buffer{}, logging.NewNop())
	require.ErrorIs(t, err, context.Canceled)
}
