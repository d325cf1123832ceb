package client

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Tristano1/friend-library-system/internal/adapter"
	"github.com/Tristano1/friend-library-system/internal/app"
	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/internal/mock"
	"github.com/Tristano1/friend-library-system/models"
)

type testApp struct {
	app     *App
	adapter *mock.MockLibraryAdapter
	tokens  *TokenStore
	out     *bytes.Buffer
	in      *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	ctrl := gomock.NewController(t)
	libraryAdapter := mock.NewMockLibraryAdapter(ctrl)
	tokens := NewTokenStore(filepath.Join(t.TempDir(), "library", "token"))

	a := NewApp(libraryAdapter, tokens, logger.Nop())
	out := &bytes.Buffer{}
	in := &bytes.Buffer{}
	a.SetIO(in, out, &bytes.Buffer{})

	return &testApp{app: a, adapter: libraryAdapter, tokens: tokens, out: out, in: in}
}

func (ta *testApp) run(args ...string) error {
	return ta.app.Execute(context.Background(), args)
}

var alice = models.User{
	GUID:                  "8f4c3a52-4c1b-4bb5-9a5e-7d8d9cc1f001",
	Email:                 "alice@example.com",
	DisplayName:           "Alice",
	DefaultLoanLengthDays: 21,
}

func TestRegister_WithPasswordFlag(t *testing.T) {
	ta := newTestApp(t)

	ta.adapter.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{Email: "alice@example.com", Password: "s3cret", DisplayName: "Alice"}).
		Return(alice, nil)
	ta.adapter.EXPECT().Token().Return("tok-1")

	err := ta.run("register", "--email", "alice@example.com", "--name", "Alice", "--password", "s3cret")
	require.NoError(t, err)

	assert.Contains(t, ta.out.String(), "Registered Alice <alice@example.com>")
	assert.Contains(t, ta.out.String(), "21 days")

	token, err := ta.tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestRegister_ReadsPasswordFromInput(t *testing.T) {
	ta := newTestApp(t)
	ta.in.WriteString("from-stdin\n")

	ta.adapter.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.RegisterRequest) (models.User, error) {
			assert.Equal(t, "from-stdin", req.Password)
			return alice, nil
		})
	ta.adapter.EXPECT().Token().Return("tok-1")

	require.NoError(t, ta.run("register", "--email", "alice@example.com", "--name", "Alice"))
}

func TestRegister_EmptyPasswordInput(t *testing.T) {
	ta := newTestApp(t)

	err := ta.run("register", "--email", "alice@example.com", "--name", "Alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")
}

func TestRegister_EmailTaken(t *testing.T) {
	ta := newTestApp(t)

	ta.adapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.User{}, adapter.ErrConflict)

	err := ta.run("register", "--email", "alice@example.com", "--name", "Alice", "--password", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrConflict)
	assert.Contains(t, err.Error(), app.MsgEmailTaken)

	_, err = ta.tokens.Load()
	assert.ErrorIs(t, err, ErrNoSavedToken)
}

func TestLogin(t *testing.T) {
	t.Run("saves the session token", func(t *testing.T) {
		ta := newTestApp(t)

		ta.adapter.EXPECT().
			Login(gomock.Any(), models.Credentials{Email: "alice@example.com", Password: "s3cret"}).
			Return(models.Session{Token: "tok-2", UserGUID: alice.GUID, ExpiresAt: time.Now().Add(time.Hour)}, nil)

		require.NoError(t, ta.run("login", "--email", "alice@example.com", "--password", "s3cret"))
		assert.Contains(t, ta.out.String(), "Logged in.")

		token, err := ta.tokens.Load()
		require.NoError(t, err)
		assert.Equal(t, "tok-2", token)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		ta := newTestApp(t)

		ta.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.Session{}, adapter.ErrUnauthorized)

		err := ta.run("login", "--email", "alice@example.com", "--password", "wrong")
		require.Error(t, err)
		assert.Equal(t, app.MsgInvalidCredentials, err.Error())
	})

	t.Run("server unreachable", func(t *testing.T) {
		ta := newTestApp(t)

		ta.adapter.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.Session{}, &url.Error{Op: "Post", URL: "http://localhost:1", Err: errors.New("connection refused")})

		err := ta.run("login", "--email", "alice@example.com", "--password", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), app.MsgServerUnavailable)
	})
}

func TestLogout(t *testing.T) {
	ta := newTestApp(t)
	require.NoError(t, ta.tokens.Save("tok-3"))

	ta.adapter.EXPECT().SetToken("tok-3")
	ta.adapter.EXPECT().SetToken("")

	require.NoError(t, ta.run("logout"))
	assert.Equal(t, app.MsgLoggedOut+"\n", ta.out.String())

	_, err := ta.tokens.Load()
	assert.ErrorIs(t, err, ErrNoSavedToken)
}

func TestWhoami(t *testing.T) {
	t.Run("uses the saved token", func(t *testing.T) {
		ta := newTestApp(t)
		require.NoError(t, ta.tokens.Save("tok-4"))

		gomock.InOrder(
			ta.adapter.EXPECT().SetToken("tok-4"),
			ta.adapter.EXPECT().Token().Return("tok-4"),
			ta.adapter.EXPECT().Me(gomock.Any()).Return(alice, nil),
		)

		require.NoError(t, ta.run("whoami"))
		assert.Contains(t, ta.out.String(), "Alice <alice@example.com>")
	})

	t.Run("not logged in", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().Token().Return("")

		err := ta.run("whoami")
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("rejected session", func(t *testing.T) {
		ta := newTestApp(t)
		require.NoError(t, ta.tokens.Save("stale"))

		ta.adapter.EXPECT().SetToken("stale")
		ta.adapter.EXPECT().Token().Return("stale")
		ta.adapter.EXPECT().Me(gomock.Any()).Return(models.User{}, adapter.ErrUnauthorized)

		err := ta.run("whoami")
		require.Error(t, err)
		assert.ErrorIs(t, err, adapter.ErrUnauthorized)
		assert.Contains(t, err.Error(), app.MsgSessionExpired)
	})
}

func TestLoanLengthSet(t *testing.T) {
	t.Run("updates the default", func(t *testing.T) {
		ta := newTestApp(t)
		updated := alice
		updated.DefaultLoanLengthDays = 30

		ta.adapter.EXPECT().Token().Return("tok")
		ta.adapter.EXPECT().SetDefaultLoanLength(gomock.Any(), 30).Return(updated, nil)

		require.NoError(t, ta.run("loan-length", "set", "30"))
		assert.Contains(t, ta.out.String(), "set to 30 days")
	})

	t.Run("rejects a non-number", func(t *testing.T) {
		ta := newTestApp(t)

		err := ta.run("loan-length", "set", "two weeks")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "whole number")
	})

	t.Run("server validation error", func(t *testing.T) {
		ta := newTestApp(t)

		ta.adapter.EXPECT().Token().Return("tok")
		ta.adapter.EXPECT().SetDefaultLoanLength(gomock.Any(), 0).Return(models.User{}, adapter.ErrBadRequest)

		err := ta.run("loan-length", "set", "0")
		assert.ErrorIs(t, err, adapter.ErrBadRequest)
	})
}

func TestItemsAdd(t *testing.T) {
	t.Run("follows the default", func(t *testing.T) {
		ta := newTestApp(t)

		ta.adapter.EXPECT().Token().Return("tok")
		ta.adapter.EXPECT().
			AddItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item models.NewItem) (models.Item, error) {
				assert.Equal(t, "Cordless Drill", item.Name)
				assert.Nil(t, item.LoanLengthDays)
				return models.Item{Name: item.Name, EffectiveLoanLengthDays: 21}, nil
			})

		require.NoError(t, ta.run("items", "add", "Cordless", "Drill"))
		assert.Contains(t, ta.out.String(), `Added "Cordless Drill", lent for 21 days.`)
	})

	t.Run("with an override", func(t *testing.T) {
		ta := newTestApp(t)

		ta.adapter.EXPECT().Token().Return("tok")
		ta.adapter.EXPECT().
			AddItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item models.NewItem) (models.Item, error) {
				require.NotNil(t, item.LoanLengthDays)
				assert.Equal(t, 5, *item.LoanLengthDays)
				return models.Item{Name: item.Name, LoanLengthDays: item.LoanLengthDays, EffectiveLoanLengthDays: 5}, nil
			})

		require.NoError(t, ta.run("items", "add", "Ladder", "--loan-days", "5"))
		assert.Contains(t, ta.out.String(), "lent for 5 days")
	})

	t.Run("not logged in", func(t *testing.T) {
		ta := newTestApp(t)
		ta.adapter.EXPECT().Token().Return("")

		assert.ErrorIs(t, ta.run("items", "add", "Drill"), ErrNotLoggedIn)
	})

	t.Run("name is required", func(t *testing.T) {
		ta := newTestApp(t)
		assert.Error(t, ta.run("items", "add"))
	})
}

func TestItemsList(t *testing.T) {
	t.Run("renders a table", func(t *testing.T) {
		ta := newTestApp(t)
		five := 5

		ta.adapter.EXPECT().Token().Return("tok")
		ta.adapter.EXPECT().ListItems(gomock.Any()).Return([]models.Item{
			{Name: "Drill", EffectiveLoanLengthDays: 21},
			{Name: "Ladder", LoanLengthDays: &five, EffectiveLoanLengthDays: 5},
		}, nil)

		require.NoError(t, ta.run("items", "list"))

		out := ta.out.String()
		assert.Contains(t, out, "NAME")
		assert.Contains(t, out, "LOAN DAYS")

		lines := strings.Split(out, "\n")
		var drill, ladder string
		for _, line := range lines {
			switch {
			case strings.Contains(line, "Drill"):
				drill = line
			case strings.Contains(line, "Ladder"):
				ladder = line
			}
		}
		assert.Contains(t, drill, "21")
		assert.Contains(t, drill, "default")
		assert.Contains(t, ladder, "5")
		assert.Contains(t, ladder, "item")
		assert.Less(t, strings.Index(out, "Drill"), strings.Index(out, "Ladder"))
	})

	t.Run("empty catalog", func(t *testing.T) {
		ta := newTestApp(t)

		ta.adapter.EXPECT().Token().Return("tok")
		ta.adapter.EXPECT().ListItems(gomock.Any()).Return([]models.Item{}, nil)

		require.NoError(t, ta.run("items", "list"))
		assert.Equal(t, app.MsgNoItems+"\n", ta.out.String())
	})
}

func TestVersionFlag(t *testing.T) {
	ta := newTestApp(t)
	ta.app.WithBuildInfo(models.NewAppBuildInfo("v0.3.1", "", "deadbeef"))

	require.NoError(t, ta.run("--version"))
	assert.Contains(t, ta.out.String(), "v0.3.1 (commit deadbeef, built N/A)")
}
