package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tristano1/friend-library-system/internal/adapter"
	"github.com/Tristano1/friend-library-system/internal/app"
	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/models"
)

var _ Client = (*App)(nil)

// App is the friend-library command line client.
type App struct {
	adapter adapter.LibraryAdapter
	tokens  *TokenStore

	root *cobra.Command

	logger *logger.Logger
}

func NewApp(libraryAdapter adapter.LibraryAdapter, tokens *TokenStore, logger *logger.Logger) *App {
	a := &App{
		adapter: libraryAdapter,
		tokens:  tokens,
		logger:  logger,
	}
	a.root = a.rootCmd()
	return a
}

// WithBuildInfo enables the --version flag.
func (a *App) WithBuildInfo(info models.AppBuildInfo) *App {
	a.root.Version = info.String()
	return a
}

// SetIO redirects the command tree's input and output streams.
func (a *App) SetIO(in io.Reader, out, errOut io.Writer) {
	a.root.SetIn(in)
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

func (a *App) Run() error {
	return a.Execute(context.Background(), os.Args[1:])
}

func (a *App) Execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func (a *App) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "library",
		Short:         "Friend lending library client",
		Long:          "Command line client for the friend lending library: register, log in and keep track of the things you lend out.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.tokens.Load()
			if errors.Is(err, ErrNoSavedToken) {
				return nil
			}
			if err != nil {
				return err
			}
			a.adapter.SetToken(token)
			return nil
		},
	}

	root.AddCommand(
		a.registerCmd(),
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.loanLengthCmd(),
		a.itemsCmd(),
	)

	return root
}

// requireSession fails fast when no token is available.
func (a *App) requireSession() error {
	if a.adapter.Token() == "" {
		return ErrNotLoggedIn
	}
	return nil
}

// describe turns adapter errors into messages meant for a person at a
// terminal. The original error stays in the chain.
func describe(err error) error {
	var urlErr *url.Error
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%s: %w", app.MsgSessionExpired, err)
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%s: %w", app.MsgEmailTaken, err)
	case errors.As(err, &urlErr):
		return fmt.Errorf("%s: %w", app.MsgServerUnavailable, err)
	default:
		return err
	}
}
