package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tristano1/friend-library-system/internal/adapter"
	"github.com/Tristano1/friend-library-system/internal/app"
	"github.com/Tristano1/friend-library-system/models"
)

func (a *App) registerCmd() *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Password == "" {
				password, err := readPassword(cmd)
				if err != nil {
					return err
				}
				req.Password = password
			}

			user, err := a.adapter.Register(cmd.Context(), req)
			if err != nil {
				return describe(err)
			}
			if err = a.tokens.Save(a.adapter.Token()); err != nil {
				return err
			}

			a.logger.Debug().Str("guid", user.GUID).Msg("registered")
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s <%s>. Default loan length: %d days.\n",
				user.DisplayName, user.Email, user.DefaultLoanLengthDays)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "email address used to log in")
	cmd.Flags().StringVar(&req.DisplayName, "name", "", "display name shown to friends")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (a *App) loginCmd() *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if creds.Password == "" {
				password, err := readPassword(cmd)
				if err != nil {
					return err
				}
				creds.Password = password
			}

			session, err := a.adapter.Login(cmd.Context(), creds)
			if errors.Is(err, adapter.ErrUnauthorized) {
				return errors.New(app.MsgInvalidCredentials)
			}
			if err != nil {
				return describe(err)
			}
			if err = a.tokens.Save(session.Token); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in. Session valid until %s.\n", session.ExpiresAt.Local().Format("2006-01-02 15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "email address")
	cmd.Flags().StringVar(&creds.Password, "password", "", "password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the locally stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tokens.Clear(); err != nil {
				return err
			}
			a.adapter.SetToken("")

			fmt.Fprintln(cmd.OutOrStdout(), app.MsgLoggedOut)
			return nil
		},
	}
}

func (a *App) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}

			user, err := a.adapter.Me(cmd.Context())
			if err != nil {
				return describe(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\nDefault loan length: %d days\n",
				user.DisplayName, user.Email, user.DefaultLoanLengthDays)
			return nil
		},
	}
}

// readPassword reads one line from the command's input.
func readPassword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading password: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is required")
	}
	return password, nil
}
