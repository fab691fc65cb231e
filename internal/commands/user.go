package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/envelope-zero/expenses/pkg/ledger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newUserCommand(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(newUserAddCommand(load))

	return cmd
}

func newUserAddCommand(load loader) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new user",
		Long:  "Register a new user and create the default categories for them. The password is prompted for if not given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			confirmation := password
			if password == "" {
				r := &passwordReader{in: cmd.InOrStdin()}

				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				password, err = r.read()
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}

				fmt.Fprint(cmd.ErrOrStderr(), "\nConfirm password: ")
				confirmation, err = r.read()
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr())
			}

			l, db, err := openLedger(cfg)
			if err != nil {
				return err
			}
			defer closeDB(db)

			user, err := l.RegisterUser(cmd.Context(), ledger.UserFields{
				Email:        email,
				Password:     password,
				Confirmation: confirmation,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address of the user (required)")
	_ = cmd.MarkFlagRequired("email")
	cmd.Flags().StringVar(&password, "password", "", "password of the user, prompted for if empty")

	return cmd
}

// passwordReader reads passwords without echo from a terminal and
// line by line from anything else.
type passwordReader struct {
	in      io.Reader
	scanner *bufio.Scanner
}

func (r *passwordReader) read() (string, error) {
	if f, ok := r.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Fallback for non-terminal (e.g. tests, pipes)
	if r.scanner == nil {
		r.scanner = bufio.NewScanner(r.in)
	}
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
