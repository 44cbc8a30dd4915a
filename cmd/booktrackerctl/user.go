package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"booktracker-be/internal/entities"
	"booktracker-be/internal/models"
	"booktracker-be/internal/repository"
	"booktracker-be/internal/service"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newUserCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(
		newUserCreateCmd(opts),
		newUserRoleCmd(opts),
	)
	return cmd
}

// readPassword prompts with masking on a terminal, otherwise reads one line from in
func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(bytePassword)), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func newUserCreateCmd(opts *rootOptions) *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user, reading the password from the terminal or stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd, fmt.Sprintf("Password for %s: ", req.Email))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			if len(password) < 6 {
				return errors.New("password must be at least 6 characters")
			}
			if len(password) > service.MaxPasswordBytes {
				return fmt.Errorf("password must be at most %d bytes", service.MaxPasswordBytes)
			}
			req.Password = password

			user, err := opts.app.auth.Register(cmd.Context(), &req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Username, "username", "", "display name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("username")
	return cmd
}

func newUserRoleCmd(opts *rootOptions) *cobra.Command {
	var email, role string

	cmd := &cobra.Command{
		Use:   "role",
		Short: "Set the role tag of a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if role != entities.RoleUser && role != entities.RoleAdmin {
				return fmt.Errorf("unknown role %q", role)
			}

			err := opts.app.users.UpdateRole(cmd.Context(), strings.ToLower(strings.TrimSpace(email)), role)
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no user with email %s", email)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", email, role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&role, "role", entities.RoleAdmin, "user or admin")
	cmd.MarkFlagRequired("email")
	return cmd
}
