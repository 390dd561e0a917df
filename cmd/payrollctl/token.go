package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/user"
	"github.com/dashspecter/auditbuddy-automations-sub005/internal/pkg/jwt"
	"github.com/spf13/cobra"
)

type tokenOptions struct {
	userID    string
	companyID string
	role      string
	secret    string
	expiresIn string
}

func newTokenCmd() *cobra.Command {
	opts := &tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for calling the payroll API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.secret == "" {
				opts.secret = os.Getenv("JWT_SECRET_KEY")
			}
			return runToken(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.userID, "user", "", "User id claim")
	flags.StringVar(&opts.companyID, "company", "", "Company id claim")
	flags.StringVar(&opts.role, "role", string(user.RoleOwner), "Role claim: owner, manager, employee")
	flags.StringVar(&opts.secret, "secret", "", "Signing secret (defaults to $JWT_SECRET_KEY)")
	flags.StringVar(&opts.expiresIn, "expires-in", "1h", "Token lifetime")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func runToken(stdout io.Writer, opts *tokenOptions) error {
	if opts.secret == "" {
		return fmt.Errorf("signing secret is required")
	}
	role, ok := user.ParseRole(opts.role)
	if !ok {
		return fmt.Errorf("%w: %s", user.ErrUnknownRole, opts.role)
	}

	service, err := jwt.NewJWTService(opts.secret, opts.expiresIn)
	if err != nil {
		return err
	}

	token, expiresAt, err := service.GenerateAccessToken(opts.userID, opts.companyID, role)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, token)
	fmt.Fprintf(stdout, "expires_at: %s\n", time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
	return nil
}
