package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"remediation-portal/internal/auth"
	"remediation-portal/internal/domain"
	"remediation-portal/internal/validator"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage session tokens",
	}

	var (
		userID string
		role   string
		ttl    time.Duration
	)
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Issue a session token for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validator.ValidateID(userID); err != nil {
				return fmt.Errorf("user: %w", err)
			}
			if !domain.IsValidRole(role) {
				return fmt.Errorf("unknown role %q", role)
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.JWTTokenTTL
			}

			token, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, ttl).
				Issue(domain.Principal{UserID: userID, Role: domain.Role(role)})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issue.Flags().StringVar(&userID, "user", "", "user id (required)")
	issue.Flags().StringVar(&role, "role", string(domain.RoleUser), "user, reviewer or admin")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to JWT_TOKEN_TTL)")
	_ = issue.MarkFlagRequired("user")

	cmd.AddCommand(issue)
	return cmd
}
