package main

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/lucsky/cuid"
	"github.com/spf13/cobra"

	"remediation-portal/internal/domain"
	"remediation-portal/internal/infrastructure/database"
	"remediation-portal/internal/repository"
	"remediation-portal/internal/validator"
)

type userOptions struct {
	email string
	name  string
	role  string
}

// validate normalizes the options in place.
func (o *userOptions) validate() error {
	o.email = validator.NormalizeEmail(o.email)
	o.name = validator.NormalizeText(o.name, false)
	o.role = strings.ToLower(strings.TrimSpace(o.role))

	return validation.Errors{
		"email": validation.Validate(o.email, validator.EmailRules()...),
		"name":  validation.Validate(o.name, validation.Required.Error("Name is required")),
		"role": validation.Validate(o.role, validation.By(func(interface{}) error {
			if !domain.IsValidRole(o.role) {
				return fmt.Errorf("role must be one of: %s, %s, %s", domain.RoleUser, domain.RoleReviewer, domain.RoleAdmin)
			}
			return nil
		})),
	}.Filter()
}

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	var opts userOptions
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user and print its id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := database.NewPostgres(ctx, cfg.Database())
			if err != nil {
				return err
			}
			defer pool.Close()

			user := &domain.User{
				ID:    cuid.New(),
				Email: opts.email,
				Name:  opts.name,
				Role:  domain.Role(opts.role),
			}
			if err := repository.NewPostgresUserRepository(pool).Create(ctx, user); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), user.ID)
			return nil
		},
	}
	create.Flags().StringVar(&opts.email, "email", "", "email address (required)")
	create.Flags().StringVar(&opts.name, "name", "", "display name (required)")
	create.Flags().StringVar(&opts.role, "role", string(domain.RoleUser), "user, reviewer or admin")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("name")

	cmd.AddCommand(create)
	return cmd
}
