package commands

import (
	"errors"
	"fmt"
	"os"

	"bankagent/internal/models"
	"bankagent/internal/repositories"

	"github.com/spf13/cobra"
)

func seedOperatorCmd() *cobra.Command {
	var email, password, role string

	cmd := &cobra.Command{
		Use:   "seed-operator",
		Short: "Create an operator account",
		Long:  "Create an operator account. Email and password default to ADMIN_EMAIL and ADMIN_PASSWORD.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = os.Getenv("ADMIN_EMAIL")
			}
			if password == "" {
				password = os.Getenv("ADMIN_PASSWORD")
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password required (--email/--password or ADMIN_EMAIL/ADMIN_PASSWORD)")
			}

			op, err := appCtx.Auth.CreateOperator(cmd.Context(), email, password, role)
			if errors.Is(err, repositories.ErrEmailTaken) {
				fmt.Println("Operator already exists")
				return nil
			}
			if err != nil {
				return describe(err)
			}

			fmt.Printf("Operator %s created with role %s\n", op.Email, op.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "operator email")
	cmd.Flags().StringVar(&password, "password", "", "operator password")
	cmd.Flags().StringVar(&role, "role", models.RoleAdmin, "admin or operator")
	return cmd
}
