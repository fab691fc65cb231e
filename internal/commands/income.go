package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newIncomeCommand(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Manage the income of users",
	}

	cmd.AddCommand(newIncomeSetCommand(load))

	return cmd
}

func newIncomeSetCommand(load loader) *cobra.Command {
	var email string
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a new income for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := decimal.NewFromString(value)
			if err != nil {
				return fmt.Errorf("invalid income '%s': %w", value, err)
			}

			cfg, err := load()
			if err != nil {
				return err
			}

			l, db, err := openLedger(cfg)
			if err != nil {
				return err
			}
			defer closeDB(db)

			user, err := l.GetUserByEmail(cmd.Context(), email)
			if err != nil {
				return fmt.Errorf("finding user %s: %w", email, err)
			}

			income, err := l.SetIncome(cmd.Context(), user.ID, decimal.NewNullDecimal(amount))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set income of %s to %s\n", user.Email, income.Value)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address of the user (required)")
	_ = cmd.MarkFlagRequired("email")
	cmd.Flags().StringVar(&value, "value", "", "the new income (required)")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
