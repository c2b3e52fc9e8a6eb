package commands

import (
	"github.com/spf13/cobra"
)

// NewCheckoutCommand creates the checkout command group
func NewCheckoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Manage checkout sessions",
		Long:  "Create and inspect checkout sessions",
	}

	cmd.AddCommand(newCheckoutCreateCommand())
	cmd.AddCommand(newCheckoutGetCommand())

	return cmd
}

func newCheckoutCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create key=value [key=value...]",
		Short: "Create a checkout session",
		Long: `Create a checkout session from key=value fields.

Values that parse as JSON keep their type, so amount=100 sends a number
and items='["a","b"]' sends an array.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseFields(args)
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			data, err := client.Checkout.CreateSession(cmd.Context(), params)
			if err != nil {
				return err
			}

			return renderData(data)
		},
	}
}

func newCheckoutGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SESSION_ID",
		Short: "Get a checkout session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrSessionIDRequired
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			data, err := client.Checkout.GetSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderData(data)
		},
	}
}
