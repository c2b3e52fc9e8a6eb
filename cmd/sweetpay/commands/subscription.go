package commands

import (
	"github.com/spf13/cobra"
)

// NewSubscriptionsCommand creates the subscriptions command group
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subs"},
		Short:   "Manage subscriptions",
		Long:    "Search, inspect, and cancel subscriptions",
	}

	cmd.AddCommand(newSubscriptionsSearchCommand())
	cmd.AddCommand(newSubscriptionsGetCommand())
	cmd.AddCommand(newSubscriptionsCancelCommand())

	return cmd
}

func newSubscriptionsSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search [key=value...]",
		Short: "Search subscriptions",
		Long:  "Search subscriptions matching key=value criteria. No criteria returns everything.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var criteria map[string]interface{}

			if len(args) > 0 {
				parsed, err := parseFields(args)
				if err != nil {
					return err
				}

				criteria = parsed
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			data, err := client.Subscriptions.Search(cmd.Context(), criteria)
			if err != nil {
				return err
			}

			return renderData(data)
		},
	}
}

func newSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrSubscriptionIDBlank
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			data, err := client.Subscriptions.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderData(data)
		},
	}
}

func newSubscriptionsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel SUBSCRIPTION_ID",
		Short: "Cancel a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrSubscriptionIDBlank
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			data, err := client.Subscriptions.Cancel(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderData(data)
		},
	}
}
