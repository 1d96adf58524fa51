package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/deyby01/agenda/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNotifyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Evaluate and manage smart notifications",
	}
	cmd.AddCommand(
		newNotifyRunCmd(app),
		newNotifyListCmd(app),
		newNotifyReadCmd(app),
		newNotifyActionCmd(app),
	)
	return cmd
}

func newNotifyRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the notification sweep for critical tasks and projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Notify.EvaluateAll(context.Background(), app.Owner, time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatEvaluation(created))
			return nil
		},
	}
}

func newNotifyListCmd(app *App) *cobra.Command {
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifications, err := app.Notify.List(context.Background(), app.Owner, unreadOnly)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatNotifications(notifications))
			return nil
		},
	}

	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "Only unread notifications")

	return cmd
}

func newNotifyReadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Notify.MarkRead(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Marked read.")
			return nil
		},
	}
}

func newNotifyActionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "action <id>",
		Short: "Mark a notification as actioned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Notify.MarkActioned(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Marked actioned.")
			return nil
		},
	}
}
