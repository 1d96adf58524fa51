package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/deyby01/agenda/internal/app"
	"github.com/deyby01/agenda/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(a *App) *cobra.Command {
	var evaluate bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the prioritized task and project overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := time.Now().UTC()

			// Mirror the web dashboard: opening it runs the daily
			// notification sweep unless disabled.
			if evaluate {
				if _, err := a.Notify.EvaluateAll(ctx, a.Owner, now); err != nil {
					return err
				}
			}

			req := app.NewDashboardRequest(a.Owner)
			req.Now = &now
			resp, err := a.Dashboard.GetDashboard(ctx, req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatDashboard(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&evaluate, "evaluate", true, "Run the notification sweep before rendering")

	return cmd
}
