package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/deyby01/agenda/internal/cli/formatter"
	"github.com/deyby01/agenda/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectStatusCmd(app),
		newProjectRmCmd(app),
	)
	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var status string
	var start, end string
	var description string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				OwnerID:     app.Owner,
				Name:        args[0],
				Description: description,
				Status:      domain.ProjectStatus(status),
			}
			if start != "" {
				parsed, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("parsing --start (want YYYY-MM-DD): %w", err)
				}
				p.StartDate = domain.DatePtr(parsed)
			}
			if end != "" {
				parsed, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("parsing --end (want YYYY-MM-DD): %w", err)
				}
				p.EstimatedEnd = domain.DatePtr(parsed)
			}
			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Created project %s\n", p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "planned", "Status: planned, in_progress, completed, on_hold, cancelled")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Estimated end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "Project description")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.ListByOwner(context.Background(), app.Owner)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println(formatter.Dim("No projects."))
				return nil
			}

			today := time.Now().UTC()
			headers := []string{"ID", "NAME", "STATUS", "END"}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				end := formatter.Dim("--")
				if p.EstimatedEnd != nil {
					end = formatter.RelativeDateStyled(*p.EstimatedEnd, today)
				}
				rows = append(rows, []string{
					formatter.Dim(p.DisplayID()),
					formatter.Bold(formatter.Truncate(p.Name, 30)),
					string(p.Status),
					end,
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newProjectStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change a project's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Projects.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			p.Status = domain.ProjectStatus(args[1])
			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Project %s is now %s\n", p.Name, p.Status)
			return nil
		},
	}
}

func newProjectRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a project and its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
