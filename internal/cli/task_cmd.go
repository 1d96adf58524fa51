package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/deyby01/agenda/internal/cli/formatter"
	"github.com/deyby01/agenda/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskRmCmd(app),
	)
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var due string
	var projectID string
	var notes string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.Task{
				OwnerID: app.Owner,
				Title:   args[0],
				Notes:   notes,
			}
			if due != "" {
				parsed, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("parsing --due (want YYYY-MM-DD): %w", err)
				}
				t.DueDate = domain.DatePtr(parsed)
			}
			if projectID != "" {
				t.ProjectID = &projectID
			}
			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}
			fmt.Printf("Created task %s\n", t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&projectID, "project", "", "Project ID the task belongs to")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var showCompleted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.ListByOwner(context.Background(), app.Owner)
			if err != nil {
				return err
			}

			today := time.Now().UTC()
			headers := []string{"ID", "TASK", "DUE", "STATE"}
			var rows [][]string
			for _, t := range tasks {
				if t.Completed && !showCompleted {
					continue
				}
				due := formatter.Dim("--")
				if t.DueDate != nil {
					due = formatter.RelativeDateStyled(*t.DueDate, today)
				}
				state := formatter.Dim("pending")
				if t.Completed {
					state = formatter.StyleGreen.Render("done")
				}
				rows = append(rows, []string{
					formatter.Dim(shortID(t.ID)),
					formatter.Bold(formatter.Truncate(t.Title, 40)),
					due,
					state,
				})
			}
			if len(rows) == 0 {
				fmt.Println(formatter.Dim("No tasks."))
				return nil
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showCompleted, "all", false, "Include completed tasks")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Complete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Done.")
			return nil
		},
	}
}

func newTaskRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
