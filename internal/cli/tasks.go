package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/core/domain"
)

const dateLayout = "2006-01-02"

func (a *app) newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List and change tasks",
	}
	cmd.AddCommand(a.newTasksListCmd())
	cmd.AddCommand(a.newTasksAddCmd())
	cmd.AddCommand(a.newTasksEditCmd())
	cmd.AddCommand(a.newTasksStatusCmd("done", "Mark a task completed", true))
	cmd.AddCommand(a.newTasksStatusCmd("undo", "Mark a task incomplete", false))
	cmd.AddCommand(a.newTasksRemoveCmd())
	return cmd
}

func (a *app) newTasksListCmd() *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := domain.ParseViewMode(view)
			if err != nil {
				return err
			}
			taskSync, err := a.synchronizer()
			if err != nil {
				return err
			}
			if err := taskSync.SetViewMode(cmd.Context(), mode); err != nil {
				return describe(err)
			}
			return printTasks(cmd.OutOrStdout(), taskSync.Snapshot().Visible())
		},
	}

	cmd.Flags().StringVar(&view, "view", string(domain.ViewModeAll), "all, completed or incomplete")
	return cmd
}

func (a *app) newTasksAddCmd() *cobra.Command {
	var title, description, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := parseDraft(title, description, due)
			if err != nil {
				return err
			}
			taskSync, err := a.synchronizer()
			if err != nil {
				return err
			}
			task, err := taskSync.Create(cmd.Context(), draft)
			if err != nil {
				return describe(err)
			}
			return printTasks(cmd.OutOrStdout(), []domain.Task{task})
		},
	}

	addDraftFlags(cmd, &title, &description, &due)
	return cmd
}

func (a *app) newTasksEditCmd() *cobra.Command {
	var title, description, due string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Replace the title, description and due date of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := parseDraft(title, description, due)
			if err != nil {
				return err
			}
			taskSync, err := a.synchronizer()
			if err != nil {
				return err
			}
			task, err := taskSync.Edit(cmd.Context(), args[0], draft)
			if err != nil {
				return describe(err)
			}
			return printTasks(cmd.OutOrStdout(), []domain.Task{task})
		},
	}

	addDraftFlags(cmd, &title, &description, &due)
	return cmd
}

func (a *app) newTasksStatusCmd(use, short string, completed bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskSync, err := a.synchronizer()
			if err != nil {
				return err
			}
			task, err := taskSync.SetStatus(cmd.Context(), args[0], completed)
			if err != nil {
				return describe(err)
			}
			return printTasks(cmd.OutOrStdout(), []domain.Task{task})
		},
	}
}

func (a *app) newTasksRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskSync, err := a.synchronizer()
			if err != nil {
				return err
			}
			if err := taskSync.Delete(cmd.Context(), args[0]); err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func addDraftFlags(cmd *cobra.Command, title, description, due *string) {
	cmd.Flags().StringVar(title, "title", "", "task title")
	cmd.Flags().StringVar(description, "description", "", "task description")
	cmd.Flags().StringVar(due, "due", "", "due date (YYYY-MM-DD)")
}

// parseDraft only decodes the flags; blank fields are reported by the
// synchronizer.
func parseDraft(title, description, due string) (domain.TaskDraft, error) {
	draft := domain.TaskDraft{Title: title, Description: description}
	if due != "" {
		dueDate, err := time.Parse(dateLayout, due)
		if err != nil {
			return domain.TaskDraft{}, fmt.Errorf("--due must be YYYY-MM-DD: %w", err)
		}
		draft.DueDate = dueDate
	}
	return draft, nil
}

func printTasks(out io.Writer, tasks []domain.Task) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tDUE\tTITLE")
	for _, task := range tasks {
		status := "todo"
		if task.Completed {
			status = "done"
		}
		due := ""
		if !task.DueDate.IsZero() {
			due = task.DueDate.Format(dateLayout)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", task.ID, status, due, task.Title)
	}
	return w.Flush()
}
