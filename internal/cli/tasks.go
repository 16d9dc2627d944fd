package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdxmph/todo-tui/internal/notify"
	"github.com/pdxmph/todo-tui/internal/todo"
)

// withApp opens the task list for the duration of fn
func withApp(opts *globalOptions, fn func(a *app) error) error {
	a, err := openApp(opts)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func newAddCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a task to the top of the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				task, err := a.store.Create(strings.Join(args, " "))
				if err != nil {
					return err
				}
				notifier(cmd.OutOrStdout()).Notify(notify.Success,
					fmt.Sprintf("Added %s %s", shortID(task.ID), task.Title))
				return nil
			})
		},
	}
}

func newListCmd(opts *globalOptions) *cobra.Command {
	var (
		filterName string
		search     string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := todo.ParseFilter(filterName)
			if err != nil {
				return err
			}
			return withApp(opts, func(a *app) error {
				tasks := a.store.View(filter, search)
				if asJSON {
					data, err := todo.EncodeIndent(tasks)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return err
				}
				printTasks(cmd.OutOrStdout(), tasks, a.store.Summary())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&filterName, "filter", "f", "all", "Show all, active or completed tasks")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only show tasks whose title or notes contain this text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the tasks as JSON")
	return cmd
}

func printTasks(w io.Writer, tasks []todo.Task, summary todo.Summary) {
	if len(tasks) == 0 {
		if summary.Total == 0 {
			fmt.Fprintln(w, "No tasks yet.")
		} else {
			fmt.Fprintln(w, "Nothing matches the current filter.")
		}
	}
	for _, t := range tasks {
		check := "[ ]"
		if t.Done {
			check = "[x]"
		}
		fmt.Fprintf(w, "%s %s  %s\n", check, shortID(t.ID), t.Title)
		if t.Notes != "" {
			fmt.Fprintf(w, "             %s\n", strings.ReplaceAll(t.Notes, "\n", " "))
		}
	}
	fmt.Fprintln(w, summary.String())
}

func newDoneCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task between active and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				id, err := a.resolveID(args[0])
				if err != nil {
					return err
				}
				task, err := a.store.Toggle(id)
				if err != nil {
					return err
				}
				notifier(cmd.OutOrStdout()).Notify(notify.Success,
					fmt.Sprintf("%s marked %s", task.Title, strings.ToLower(task.Status())))
				return nil
			})
		},
	}
}

func newEditCmd(opts *globalOptions) *cobra.Command {
	var title, notes string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a task's title or notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			titleSet := cmd.Flags().Changed("title")
			notesSet := cmd.Flags().Changed("notes")
			if !titleSet && !notesSet {
				return errors.New("nothing to change: pass --title and/or --notes")
			}

			return withApp(opts, func(a *app) error {
				id, err := a.resolveID(args[0])
				if err != nil {
					return err
				}
				current, _ := a.store.Get(id)
				if !titleSet {
					title = current.Title
				}
				if !notesSet {
					notes = current.Notes
				}

				task, err := a.store.Update(id, title, notes)
				if err != nil {
					return err
				}
				notifier(cmd.OutOrStdout()).Notify(notify.Success, "Saved "+task.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes (empty clears them)")
	return cmd
}

func newRmCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				id, err := a.resolveID(args[0])
				if errors.Is(err, todo.ErrNotFound) {
					// already gone
					notifier(cmd.OutOrStdout()).Notify(notify.Info, "Nothing to delete")
					return nil
				}
				if err != nil {
					return err
				}
				task, _ := a.store.Get(id)
				if err := a.store.Delete(id); err != nil {
					return err
				}
				notifier(cmd.OutOrStdout()).Notify(notify.Success, "Deleted "+task.Title)
				return nil
			})
		},
	}
}

func newClearCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				n, err := a.store.ClearCompleted()
				if err != nil {
					return err
				}
				if n == 0 {
					notifier(cmd.OutOrStdout()).Notify(notify.Info, "No completed tasks to clear")
					return nil
				}
				notifier(cmd.OutOrStdout()).Notify(notify.Success, fmt.Sprintf("Cleared %d completed", n))
				return nil
			})
		},
	}
}

func newWipeCmd(opts *globalOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete every task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to wipe without --yes")
			}
			return withApp(opts, func(a *app) error {
				if err := a.store.Wipe(); err != nil {
					return err
				}
				notifier(cmd.OutOrStdout()).Notify(notify.Success, "All tasks wiped")
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deleting all tasks")
	return cmd
}
