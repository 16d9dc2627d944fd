package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/notify"
	"github.com/pdxmph/todo-tui/internal/storage"
	"github.com/pdxmph/todo-tui/internal/todo"
)

func newExportCmd(opts *globalOptions) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all tasks to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(a *app) error {
				n := notifier(cmd.OutOrStdout())

				doc, err := a.store.Export()
				if err != nil {
					return err
				}
				if doc.Empty() {
					n.Notify(notify.Info, "Nothing to export")
					return nil
				}

				dir := outDir
				if dir == "" {
					dir = a.cfg.Export.Dir
				}
				path, err := todo.WriteFile(dir, a.cfg.Export.FileName, doc)
				if err != nil {
					return err
				}
				n.Notify(notify.Success, fmt.Sprintf("Exported %d tasks to %s", doc.Count, path))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory to write the export to (default from config)")
	return cmd
}

func newImportCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Add the tasks from an exported JSON file",
		Long: `Import reads a file written by export and places its tasks above the
existing ones. The file is validated as a whole; if any task is malformed
nothing is imported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := todo.ReadFile(args[0])
			if err != nil {
				return err
			}
			return withApp(opts, func(a *app) error {
				n, err := a.store.Import(data)
				if err != nil {
					return fmt.Errorf("import failed: %w", err)
				}
				notifier(cmd.OutOrStdout()).Notify(notify.Success,
					fmt.Sprintf("Imported %d tasks from %s", n, filepath.Base(args[0])))
				return nil
			})
		},
	}
}

func newInitCmd(opts *globalOptions) *cobra.Command {
	var fixtures bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the config file and storage",
		Long: `Init writes a default config file if none exists and opens the configured
backend, creating the database when it uses sqlite.

With --fixtures an empty list is seeded with a few sample tasks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := notifier(cmd.OutOrStdout())

			path := opts.configPath
			if path == "" {
				path = filepath.Join(config.Dir(), "config.toml")
			}
			if _, err := os.Stat(path); os.IsNotExist(err) {
				if err := writeDefaultConfig(opts.configPath); err != nil {
					return err
				}
				n.Notify(notify.Success, "Wrote config to "+path)
			}

			return withApp(opts, func(a *app) error {
				n.Notify(notify.Success, fmt.Sprintf("Storage ready (%s)", a.backend.Name()))
				if !fixtures {
					return nil
				}

				if a.store.Summary().Total > 0 {
					n.Notify(notify.Info, "List already has tasks, skipping sample data")
					return nil
				}
				doc, err := todo.Export(todo.SampleTasks(time.Now()))
				if err != nil {
					return err
				}
				count, err := a.store.Import(doc.Data)
				if err != nil {
					return err
				}
				n.Notify(notify.Success, fmt.Sprintf("Added %d sample tasks", count))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&fixtures, "fixtures", false, "Seed an empty list with sample tasks")
	return cmd
}

// writeDefaultConfig saves the defaults to path, or to the standard location
// when path is empty
func writeDefaultConfig(path string) error {
	if path == "" {
		return config.Default().Save()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return config.Default().SaveTo(path)
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the available storage backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range storage.ListBackends() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
