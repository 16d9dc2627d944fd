// Package cli wires configuration, logging and storage together and exposes
// the task list as a cobra command tree. Without a subcommand it starts the
// terminal UI.
package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdxmph/todo-tui/internal/notify"
	"github.com/pdxmph/todo-tui/internal/tui"

	// Register storage backends
	_ "github.com/pdxmph/todo-tui/internal/storage/redis"
	_ "github.com/pdxmph/todo-tui/internal/storage/sqlite"
)

// Version is set at build time
var Version = "dev"

type globalOptions struct {
	configPath string
	backend    string
	ephemeral  bool
}

// Execute runs the command line with args and returns the process exit code
func Execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand(stdout, stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the full command tree writing to stdout and stderr
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "A keyboard-driven task list",
		Long: `todo keeps a single list of tasks with optional notes.

Run without arguments to open the interactive list, or use the subcommands
to script it.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default ~/.config/todo-tui/config.toml)")
	flags.StringVar(&opts.backend, "backend", "", "Storage backend to use (overrides config)")
	flags.BoolVar(&opts.ephemeral, "ephemeral", false, "Keep tasks in memory only; nothing is saved")

	rootCmd.AddCommand(
		newAddCmd(opts),
		newListCmd(opts),
		newDoneCmd(opts),
		newEditCmd(opts),
		newRmCmd(opts),
		newClearCmd(opts),
		newWipeCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newInitCmd(opts),
		newBackendsCmd(),
	)

	return rootCmd
}

func runTUI(opts *globalOptions) error {
	a, err := openApp(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	model := tui.New(a.store, a.repo, tui.Options{
		ExportDir:  a.cfg.Export.Dir,
		ExportName: a.cfg.Export.FileName,
		Theme:      a.cfg.UI.Theme,
		Notifier:   notify.NewLogNotifier(log.StandardLogger()),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}
	return nil
}
