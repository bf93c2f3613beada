package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/burnerlist/internal/store"
	"github.com/roach88/burnerlist/internal/task"
)

// Environment variables that supply defaults for global flags.
const (
	EnvDB      = "BURNER_DB"
	EnvBackend = "BURNER_BACKEND"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	DB      string // database file (sqlite) or directory (badger, file)
	Backend string // "sqlite" | "badger" | "file"
	Key     string // blob key the tasks are saved under

	// IDs allows overriding the task id generator (for testing).
	// If nil, defaults to task.RandomIDs.
	IDs task.IDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the burner CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burner",
		Short: "BurnerList - a deliberately small task list",
		Long: `A task list with exactly three ranks: Primary, Secondary and Other.

Tasks keep their order within a rank. When a rank gets out of hand, burn it;
when priorities flip, swap two ranks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if !slices.Contains(store.ValidBackends, store.Backend(opts.Backend)) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid backend %q: must be one of %v", opts.Backend, store.ValidBackends))
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", envOr(EnvDB, "burner.db"),
		"database path, a directory for the badger and file backends (env "+EnvDB+")")
	cmd.PersistentFlags().StringVar(&opts.Backend, "backend", envOr(EnvBackend, string(store.BackendSQLite)),
		"storage backend (sqlite|badger|file) (env "+EnvBackend+")")
	cmd.PersistentFlags().StringVar(&opts.Key, "key", store.DefaultKey, "key the task list is saved under")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewMoveCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewBurnCommand(opts))
	cmd.AddCommand(NewSwapCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

// envOr returns the environment variable name, or fallback when it is unset
// or empty.
func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
