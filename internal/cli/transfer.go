package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/roach88/burnerlist/internal/codec"
	"github.com/roach88/burnerlist/internal/taskdb"
)

// Encodings accepted by export and import.
const (
	EncodingJSON = "json"
	EncodingYAML = "yaml"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	As     string
	Output string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list as JSON or YAML",
		Long: `Write the task list in canonical order: ranks by priority, tasks in
display order. The JSON form is the same document the store persists.

Example:
  burner export > tasks.json
  burner export --as yaml -o tasks.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.As, "as", EncodingJSON, "document encoding (json|yaml)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	db := a.sess.DB()
	var data []byte
	switch opts.As {
	case EncodingJSON:
		data, err = codec.EncodeIndent(db)
	case EncodingYAML:
		data, err = codec.EncodeYAML(db)
	default:
		return a.out.Fail(ExitCommandError, ErrCodeGeneric,
			fmt.Sprintf("invalid encoding %q: must be json or yaml", opts.As), nil)
	}
	if err != nil {
		return a.out.Fail(ExitFailure, ErrCodeGeneric, "failed to encode tasks", err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	if opts.Output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := atomic.WriteFile(opts.Output, bytes.NewReader(data)); err != nil {
		return a.out.Fail(ExitCommandError, ErrCodeWriteFailed,
			fmt.Sprintf("failed to write %s", opts.Output), err)
	}
	a.out.VerboseLog("Wrote %d bytes to %s", len(data), opts.Output)
	return a.out.Success(
		map[string]any{"file": opts.Output, "tasks": db.Len()},
		fmt.Sprintf("Exported %d task(s) to %s", db.Len(), opts.Output),
	)
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the task list with an exported document",
		Long: `Replace the whole task list with the contents of an exported document.

Files ending in .yaml or .yml are read as YAML, anything else as JSON.
Task ids are kept. A document that does not validate leaves the current
list untouched.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, cmd, args[0])
		},
	}
}

func runImport(opts *RootOptions, cmd *cobra.Command, path string) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return a.out.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("file not found: %s", path), err)
		}
		return a.out.Fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("failed to read %s", path), err)
	}

	var db *taskdb.DB
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		db, err = codec.DecodeYAML(data, a.dbOptions()...)
	default:
		db, err = codec.Decode(data, a.dbOptions()...)
	}
	if err != nil {
		return a.out.Fail(ExitCommandError, ErrCodeInvalidData, fmt.Sprintf("invalid task document %s", path), err)
	}

	if err := a.sess.Replace(contextOf(cmd), db); err != nil {
		return a.storageFailed(err)
	}
	return a.out.Success(
		map[string]any{"file": path, "tasks": db.Len()},
		fmt.Sprintf("Imported %d task(s) from %s", db.Len(), path),
	)
}
