package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/burnerlist/internal/session"
	"github.com/roach88/burnerlist/internal/store"
	"github.com/roach88/burnerlist/internal/task"
	"github.com/roach88/burnerlist/internal/taskdb"
)

var (
	errNoMatch   = errors.New("no task matches id")
	errAmbiguous = errors.New("id prefix matches more than one task")
)

// app is one command invocation's view of the task list: the output
// formatter, the opened backend and the session over it.
type app struct {
	opts   *RootOptions
	out    *OutputFormatter
	logger *slog.Logger
	blobs  store.BlobStore
	sess   *session.Session
}

// newFormatter builds the formatter for cmd. Verbose logs go to stderr to
// avoid corrupting JSON.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// newLogger returns a text logger on w, at Debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openApp opens the configured backend and loads the task list.
// Callers must Close the returned app.
func openApp(opts *RootOptions, cmd *cobra.Command) (*app, error) {
	a := &app{
		opts:   opts,
		out:    newFormatter(opts, cmd),
		logger: newLogger(cmd.ErrOrStderr(), opts.Verbose),
	}

	backend := store.Backend(opts.Backend)
	if backend == "" {
		backend = store.BackendSQLite
	}
	a.logger.Debug("opening store", "backend", backend, "path", opts.DB)
	blobs, err := store.OpenBackend(backend, opts.DB, a.logger)
	if err != nil {
		return nil, a.out.Fail(ExitCommandError, ErrCodeStorage, "failed to open store", err)
	}
	a.blobs = blobs

	sess, err := session.Open(contextOf(cmd), blobs, session.Options{
		Key:    opts.Key,
		IDs:    opts.IDs,
		Logger: a.logger,
	})
	if err != nil {
		a.Close()
		return nil, a.out.Fail(ExitCommandError, ErrCodeStorage, "failed to load tasks", err)
	}
	a.sess = sess
	return a, nil
}

// Close releases the backend.
func (a *app) Close() {
	if a.blobs == nil {
		return
	}
	if err := a.blobs.Close(); err != nil {
		a.logger.Error("error closing store", "error", err)
	}
}

// dbOptions returns the options for building a replacement DB, such as an
// import, so it shares the session's generator and logger.
func (a *app) dbOptions() []taskdb.Option {
	opts := []taskdb.Option{taskdb.WithLogger(a.logger)}
	if a.opts.IDs != nil {
		opts = append(opts, taskdb.WithIDGenerator(a.opts.IDs))
	}
	return opts
}

// storageFailed reports a failed save.
func (a *app) storageFailed(err error) error {
	return a.out.Fail(ExitCommandError, ErrCodeStorage, "failed to save tasks", err)
}

// rank parses a rank argument, reporting bad names.
func (a *app) rank(arg string) (task.Rank, error) {
	r, err := task.ParseRank(arg)
	if err != nil {
		return 0, a.out.Fail(ExitCommandError, ErrCodeInvalidRank,
			fmt.Sprintf("unknown rank %q: must be primary, secondary or other", arg), err)
	}
	return r, nil
}

// resolve finds the task arg refers to and reports lookup failures.
func (a *app) resolve(arg string) (task.Record, error) {
	rec, err := resolveID(a.sess.DB(), arg)
	switch {
	case errors.Is(err, errAmbiguous):
		return task.Record{}, a.out.Fail(ExitCommandError, ErrCodeAmbiguousID,
			fmt.Sprintf("id %q is ambiguous", arg), err)
	case err != nil:
		return task.Record{}, a.out.Fail(ExitCommandError, ErrCodeNotFound,
			fmt.Sprintf("task %q not found", arg), err)
	}
	return rec, nil
}

// resolveID looks a task up by full id or by a unique prefix of its
// canonical string form. Prefix matching is case-insensitive.
func resolveID(db *taskdb.DB, arg string) (task.Record, error) {
	if id, err := uuid.Parse(arg); err == nil {
		if rec, ok := db.GetByID(id); ok {
			return rec, nil
		}
		return task.Record{}, errNoMatch
	}

	prefix := strings.ToLower(strings.TrimSpace(arg))
	if prefix == "" {
		return task.Record{}, errNoMatch
	}
	var (
		found task.Record
		n     int
	)
	for _, rec := range db.Records() {
		if strings.HasPrefix(rec.ID.String(), prefix) {
			found = rec
			n++
		}
	}
	switch n {
	case 0:
		return task.Record{}, errNoMatch
	case 1:
		return found, nil
	default:
		return task.Record{}, fmt.Errorf("%w: %d matches", errAmbiguous, n)
	}
}

// contextOf returns the command's context, or Background when the command
// is executed without one.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// taskView is a task as reported by commands.
type taskView struct {
	ID    string    `json:"id"`
	Rank  task.Rank `json:"rank"`
	Index int       `json:"index"`
	Value string    `json:"value"`
}

// viewOf reports rec with its current position in db.
func viewOf(db *taskdb.DB, rec task.Record) taskView {
	_, idx, _ := db.Locate(rec.ID)
	return taskView{ID: rec.ID.String(), Rank: rec.Rank, Index: idx, Value: rec.Value}
}
