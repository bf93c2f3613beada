package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/burnerlist/internal/task"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <rank> <value...>",
		Short: "Add a task to the end of a rank",
		Long: `Add a task to the end of a rank.

Remaining arguments are joined with spaces to form the task text.

Example:
  burner add primary Ship the release
  burner add 2 "Call the plumber"`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, cmd, args[0], strings.Join(args[1:], " "))
		},
	}
}

func runAdd(opts *RootOptions, cmd *cobra.Command, rankArg, value string) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	r, err := a.rank(rankArg)
	if err != nil {
		return err
	}

	rec, err := a.sess.AddValue(contextOf(cmd), r, value)
	switch {
	case errors.Is(err, task.ErrEmptyValue):
		return a.out.Fail(ExitCommandError, ErrCodeEmptyValue, "task text is empty", err)
	case err != nil:
		return a.storageFailed(err)
	}

	view := viewOf(a.sess.DB(), rec)
	return a.out.Success(view, fmt.Sprintf("Added %s to %s", view.ID, view.Rank))
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> [value...]",
		Short: "Replace a task's text",
		Long: `Replace a task's text, keeping its rank and position.

Editing a task to empty text deletes it.

Example:
  burner edit 3f2a "Ship the release on Friday"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(rootOpts, cmd, args[0], strings.Join(args[1:], " "))
		},
	}
}

func runEdit(opts *RootOptions, cmd *cobra.Command, idArg, value string) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	rec, err := a.resolve(idArg)
	if err != nil {
		return err
	}
	before := viewOf(a.sess.DB(), rec)

	if _, err := a.sess.CommitEdit(contextOf(cmd), rec.ID, value); err != nil {
		return a.storageFailed(err)
	}

	after, ok := a.sess.DB().GetByID(rec.ID)
	if !ok {
		return a.out.Success(deletedView{Deleted: before}, fmt.Sprintf("Deleted %s", before.ID))
	}
	view := viewOf(a.sess.DB(), after)
	return a.out.Success(view, fmt.Sprintf("Edited %s", view.ID))
}

// MoveOptions holds flags for the move command.
type MoveOptions struct {
	*RootOptions
	At int
}

// NewMoveCommand creates the move command.
func NewMoveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MoveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "move <id> <rank>",
		Short: "Move a task to a rank",
		Long: `Move a task to a rank, at the end or at a given position.

The position counts tasks in the target rank after the moved task has left
its old place, starting at 0. Positions past the end append.

Example:
  burner move 3f2a secondary
  burner move 3f2a primary --at 0`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var at *int
			if cmd.Flags().Changed("at") {
				at = task.At(opts.At)
			}
			return runMove(opts, cmd, args[0], args[1], at)
		},
	}

	cmd.Flags().IntVar(&opts.At, "at", 0, "position in the target rank (default: append)")

	return cmd
}

func runMove(opts *MoveOptions, cmd *cobra.Command, idArg, rankArg string, at *int) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	rec, err := a.resolve(idArg)
	if err != nil {
		return err
	}
	r, err := a.rank(rankArg)
	if err != nil {
		return err
	}

	if _, err := a.sess.Dispatch(contextOf(cmd), task.Move{ID: rec.ID, Rank: r, Index: at}); err != nil {
		return a.storageFailed(err)
	}

	moved, _ := a.sess.DB().GetByID(rec.ID)
	view := viewOf(a.sess.DB(), moved)
	return a.out.Success(view, fmt.Sprintf("Moved %s to %s at %d", view.ID, view.Rank, view.Index))
}

// deletedView reports a removed task.
type deletedView struct {
	Deleted taskView `json:"deleted"`
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Aliases:       []string{"rm"},
		Short:         "Delete a task",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, cmd, args[0])
		},
	}
}

func runDelete(opts *RootOptions, cmd *cobra.Command, idArg string) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	rec, err := a.resolve(idArg)
	if err != nil {
		return err
	}
	view := viewOf(a.sess.DB(), rec)

	if _, err := a.sess.Dispatch(contextOf(cmd), task.Delete{ID: rec.ID}); err != nil {
		return a.storageFailed(err)
	}
	return a.out.Success(deletedView{Deleted: view}, fmt.Sprintf("Deleted %s", view.ID))
}
