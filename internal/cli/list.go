package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/burnerlist/internal/codec"
	"github.com/roach88/burnerlist/internal/task"
	"github.com/roach88/burnerlist/internal/taskdb"
)

// rankView is one rank and its tasks in display order.
type rankView struct {
	Rank  task.Rank  `json:"rank"`
	Tasks []taskView `json:"tasks"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list [rank]",
		Aliases: []string{"ls"},
		Short:   "Show tasks by rank",
		Long: `Show tasks in priority order: Primary, Secondary, then Other.

Each rank lists its tasks in order with their position and id.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd, args)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command, args []string) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ranks := task.Ranks[:]
	if len(args) == 1 {
		r, err := a.rank(args[0])
		if err != nil {
			return err
		}
		ranks = []task.Rank{r}
	}

	views := rankViews(a.sess.DB(), ranks)
	return a.out.Success(views, renderRanks(views))
}

func rankViews(db *taskdb.DB, ranks []task.Rank) []rankView {
	views := make([]rankView, 0, len(ranks))
	for _, r := range ranks {
		recs := db.GetByRank(r)
		v := rankView{Rank: r, Tasks: make([]taskView, len(recs))}
		for i, rec := range recs {
			v.Tasks[i] = taskView{ID: rec.ID.String(), Rank: r, Index: i, Value: rec.Value}
		}
		views = append(views, v)
	}
	return views
}

// renderRanks formats views as text:
//
//	Primary
//	  0  <id>  <value>
//	Secondary
//	  (empty)
func renderRanks(views []rankView) string {
	var b strings.Builder
	for i, v := range views {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(v.Rank.String())
		if len(v.Tasks) == 0 {
			b.WriteString("\n  (empty)")
			continue
		}
		for _, t := range v.Tasks {
			// Multi-line values are indented to stay under their task.
			value := strings.ReplaceAll(t.Value, "\n", "\n      ")
			fmt.Fprintf(&b, "\n  %d  %s  %s", t.Index, t.ID, value)
		}
	}
	return b.String()
}

// inspectResult is the JSON payload of inspect.
type inspectResult struct {
	Version    uint64             `json:"version"`
	Digest     string             `json:"digest"`
	Tasks      int                `json:"tasks"`
	Slots      []taskdb.SlotEntry `json:"slots"`
	Consistent bool               `json:"consistent"`
	Problem    string             `json:"problem,omitempty"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Dump the record table and check index consistency",
		Long: `Dump every occupied record table slot and verify that the identity and
rank indices agree with it.

Exits with status 1 when the indices are inconsistent.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, cmd)
		},
	}
}

func runInspect(opts *RootOptions, cmd *cobra.Command) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	db := a.sess.DB()
	res := inspectResult{
		Version:    db.Version(),
		Tasks:      db.Len(),
		Slots:      db.Slots(),
		Consistent: true,
	}
	if res.Digest, err = codec.Digest(db); err != nil {
		return a.out.Fail(ExitFailure, ErrCodeGeneric, "failed to encode tasks", err)
	}
	checkErr := db.Check()
	if checkErr != nil {
		res.Consistent = false
		res.Problem = checkErr.Error()
	}

	if a.out.Format == "json" {
		if err := a.out.Success(res, ""); err != nil {
			return err
		}
	} else {
		var b strings.Builder
		fmt.Fprintf(&b, "version %d, %d task(s)\n", res.Version, res.Tasks)
		fmt.Fprintf(&b, "digest %s\n", res.Digest)
		for _, e := range res.Slots {
			fmt.Fprintf(&b, "slot %d  %-9s  %s  %s\n", e.Slot, e.Record.Rank, e.Record.ID, e.Record.Value)
		}
		if res.Consistent {
			b.WriteString("indices consistent")
		} else {
			fmt.Fprintf(&b, "indices inconsistent: %s", res.Problem)
		}
		if err := a.out.Success(res, b.String()); err != nil {
			return err
		}
	}

	if checkErr != nil {
		exitErr := WrapExitError(ExitFailure, ErrCodeCorrupt+": indices inconsistent", checkErr)
		exitErr.Reported = true
		return exitErr
	}
	return nil
}
