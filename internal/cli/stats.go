package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/burnerlist/internal/metrics"
	"github.com/roach88/burnerlist/internal/task"
)

// statsResult is the JSON payload of stats.
type statsResult struct {
	Version uint64         `json:"version"`
	Tasks   map[string]int `json:"tasks"`
	Total   int            `json:"total"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print task counts as Prometheus metrics",
		Long: `Print the number of tasks per rank. Text output uses the Prometheus
exposition format so it can be fed to a textfile collector.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd)
		},
	}
}

func runStats(opts *RootOptions, cmd *cobra.Command) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	db := a.sess.DB()
	collector := metrics.New()
	stop := collector.Observe(db)
	defer stop()

	res := statsResult{Version: db.Version(), Tasks: map[string]int{}, Total: db.Len()}
	for _, r := range task.Ranks {
		res.Tasks[r.String()] = db.RankLen(r)
	}

	var b strings.Builder
	if err := collector.WriteText(&b); err != nil {
		return a.out.Fail(ExitFailure, ErrCodeGeneric, "failed to render metrics", err)
	}
	return a.out.Success(res, strings.TrimSuffix(b.String(), "\n"))
}
