package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/burnerlist/internal/task"
)

// burnResult is the JSON payload of burn.
type burnResult struct {
	Rank   task.Rank `json:"rank"`
	Burned int       `json:"burned"`
}

// NewBurnCommand creates the burn command.
func NewBurnCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "burn [rank]",
		Short: "Delete every task in a rank",
		Long: `Delete every task in a rank. Other ranks are untouched.

Burns Primary when no rank is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rankArg := task.Primary.String()
			if len(args) == 1 {
				rankArg = args[0]
			}
			return runBurn(rootOpts, cmd, rankArg)
		},
	}
}

func runBurn(opts *RootOptions, cmd *cobra.Command, rankArg string) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	r, err := a.rank(rankArg)
	if err != nil {
		return err
	}

	n := a.sess.DB().RankLen(r)
	if err := a.sess.Burn(contextOf(cmd), r); err != nil {
		return a.storageFailed(err)
	}
	return a.out.Success(burnResult{Rank: r, Burned: n}, fmt.Sprintf("Burned %d task(s) from %s", n, r))
}

// swapResult is the JSON payload of swap.
type swapResult struct {
	Ranks [2]task.Rank `json:"ranks"`
	Sizes [2]int       `json:"sizes"`
}

// NewSwapCommand creates the swap command.
func NewSwapCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "swap [rank rank]",
		Short: "Exchange the tasks of two ranks",
		Long: `Exchange the tasks of two ranks, keeping each side's order.

Swaps Primary and Secondary when no ranks are given. Swapping twice restores
the original list.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pair := [2]string{task.Primary.String(), task.Secondary.String()}
			if len(args) == 2 {
				pair = [2]string{args[0], args[1]}
			}
			return runSwap(rootOpts, cmd, pair)
		},
	}
}

func runSwap(opts *RootOptions, cmd *cobra.Command, pair [2]string) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	var ranks [2]task.Rank
	for i, arg := range pair {
		if ranks[i], err = a.rank(arg); err != nil {
			return err
		}
	}

	if err := a.sess.Swap(contextOf(cmd), ranks[0], ranks[1]); err != nil {
		return a.storageFailed(err)
	}

	db := a.sess.DB()
	res := swapResult{
		Ranks: ranks,
		Sizes: [2]int{db.RankLen(ranks[0]), db.RankLen(ranks[1])},
	}
	return a.out.Success(res, fmt.Sprintf("Swapped %s and %s", ranks[0], ranks[1]))
}
