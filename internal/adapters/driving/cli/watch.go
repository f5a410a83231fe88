package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/watch"
)

var (
	watchDebounce time.Duration
	watchClear    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate headers when their sources change",
	Long: `Generates every configured header, then watches the configured
sources and regenerates the affected headers after each change.
Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "quiet period before regenerating")
	watchCmd.Flags().BoolVar(&watchClear, "clear", true, "clear the screen before each run when attached to a terminal")
	rootCmd.AddCommand(watchCmd)
}

// watchPlan maps each watched source to the requests it feeds.
type watchPlan map[string][]domain.GenerateRequest

// buildWatchPlan collects the configured kinds whose source is a file.
func buildWatchPlan() watchPlan {
	plan := watchPlan{}
	for _, kind := range domain.AllArtifactKinds() {
		target := settingsService.Target(kind)
		if !target.IsConfigured() || target.Source == "-" {
			continue
		}
		plan[target.Source] = append(plan[target.Source], domain.GenerateRequest{
			Kind:    kind,
			Sources: []string{target.Source},
			Target:  target.Target,
		})
	}
	return plan
}

func (p watchPlan) inputs() []string {
	inputs := make([]string, 0, len(p))
	for in := range p {
		inputs = append(inputs, in)
	}
	slices.Sort(inputs)
	return inputs
}

// run generates every request fed by the changed sources.
func (p watchPlan) run(ctx context.Context, cmd *cobra.Command, changed []string) error {
	var errs []error
	for _, in := range changed {
		for _, req := range p[in] {
			res, err := generatorService.Generate(ctx, req)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			printResult(cmd, *res)
		}
	}
	return errors.Join(errs...)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if generatorService == nil || settingsService == nil {
		return fmt.Errorf("watch: %w", errNotConfigured)
	}

	plan := buildWatchPlan()
	if len(plan) == 0 {
		return errors.New("watch: nothing configured; set <kind>.source and <kind>.target")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initial build. Failures are reported and watching continues.
	if err := plan.run(ctx, cmd, plan.inputs()); err != nil {
		cmd.Println(errorLine(err.Error()))
	}

	w, err := watch.New(watch.Config{
		Inputs:      plan.inputs(),
		Debounce:    watchDebounce,
		ClearScreen: watchClear && term.IsTerminal(int(os.Stdout.Fd())),
		Out:         cmd.OutOrStdout(),
		OnChange: func(ctx context.Context, changed []string) error {
			return plan.run(ctx, cmd, changed)
		},
	})
	if err != nil {
		return err
	}

	cmd.Println(mutedLine(fmt.Sprintf("watching %d source(s), press Ctrl+C to stop", len(plan))))
	return w.Run(ctx)
}
