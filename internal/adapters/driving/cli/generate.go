package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/headergen/internal/core/domain"
)

var (
	generateCheck  bool
	generateForce  bool
	generateStdout bool
)

// kindFlags holds the per-kind --source and --target values.
type kindFlags struct {
	source string
	target string
}

var generateFlags = map[domain.ArtifactKind]*kindFlags{}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate header files",
	Long: `Generate one header, or every configured header with "generate all".

Sources and targets come from --source/--target or from the
<kind>.source and <kind>.target configuration keys. A source of "-"
reads standard input.

With --check nothing is written; the command fails if any target is out
of date. --force regenerates even when the stamp cache says the target is
current.`,
}

var generateAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate every configured header",
	Args:  cobra.NoArgs,
	RunE:  runGenerateAll,
}

func init() {
	generateCmd.PersistentFlags().BoolVar(&generateCheck, "check", false, "verify targets are current without writing")
	generateCmd.PersistentFlags().BoolVar(&generateForce, "force", false, "ignore the stamp cache")

	for _, kind := range domain.AllArtifactKinds() {
		generateCmd.AddCommand(newGenerateKindCmd(kind))
	}
	generateCmd.AddCommand(generateAllCmd)
	rootCmd.AddCommand(generateCmd)
}

func newGenerateKindCmd(kind domain.ArtifactKind) *cobra.Command {
	flags := &kindFlags{}
	generateFlags[kind] = flags

	cmd := &cobra.Command{
		Use:   kind.String(),
		Short: "Generate the " + kind.Description() + " header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerateKind(cmd, kind, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.source, "source", "s", "", "input file (\"-\" for stdin)")
	cmd.Flags().StringVarP(&flags.target, "target", "t", "", "output header file")
	cmd.Flags().BoolVar(&generateStdout, "stdout", false, "print the header instead of writing it")
	return cmd
}

func runGenerateKind(cmd *cobra.Command, kind domain.ArtifactKind, flags *kindFlags) error {
	if generatorService == nil || settingsService == nil {
		return fmt.Errorf("generator: %w", errNotConfigured)
	}

	configured := settingsService.Target(kind)
	source := firstNonEmpty(flags.source, configured.Source)
	target := firstNonEmpty(flags.target, configured.Target)
	if source == "" {
		return fmt.Errorf("no source for %s: use --source or set %s.source", kind, kind)
	}

	req := domain.GenerateRequest{
		Kind:    kind,
		Sources: []string{source},
		Target:  target,
		Check:   generateCheck,
		Force:   generateForce,
	}

	if generateStdout {
		out, err := generatorService.Render(cmd.Context(), req)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	if target == "" {
		return fmt.Errorf("no target for %s: use --target or set %s.target", kind, kind)
	}

	res, err := generatorService.Generate(cmd.Context(), req)
	if res != nil {
		printResult(cmd, *res)
	}
	return err
}

func runGenerateAll(cmd *cobra.Command, _ []string) error {
	if generatorService == nil {
		return fmt.Errorf("generator: %w", errNotConfigured)
	}

	results, err := generatorService.GenerateAll(cmd.Context(), generateCheck, generateForce)
	for _, res := range results {
		printResult(cmd, res)
	}
	if err == nil && len(results) == 0 {
		cmd.Println(mutedLine("nothing configured; set <kind>.source and <kind>.target"))
	}
	return err
}

func printResult(cmd *cobra.Command, res domain.GenerateResult) {
	switch {
	case res.Stale:
		cmd.Println(warningLine(fmt.Sprintf("%s is out of date", res.Target)))
	case res.Skipped:
		cmd.Println(mutedLine(fmt.Sprintf("%s is up to date", res.Target)))
	case generateCheck:
		cmd.Println(successLine(fmt.Sprintf("%s is current", res.Target)))
	default:
		cmd.Println(successLine(fmt.Sprintf("wrote %s (%d bytes)", res.Target, res.Size)))
	}
}

// IsStale reports whether err means check mode found out-of-date targets.
func IsStale(err error) bool {
	return errors.Is(err, domain.ErrStale)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
