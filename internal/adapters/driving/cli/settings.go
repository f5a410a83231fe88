package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/headergen/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect generator settings",
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>...",
	Short: "Write a setting to the config file",
	Long: `Set validates a value and writes it to headergen.toml.

authors.sections takes one or more "Heading=ID" values and replaces the
configured list. Every other key takes exactly one value. Run
"headergen settings keys" for the accepted keys.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the settings that can be set",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	cmd.Println(heading("Current Settings"))
	cmd.Printf("  Config: %s\n", settingsService.Source())
	cmd.Println()

	settings, err := settingsService.Get()
	if err != nil {
		cmd.Println(errorLine(err.Error()))
		return err
	}

	cmd.Println("[certs]")
	cmd.Printf("  System path: %s\n", valueOrUnset(settings.SystemCertsPath))
	cmd.Printf("  Builtin bundle: %s\n", yesNo(settings.BuiltinCerts))
	printTarget(cmd, domain.ArtifactCerts)
	cmd.Println()

	cmd.Println("[authors]")
	for _, spec := range settings.Sections {
		cmd.Printf("  Section: %q -> %s\n", spec.Heading, spec.ID)
	}
	printTarget(cmd, domain.ArtifactAuthors)
	cmd.Println()

	cmd.Println("[license]")
	cmd.Printf("  Text symbol: %s\n", settings.LicenseTextSymbol)
	printTarget(cmd, domain.ArtifactLicense)
	cmd.Println()

	cmd.Println("[cache]")
	cmd.Printf("  Directory: %s\n", valueOrUnset(settingsService.CacheDir()))
	cmd.Println()

	if err := settings.Validate(); err != nil {
		cmd.Println(warningLine(err.Error()))
		return nil
	}
	cmd.Println(successLine("Configuration is valid."))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	key, values := args[0], args[1:]
	if err := settingsService.Set(key, values...); err != nil {
		return err
	}

	cmd.Println(successLine(fmt.Sprintf("%s set in %s", key, settingsService.Source())))
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}
	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func printTarget(cmd *cobra.Command, kind domain.ArtifactKind) {
	target := settingsService.Target(kind)
	cmd.Printf("  Source: %s\n", valueOrUnset(target.Source))
	cmd.Printf("  Target: %s\n", valueOrUnset(target.Target))
}

func valueOrUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
