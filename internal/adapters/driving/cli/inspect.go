package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/escape"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show how input files are parsed",
}

var inspectLicensesCmd = &cobra.Command{
	Use:   "licenses <manifest>",
	Short: "List the license records in a copyright manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspectLicenses,
}

var inspectSectionsCmd = &cobra.Command{
	Use:   "sections <document>",
	Short: "List the configured sections found in an authors document",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspectSections,
}

func init() {
	inspectCmd.AddCommand(inspectLicensesCmd)
	inspectCmd.AddCommand(inspectSectionsCmd)
	rootCmd.AddCommand(inspectCmd)
}

func runInspectLicenses(cmd *cobra.Command, args []string) error {
	if inspectService == nil {
		return fmt.Errorf("inspect: %w", errNotConfigured)
	}

	records, err := inspectService.Licenses(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		cmd.Println(mutedLine("no license records"))
		return nil
	}

	for i, rec := range records {
		if i > 0 {
			cmd.Println()
		}
		cmd.Println(heading(fmt.Sprintf("%s (%d lines)", rec.Name, len(rec.Body))))
		for _, line := range rec.Body {
			if line == domain.BlankLineSentinel {
				cmd.Println()
				continue
			}
			cmd.Printf("  %s\n", line)
		}
	}
	return nil
}

func runInspectSections(cmd *cobra.Command, args []string) error {
	if inspectService == nil {
		return fmt.Errorf("inspect: %w", errNotConfigured)
	}

	blocks, err := inspectService.Sections(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		cmd.Println(mutedLine("no configured sections found"))
		return nil
	}

	for _, block := range blocks {
		cmd.Println(heading(fmt.Sprintf("%s (%d entries)", block.ID, len(block.Entries))))
		for _, entry := range block.Entries {
			cmd.Printf("  %s\n", escape.Decode(entry))
		}
	}
	return nil
}
