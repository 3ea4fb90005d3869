package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/observability"
	"github.com/jonathan/resume-site/internal/placeholders"
	"github.com/jonathan/resume-site/internal/site"
)

var checkTemplateCmd = &cobra.Command{
	Use:   "check-template",
	Short: "Report missing and unknown placeholders in a template",
	Long: `Compares the {{PLACEHOLDER}} tokens of an HTML template with the placeholders the renderer fills.

Missing placeholders mean a section will not appear on the page; unknown ones are left verbatim in the output.
With --strict any mismatch is an error.`,
	RunE: runCheckTemplate,
}

var (
	checkTemplatePath   string
	checkTemplateStrict bool
)

func init() {
	checkTemplateCmd.Flags().StringVarP(&checkTemplatePath, "template", "t", "", "Path to HTML template (default: built-in)")
	checkTemplateCmd.Flags().BoolVar(&checkTemplateStrict, "strict", false, "Exit with an error when any placeholder is missing or unknown")

	rootCmd.AddCommand(checkTemplateCmd)
}

func runCheckTemplate(cmd *cobra.Command, _ []string) error {
	template, err := site.LoadTemplate(checkTemplatePath)
	if err != nil {
		return err
	}

	missing, unknown := placeholders.CheckTemplate(template)

	missingNames := make([]string, len(missing))
	for i, key := range missing {
		missingNames[i] = string(key)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintTemplateCheck(missingNames, unknown)

	if checkTemplateStrict && (len(missing) > 0 || len(unknown) > 0) {
		return fmt.Errorf("template has %d missing and %d unknown placeholders", len(missing), len(unknown))
	}
	return nil
}
