package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/config"
	"github.com/jonathan/resume-site/internal/loader"
	"github.com/jonathan/resume-site/internal/observability"
	"github.com/jonathan/resume-site/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a résumé record against the schema",
	Long: `Loads a JSON or YAML résumé record, checks it against schemas/resume.schema.json and prints a summary of its sections.

An additional schema can be given with --schema to enforce local rules (for example required contact fields).`,
	RunE: runValidate,
}

var (
	validateData   string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateData, "data", "d", "", "Path to résumé record (default data/resume.json)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to an additional JSON Schema the record must satisfy")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	path := validateData
	if path == "" {
		cfg, err := config.Resolve("")
		if err != nil {
			return err
		}
		path = cfg.Data
	}

	record, err := loader.Load(path)
	if err == nil && validateSchema != "" {
		err = validateExtraSchema(path, validateSchema)
	}
	if err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			for _, fe := range schemaErr.Errors {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  ✗ %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("%s is not a valid résumé record (%d errors)", path, len(schemaErr.Errors))
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is a valid résumé record\n", path)
	observability.NewPrinter(cmd.OutOrStdout()).PrintRecord(record)
	return nil
}

// validateExtraSchema checks the record file against a user supplied schema.
// The schema path is also looked up from parent directories.
func validateExtraSchema(recordPath, schemaPath string) error {
	if resolved := schemas.ResolveSchemaPath(schemaPath); resolved != "" {
		schemaPath = resolved
	}

	format := loader.FormatFromPath(recordPath)
	if format == loader.FormatJSON {
		return schemas.ValidateJSON(schemaPath, recordPath)
	}

	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}
	content, err := os.ReadFile(recordPath)
	if err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}
	jsonContent, err := loader.ToJSON(content, format)
	if err != nil {
		return err
	}
	return schemas.ValidateJSONString(string(schemaContent), string(jsonContent))
}
