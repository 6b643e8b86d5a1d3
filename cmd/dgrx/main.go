// Package main provides the CLI entry point for dgrx-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nbpetco/dgrx-go/pkg/dgrx"
	"github.com/nbpetco/dgrx-go/pkg/dgrx/models"
	"github.com/nbpetco/dgrx-go/pkg/dgrx/output"
	"github.com/nbpetco/dgrx-go/pkg/dgrx/schema"
)

var (
	outputPath string
	pretty     bool
	schemaPath string
	strict     bool
	noFallback bool
	verbose    bool
	groupsDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dgrx [report.xlsx]",
		Short: "Extract structured records from Daily Geological Reports",
		Long: `dgrx-go extracts well-header fields, depth readings, formation tops,
gas-composition samples and lithology intervals from a DGR workbook
and outputs JSON. Groups that cannot be extracted fall back to the
built-in demo records unless --no-fallback is given.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&schemaPath, "schema", "", "YAML extraction schema (default: built-in)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail on any group extraction error instead of falling back")
	rootCmd.Flags().BoolVar(&noFallback, "no-fallback", false, "Leave failed groups empty instead of using demo records")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&groupsDir, "groups-dir", "", "Directory for per-group output files")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("logger setup failed: %w", err)
	}
	defer logger.Sync()

	opts := dgrx.Options{
		Logger: logger,
		Strict: strict,
	}
	if noFallback {
		fallback := false
		opts.Fallback = &fallback
	}
	if schemaPath != "" {
		sc, err := schema.Load(schemaPath)
		if err != nil {
			return err
		}
		opts.Schema = sc
	}

	report, err := dgrx.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if groupsDir == "" {
		fmt.Println(string(jsonData))
	}

	if groupsDir != "" {
		if err := writeGroupFiles(report, groupsDir); err != nil {
			return fmt.Errorf("failed to write group files: %w", err)
		}
	}

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func writeGroupFiles(report *models.Report, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	groups := map[string]any{
		models.GroupHeader:     report.Well,
		models.GroupDepths:     report.Depths,
		models.GroupFormations: report.Formations,
		models.GroupGas:        report.Gas,
		models.GroupLithology:  report.Lithology,
	}

	for name, group := range groups {
		jsonData, err := output.GroupToJSON(group, pretty)
		if err != nil {
			return err
		}
		filename := filepath.Join(dir, name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
