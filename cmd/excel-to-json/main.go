// Package main provides the CLI entry point for excel-to-json.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ryan-ajility/excel-to-json/internal/config"
	"github.com/ryan-ajility/excel-to-json/pkg/cascade"
	"github.com/ryan-ajility/excel-to-json/pkg/cascade/excel"
	"github.com/ryan-ajility/excel-to-json/pkg/cascade/models"
	"github.com/ryan-ajility/excel-to-json/pkg/cascade/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sheetName  string
	sheetNames []string
	formatName string
	outputPath string
	configPath string
	summary    bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "excel-to-json [input.xlsx]",
		Short: "Import cascade field data from Excel workbooks",
		Long: `excel-to-json reads hierarchical cascade field rows from an Excel
workbook, validates and cleans them, and emits JSON, CSV, or a
PHP-compatible array on stdout for a calling web backend. Diagnostics go
to stderr so stdout stays parseable.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&sheetName, "sheet", "s", "", `Sheet name to process (default "Cascade Fields")`)
	rootCmd.Flags().StringSliceVar(&sheetNames, "sheets", nil, "Process multiple sheets and group records per sheet")
	rootCmd.Flags().StringVarP(&formatName, "output", "o", "", "Output format: json, csv, or php (default json)")
	rootCmd.Flags().StringVarP(&outputPath, "file", "f", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Defaults file providing sheet, format, and log_level")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Print a human-readable summary instead of full output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	start := time.Now()
	inputPath := args[0]

	defaults, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if sheetName == "" {
		sheetName = defaults.Sheet
	}
	if formatName == "" {
		formatName = defaults.Format
	}

	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	logger, err := newLogger(defaults.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync()

	// A missing input file is reported inside the payload so the calling
	// backend can parse it; only argument errors exit non-zero.
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		result := models.Failure(
			fmt.Sprintf("File not found: %s", inputPath),
			&models.ErrorDetails{File: inputPath},
			models.Metadata{ProcessingTimeMS: time.Since(start).Milliseconds()},
		)
		return emit(&result, format)
	}

	logger.Info("starting import",
		zap.String("file", inputPath),
		zap.String("format", string(format)))

	result := importWorkbook(inputPath, logger, start)

	if summary {
		fmt.Println(output.Summary(&result))
		return nil
	}
	return emit(&result, format)
}

func importWorkbook(path string, logger *zap.Logger, start time.Time) models.Result {
	reader, err := excel.Open(path, logger)
	if err != nil {
		return failureResult(path, err, start)
	}
	defer reader.Close()

	processor := cascade.NewProcessor(logger)

	if len(sheetNames) > 0 {
		results, meta, err := processor.Aggregate(reader, sheetNames)
		if err != nil {
			return failureResult(path, err, start)
		}
		return models.MultiSheetSuccess(results, meta)
	}

	records, meta, err := processor.ProcessSheet(reader, sheetName)
	if err != nil {
		return failureResult(path, err, start)
	}
	return models.Success(records, meta)
}

func failureResult(path string, err error, start time.Time) models.Result {
	details := &models.ErrorDetails{File: path}
	var notFound *cascade.SheetNotFoundError
	if errors.As(err, &notFound) {
		details.AvailableSheets = notFound.Available
	}
	return models.Failure(err.Error(), details,
		models.Metadata{ProcessingTimeMS: time.Since(start).Milliseconds()})
}

func emit(result *models.Result, format output.Format) error {
	rendered, err := output.Render(result, format)
	if err != nil {
		return err
	}
	if outputPath != "" {
		return output.WriteFile(rendered, outputPath)
	}
	fmt.Println(rendered)
	return nil
}

// newLogger builds a stderr-only zap logger so stdout carries nothing but
// the serialized payload.
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	lvl := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		lvl = parsed
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}
