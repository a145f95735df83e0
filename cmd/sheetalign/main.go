package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"

	"sheetAlign/internal/align"
	"sheetAlign/internal/config"
	"sheetAlign/internal/logger"
	"sheetAlign/internal/prompt"
	"sheetAlign/internal/tabfile"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	command := os.Args[1]

	cfg, err := config.LoadConfig("configs/config.toml")
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "align":
		if len(os.Args) < 3 {
			fmt.Println("Error: align command requires a target file path")
			fmt.Println("Usage: sheetalign align <target_file_path>")
			return
		}
		runAlign(cfg, os.Args[2])
	case "align-all":
		runAlignAll(cfg)
	case "census":
		if len(os.Args) < 3 {
			fmt.Println("Error: census command requires a file path")
			fmt.Println("Usage: sheetalign census <file_path>")
			return
		}
		runCensus(os.Args[2])
	case "interactive":
		runInteractive(cfg)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("SheetAlign - Column Layout Alignment Tool")
	fmt.Println("\nUsage:")
	fmt.Println("  sheetalign align <target_file>   - Align one file against the configured base file")
	fmt.Println("  sheetalign align-all             - Align all files in the configured input directory")
	fmt.Println("  sheetalign census <file>         - Show a file's column names and instance counts")
	fmt.Println("  sheetalign interactive           - Prompt for base file and folder, then align")
}

func runAlign(cfg *config.Config, targetPath string) {
	logger.Info("Starting align operation", "target_file", targetPath, "base_file", cfg.Align.BaseFile)

	warnings, err := align.File(cfg.Align.BaseFile, targetPath)
	if err != nil {
		logger.Error("Align operation failed", "error", err)
		fmt.Printf("Error aligning file: %v\n", err)
		printRemediation(err)
		os.Exit(1)
	}

	printWarnings(warnings)
	fmt.Printf("✓ File %s has been aligned successfully!\n", targetPath)
}

func runAlignAll(cfg *config.Config) {
	logger.Info("Starting align-all operation", "input_directory", cfg.Align.InputDirectory)

	results, err := align.Folder(cfg.Align.BaseFile, cfg.Align.InputDirectory)
	if err != nil {
		logger.Error("Align-all operation failed", "error", err)
		fmt.Printf("Error aligning files: %v\n", err)
		os.Exit(1)
	}

	if len(results) == 0 {
		fmt.Printf("No CSV or Excel files found in %s\n", cfg.Align.InputDirectory)
		return
	}

	successCount := 0
	for i, result := range results {
		fileName := filepath.Base(result.Path)
		fmt.Printf("\n[%d/%d] Processing: %s\n", i+1, len(results), fileName)

		if result.Err != nil {
			fmt.Printf("❌ Error aligning file: %v\n", result.Err)
			printRemediation(result.Err)
			continue
		}

		printWarnings(result.Warnings)
		fmt.Printf("✓ Successfully aligned\n")
		successCount++
	}

	fmt.Printf("\n========================================\n")
	fmt.Println("Alignment complete!")
	printSummaryTable(results)

	logger.Info("Align-all operation completed",
		"success_count", successCount,
		"error_count", len(results)-successCount)
}

// printSummaryTable renders the per-file batch outcome.
func printSummaryTable(results []align.FileResult) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"File", "Status", "Padded Columns"})

	for _, result := range results {
		status := "ok"
		if result.Err != nil {
			status = result.Err.Error()
		}
		t.AppendRow(table.Row{filepath.Base(result.Path), status, len(result.Warnings)})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
}

func printWarnings(warnings []align.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println("WARNING: The following columns have insufficient instances in the target file:")
	for _, w := range warnings {
		fmt.Printf("- %s\n", w)
	}
	fmt.Println("Empty columns were added for missing instances.")
}

// printRemediation adds the likely fix for write failures, which in practice
// means the file is open in Excel or marked read-only.
func printRemediation(err error) {
	if !errors.Is(err, tabfile.ErrWriteDenied) {
		return
	}
	fmt.Println("\nPlease make sure that:")
	fmt.Println("1. The file is not currently open in Excel")
	fmt.Println("2. You have write permissions for the file")
	fmt.Println("3. The file is not set to read-only")
	fmt.Println("\nPlease close the file if it's open and try again.")
}

func runCensus(path string) {
	logger.Info("Starting census operation", "file", path)

	tbl, err := tabfile.Load(path)
	if err != nil {
		logger.Error("Census operation failed", "error", err)
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	census := tbl.Census()
	fmt.Printf("%d columns, %d distinct names, %d rows\n\n",
		tbl.ColumnCount(), len(census.Order), tbl.RowCount())

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Column", "Instances"})
	for _, name := range census.Order {
		t.AppendRow(table.Row{name, census.Counts[name]})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

func runInteractive(cfg *config.Config) {
	logger.Info("Starting interactive operation")

	err := prompt.Run(prompt.UIConfig{ResultsPerPage: cfg.UI.ResultsPerPage})
	if err != nil {
		logger.Error("Interactive operation failed", "error", err)
		fmt.Printf("Error running interactive tool: %v\n", err)
		os.Exit(1)
	}
}
