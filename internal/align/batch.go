package align

import (
	"fmt"
	"os"
	"path/filepath"

	"sheetAlign/internal/logger"
	"sheetAlign/internal/tabfile"
	"sheetAlign/internal/table"
)

// FileResult is the outcome of aligning one target file. Err is set when the
// file could not be processed; Warnings list reference columns the target was
// short on.
type FileResult struct {
	Path     string
	Warnings []Warning
	Err      error
}

// File aligns a single target file against the base file's column layout and
// writes the result back over the target path.
func File(basePath, targetPath string) ([]Warning, error) {
	base, err := tabfile.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read base file %s: %w", basePath, err)
	}
	return fileAgainst(base.Census(), targetPath)
}

// fileAgainst runs one reconciliation with an already-computed base census,
// so a folder run reads the base file once.
func fileAgainst(ref *table.ColumnCensus, targetPath string) ([]Warning, error) {
	target, err := tabfile.Load(targetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read target file %s: %w", targetPath, err)
	}

	aligned, warnings := Reconcile(ref, target)

	if err := tabfile.Save(aligned, targetPath); err != nil {
		return warnings, fmt.Errorf("failed to save %s: %w", targetPath, err)
	}

	logger.Info("Aligned file",
		"file", filepath.Base(targetPath),
		"columns", aligned.ColumnCount(),
		"rows", aligned.RowCount(),
		"warnings", len(warnings))

	return warnings, nil
}

// Folder aligns every .csv and .xlsx file directly inside folderPath against
// the base file. Each file is processed independently; a failing file records
// its error in the result and the batch continues. Only a missing base file
// or folder aborts the run.
func Folder(basePath, folderPath string) ([]FileResult, error) {
	basePath = tabfile.NormalizePath(basePath)
	folderPath = tabfile.NormalizePath(folderPath)

	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("base file not found: %s", basePath)
	}
	info, err := os.Stat(folderPath)
	if err != nil {
		return nil, fmt.Errorf("folder not found: %s", folderPath)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a folder: %s", folderPath)
	}

	base, err := tabfile.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read base file %s: %w", basePath, err)
	}
	ref := base.Census()

	files, err := ListFiles(folderPath)
	if err != nil {
		return nil, err
	}

	logger.Info("Starting folder alignment",
		"base_file", filepath.Base(basePath),
		"folder", folderPath,
		"file_count", len(files))

	results := make([]FileResult, 0, len(files))
	for _, path := range files {
		warnings, err := fileAgainst(ref, path)
		if err != nil {
			logger.Error("Failed to align file", "file", filepath.Base(path), "error", err)
		}
		results = append(results, FileResult{Path: path, Warnings: warnings, Err: err})
	}

	return results, nil
}

// ListFiles returns the supported tabular files directly inside folderPath,
// in directory order. Subdirectories are not descended into.
func ListFiles(folderPath string) ([]string, error) {
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", folderPath, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if tabfile.Supported(entry.Name()) {
			files = append(files, filepath.Join(folderPath, entry.Name()))
		}
	}
	return files, nil
}
