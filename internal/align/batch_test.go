package align

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetAlign/internal/tabfile"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFileAlignsAndSavesInPlace(t *testing.T) {
	dir := t.TempDir()
	basePath := filepath.Join(dir, "base.csv")
	targetPath := filepath.Join(dir, "target.csv")

	writeFile(t, basePath, "A,B,B\nx,y,z\n")
	writeFile(t, targetPath, "B,Extra,A\n3,ignored,1\n4,ignored,2\n")

	warnings, err := File(basePath, targetPath)
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Equal(t, Warning{Column: "B", Required: 2, Found: 1}, warnings[0])

	aligned, err := tabfile.Load(targetPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "B"}, aligned.Header())
	assert.Equal(t, 2, aligned.RowCount())
	assert.Equal(t, "1", aligned.Columns[0].Cells[0].Value)
	assert.Equal(t, "3", aligned.Columns[1].Cells[0].Value)
	assert.False(t, aligned.Columns[2].Cells[0].Valid)
}

func TestFileMissingBase(t *testing.T) {
	dir := t.TempDir()
	targetPath := filepath.Join(dir, "target.csv")
	writeFile(t, targetPath, "A\n1\n")

	_, err := File(filepath.Join(dir, "missing.csv"), targetPath)
	assert.Error(t, err)
}

func TestFolderContinuesPastFailingFiles(t *testing.T) {
	dir := t.TempDir()
	basePath := filepath.Join(dir, "base.csv")
	writeFile(t, basePath, "A,B\nx,y\n")

	folder := filepath.Join(dir, "input")
	require.NoError(t, os.Mkdir(folder, 0755))

	// Ragged rows make this one unreadable.
	writeFile(t, filepath.Join(folder, "bad.csv"), "A,B\n1\n")
	writeFile(t, filepath.Join(folder, "good.csv"), "B,A\n2,1\n")
	writeFile(t, filepath.Join(folder, "notes.txt"), "not tabular")

	results, err := Folder(basePath, folder)
	require.NoError(t, err)
	require.Len(t, results, 2)

	byName := map[string]FileResult{}
	for _, r := range results {
		byName[filepath.Base(r.Path)] = r
	}

	assert.Error(t, byName["bad.csv"].Err)
	require.NoError(t, byName["good.csv"].Err)

	aligned, err := tabfile.Load(filepath.Join(folder, "good.csv"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, aligned.Header())
	assert.Equal(t, "1", aligned.Columns[0].Cells[0].Value)
	assert.Equal(t, "2", aligned.Columns[1].Cells[0].Value)
}

func TestFolderValidatesUpFront(t *testing.T) {
	dir := t.TempDir()
	basePath := filepath.Join(dir, "base.csv")
	writeFile(t, basePath, "A\n1\n")

	_, err := Folder(filepath.Join(dir, "nope.csv"), dir)
	assert.ErrorContains(t, err, "base file not found")

	_, err = Folder(basePath, filepath.Join(dir, "nodir"))
	assert.ErrorContains(t, err, "folder not found")

	_, err = Folder(basePath, basePath)
	assert.ErrorContains(t, err, "not a folder")
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.csv"), "A\n")
	writeFile(t, filepath.Join(dir, "a.xlsx"), "placeholder")
	writeFile(t, filepath.Join(dir, "skip.txt"), "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.csv"), 0755))

	files, err := ListFiles(dir)
	require.NoError(t, err)

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	assert.Equal(t, []string{"a.xlsx", "b.csv"}, names)
}
