package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julien-sobczak/nt-bulk/pkg/text"
)

// GoldenFile reads the content of the golden file of the current test.
// The file must exist in directory testdata/ and be named after the test (ex: TestBuild.txt).
func GoldenFile(t *testing.T) string {
	return GoldenFileNamed(t, goldenName(t, ".txt"))
}

// GoldenFileNamed reads the content of the given golden file.
func GoldenFileNamed(t *testing.T, filename string) string {
	path := filepath.Join("testdata", filename)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed reading golden file %s: %v", path, err)
	}
	return string(b)
}

// GoldenLines reads the golden file of the current test and returns the lines
// as they would be entered in the text area.
func GoldenLines(t *testing.T) []string {
	return text.SplitLines(GoldenFile(t))
}

// GoldenTagLines reads the tag lines associated with the golden file of the current test (ex: TestBuild.tags.txt).
func GoldenTagLines(t *testing.T) []string {
	return text.SplitLines(GoldenFileNamed(t, goldenName(t, ".tags.txt")))
}

// SetUpFromGoldenFile creates a temp file based on the golden file of the current test.
func SetUpFromGoldenFile(t *testing.T) string {
	return SetUpFromGoldenFileNamed(t, goldenName(t, ".txt"))
}

// SetUpFromGoldenFileNamed creates a temp file based on the given golden file name.
func SetUpFromGoldenFileNamed(t *testing.T, filename string) string {
	return SetUpFromFileContent(t, filename, GoldenFileNamed(t, filename))
}

// SetUpFromFileContent creates a temp file based on the given file content.
func SetUpFromFileContent(t *testing.T, filename string, content string) string {
	dir := t.TempDir()

	fileOut := filepath.Join(dir, filename)
	err := os.WriteFile(fileOut, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}

	return fileOut
}

// goldenName returns the file name for the current test.
// Subtests are separated by "_" (ex: TestBuild/Tab => TestBuild_Tab.txt).
func goldenName(t *testing.T, extension string) string {
	return strings.ReplaceAll(t.Name(), "/", "_") + extension
}
