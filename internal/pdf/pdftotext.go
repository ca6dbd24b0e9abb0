// Package pdf extracts and skims text from PDF files by shelling out to
// pdftotext.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"notekit/internal/scratch"
)

// CheckTool verifies pdftotext is available before any extraction begins.
func CheckTool() error {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return fmt.Errorf("pdftotext not found in PATH: %w", err)
	}
	return nil
}

// ExtractText runs pdftotext over the given 1-based page range and returns
// the extracted text. pdftotext writes into a scratch file that is removed
// once read; an aborted run can leave it behind in the temp directory.
func ExtractText(path string, first, last int) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("PDF not found: %w", err)
	}

	scratchPath := filepath.Join(os.TempDir(), "notekit-"+scratch.ID()+".txt")
	defer os.Remove(scratchPath)

	cmd := exec.Command("pdftotext",
		"-f", strconv.Itoa(first),
		"-l", strconv.Itoa(last),
		path, scratchPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pdftotext failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	b, err := os.ReadFile(scratchPath)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
