// Package export writes the composed prompt to a plain-text file. The
// timestamp appears only in the filename; composed output itself never
// depends on the clock.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/copyforge/copyforge/internal/models"
)

const timestampLayout = "20060102-150405"

// Filename builds the export filename: prompt-{mode}-{timestamp}.txt.
func Filename(mode models.Mode, t time.Time) string {
	return fmt.Sprintf("prompt-%s-%s.txt", mode.Slug(), t.Format(timestampLayout))
}

// WritePrompt saves content under dir and returns the written path. An empty
// dir means the current working directory.
func WritePrompt(dir string, mode models.Mode, content string) (string, error) {
	if dir == "" {
		dir = "."
	}

	path := filepath.Join(dir, Filename(mode, time.Now()))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write prompt file: %w", err)
	}
	return path, nil
}
