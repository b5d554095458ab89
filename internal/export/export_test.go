package export

import (
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/copyforge/copyforge/internal/models"
)

func TestFilename(t *testing.T) {
	at := time.Date(2026, 8, 26, 15, 4, 5, 0, time.UTC)

	if got := Filename(models.ModeAdCopy, at); got != "prompt-ad-copy-20260826-150405.txt" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename(models.ModeHeadlines, at); got != "prompt-headlines-20260826-150405.txt" {
		t.Errorf("Filename = %q", got)
	}
}

func TestWritePrompt(t *testing.T) {
	dir := t.TempDir()

	path, err := WritePrompt(dir, models.ModeAdCopy, "the prompt body\n")
	if err != nil {
		t.Fatalf("WritePrompt: %v", err)
	}

	pattern := regexp.MustCompile(`prompt-ad-copy-\d{8}-\d{6}\.txt$`)
	if !pattern.MatchString(path) {
		t.Errorf("unexpected filename: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(data) != "the prompt body\n" {
		t.Errorf("file content = %q", data)
	}
}
