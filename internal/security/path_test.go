package security

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizePath_AllowsRelativeSubdirectory(t *testing.T) {
	got, err := SanitizePath("results/pi.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == "" {
		t.Error("expected a non-empty cleaned path")
	}
}

func TestSanitizePath_RejectsTraversal(t *testing.T) {
	_, err := SanitizePath("../../../etc/passwd")
	if err == nil {
		t.Error("expected an error for a traversal path")
	}
}

func TestSanitizePath_RejectsEmbeddedTraversal(t *testing.T) {
	_, err := SanitizePath("results/../../etc/passwd")
	if err == nil {
		t.Error("expected an error for an embedded traversal path")
	}
}

func TestSanitizePath_NormalizesHarmlessTraversal(t *testing.T) {
	got, err := SanitizePath("results/../pi.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "pi.txt" {
		t.Errorf("expected Clean to normalize to pi.txt, got %s", got)
	}
}

func TestSanitizePath_AllowsAbsolutePathUnderCwd(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	abs := filepath.Join(cwd, "results", "pi.txt")
	got, err := SanitizePath(abs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == "" {
		t.Error("expected a non-empty cleaned path")
	}
}

func TestSanitizePath_RejectsAbsolutePathOutsideCwd(t *testing.T) {
	_, err := SanitizePath("/etc/passwd")
	if err == nil {
		t.Error("expected an error for an absolute path outside the working directory")
	}
}
