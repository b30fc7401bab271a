package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParsePath_AbsolutePath(t *testing.T) {
	absPath, _ := os.Getwd()
	result, err := ParsePath(absPath)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result != absPath {
		t.Errorf("Expected %s, got %s", absPath, result)
	}
}

func TestParsePath_HomeDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	testPath := "~/testdir/backup.zip"
	expected := filepath.Join(home, "testdir", "backup.zip")
	result, err := ParsePath(testPath)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	absExpected, _ := filepath.Abs(expected)
	if result != absExpected {
		t.Errorf("Expected %s, got %s", absExpected, result)
	}
}

func TestParsePath_RelativePath(t *testing.T) {
	relPath := "some/relative/backup.zip"
	result, err := ParsePath(relPath)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	absExpected, _ := filepath.Abs(relPath)
	if result != absExpected {
		t.Errorf("Expected %s, got %s", absExpected, result)
	}
}

func TestEnsureDir_CreatesNestedDirs(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b", "c")
	if err := EnsureDir(target); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Expected directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory", target)
	}
}

func TestEnsureDir_ExistingDir(t *testing.T) {
	base := t.TempDir()
	if err := EnsureDir(base); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}
