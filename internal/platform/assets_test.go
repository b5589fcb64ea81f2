package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeStateImage(t *testing.T, dir, name string) string {
	t.Helper()
	statesDir := filepath.Join(dir, StatesDirName)
	if err := os.MkdirAll(statesDir, 0755); err != nil {
		t.Fatalf("Failed to create states dir: %v", err)
	}
	path := filepath.Join(statesDir, name)
	if err := os.WriteFile(path, []byte("<svg/>"), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestResolveStateImage(t *testing.T) {
	tempDir := t.TempDir()
	expected := writeStateImage(t, tempDir, "CA.svg")

	path, err := ResolveStateImage(tempDir, "states/CA.svg")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if path != expected {
		t.Errorf("Expected %s, got %s", expected, path)
	}
}

func TestResolveStateImage_CaseFallback(t *testing.T) {
	tempDir := t.TempDir()
	expected := writeStateImage(t, tempDir, "ny.svg")

	path, err := ResolveStateImage(tempDir, "states/NY.svg")
	if err != nil {
		t.Fatalf("Expected lower-case fallback to match, got %v", err)
	}
	if path != expected {
		t.Errorf("Expected %s, got %s", expected, path)
	}
}

func TestResolveStateImage_Missing(t *testing.T) {
	tempDir := t.TempDir()

	_, err := ResolveStateImage(tempDir, "states/TX.svg")
	if !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("Expected ErrAssetNotFound, got %v", err)
	}
}

func TestResolveStateImage_InvalidPaths(t *testing.T) {
	tempDir := t.TempDir()
	invalid := []string{
		"",
		"CA.svg",
		"states/CA.png",
		"states/CAL.svg",
		"states/.svg",
		"states/../etc/passwd.svg",
		"states/1A.svg",
	}

	for _, relPath := range invalid {
		if _, err := ResolveStateImage(tempDir, relPath); err == nil {
			t.Errorf("Expected error for %q", relPath)
		}
	}
}

func TestDefaultAssetDir_Env(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv(AssetDirEnvVar, tempDir)

	if dir := DefaultAssetDir(); dir != tempDir {
		t.Errorf("Expected %s from environment, got %s", tempDir, dir)
	}
}

func TestDefaultAssetDir_NotEmpty(t *testing.T) {
	t.Setenv(AssetDirEnvVar, "")

	if dir := DefaultAssetDir(); dir == "" {
		t.Error("Default asset directory should not be empty")
	}
}
