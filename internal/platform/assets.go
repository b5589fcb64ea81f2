package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Asset layout constants
const (
	StatesDirName      = "states"
	StateImageExt      = ".svg"
	StateAbbrevLength  = 2
	AssetDirEnvVar     = "ZIP_LOOKUP_ASSETS"
	DefaultAssetDirRel = "."
)

// ErrAssetNotFound is returned when no graphic exists for a state.
var ErrAssetNotFound = errors.New("state graphic not found")

// DefaultAssetDir returns the directory expected to contain states/.
// Lookup order: $ZIP_LOOKUP_ASSETS, the working directory, the executable's directory.
func DefaultAssetDir() string {
	if dir := os.Getenv(AssetDirEnvVar); dir != "" {
		return dir
	}

	if wd, err := os.Getwd(); err == nil && hasStatesDir(wd) {
		return wd
	}

	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		if hasStatesDir(dir) {
			return dir
		}
	}

	return DefaultAssetDirRel
}

// ResolveStateImage maps a relative states/<ABBR>.svg path onto assetDir and
// returns the file that exists. The abbreviation is matched as given first,
// then upper-cased, then lower-cased.
func ResolveStateImage(assetDir, relPath string) (string, error) {
	abbr, err := stateAbbreviation(relPath)
	if err != nil {
		return "", err
	}

	for _, variant := range []string{abbr, strings.ToUpper(abbr), strings.ToLower(abbr)} {
		candidate := filepath.Join(assetDir, StatesDirName, variant+StateImageExt)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s in %s", ErrAssetNotFound, abbr, assetDir)
}

// stateAbbreviation extracts and validates ABBR from states/<ABBR>.svg
func stateAbbreviation(relPath string) (string, error) {
	relPath = filepath.ToSlash(relPath)
	if !strings.HasPrefix(relPath, StatesDirName+"/") || !strings.HasSuffix(relPath, StateImageExt) {
		return "", fmt.Errorf("not a state graphic path: %q", relPath)
	}

	abbr := strings.TrimSuffix(strings.TrimPrefix(relPath, StatesDirName+"/"), StateImageExt)
	if len(abbr) != StateAbbrevLength {
		return "", fmt.Errorf("invalid state abbreviation %q", abbr)
	}
	for _, r := range abbr {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return "", fmt.Errorf("invalid state abbreviation %q", abbr)
		}
	}
	return abbr, nil
}

func hasStatesDir(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, StatesDirName))
	return err == nil && info.IsDir()
}
