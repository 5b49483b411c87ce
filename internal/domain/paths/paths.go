// Package paths resolves subgrab's default file and directory locations.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	progDir      = "subgrab"
	cookieDir    = "cookies"
	cookieFile   = "youtube.txt"
	outputsDir   = "outputs"
	subtitlesDir = "subtitles"
)

// DefaultProjectRoot returns the directory the outputs/ tree is rooted under.
func DefaultProjectRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// DefaultCookiesPath returns the per-user default cookies.txt location.
func DefaultCookiesPath() string {
	return filepath.Join(xdg.ConfigHome, progDir, cookieDir, cookieFile)
}

// DefaultOutputDir returns <root>/outputs/<YYYY>/<MM>/<DD>/subtitles for the given time.
func DefaultOutputDir(root string, t time.Time) string {
	return filepath.Join(
		root,
		outputsDir,
		fmt.Sprintf("%04d", t.Year()),
		fmt.Sprintf("%02d", int(t.Month())),
		fmt.Sprintf("%02d", t.Day()),
		subtitlesDir,
	)
}
