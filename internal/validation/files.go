// Package validation handles validation of user input and filesystem preconditions.
package validation

import (
	"errors"
	"fmt"
	"os"

	"subgrab/internal/domain/consts"
	"subgrab/internal/domain/errs"
	"subgrab/internal/domain/logger"
)

// EnsureCookieFile checks that a cookies file exists at path. Contents are not inspected.
func EnsureCookieFile(path string) error {
	logger.Pl.D(3, "Statting cookie file %q...", path)

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s\n%s", errs.ErrMissingCookieFile, path, consts.CookieHint)
	case err != nil:
		return fmt.Errorf("%w: %s (%v)\n%s", errs.ErrMissingCookieFile, path, err, consts.CookieHint)
	case info.IsDir():
		return fmt.Errorf("%w: %s is a directory\n%s", errs.ErrMissingCookieFile, path, consts.CookieHint)
	}
	return nil
}

// EnsureDirectory creates dir and any missing parents. Existing directories are left alone.
func EnsureDirectory(dir string) error {
	if dir == "" {
		return fmt.Errorf("%w: output directory is empty", errs.ErrFilesystem)
	}
	logger.Pl.D(3, "Ensuring directory %q exists...", dir)

	if err := os.MkdirAll(dir, consts.PermsSubtitleDir); err != nil {
		return fmt.Errorf("%w: failed to create output directory %q: %v", errs.ErrFilesystem, dir, err)
	}
	return nil
}
