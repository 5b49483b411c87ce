package parsing

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// ExpandPath expands a leading ~ to the user's home directory and cleans the result.
func ExpandPath(p string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("could not expand path %q: %w", p, err)
	}
	return filepath.Clean(expanded), nil
}
