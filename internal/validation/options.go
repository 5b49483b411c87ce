package validation

import (
	"fmt"
	"strings"

	"subgrab/internal/domain/errs"
	"subgrab/internal/models"
)

// ValidateOptions checks the invariants of o: at least one URL and a known subtitle mode.
func ValidateOptions(o *models.Options) error {
	if o == nil {
		return fmt.Errorf("%w: options passed in nil", errs.ErrConfiguration)
	}
	if len(o.URLs) == 0 {
		return fmt.Errorf("%w: at least one URL is required", errs.ErrConfiguration)
	}
	for i, u := range o.URLs {
		if strings.TrimSpace(u) == "" {
			return fmt.Errorf("%w: URL at position %d is empty", errs.ErrConfiguration, i+1)
		}
	}
	if !o.Mode.Valid() {
		return fmt.Errorf("%w: invalid mode %q (choose from %v)", errs.ErrConfiguration, o.Mode, models.SubtitleModes)
	}
	return nil
}
