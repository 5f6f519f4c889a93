package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a catalog name is safe for use as a filename.
// Names are bare file stems: separators and dots are rejected so a name can
// neither leave the base directory nor change the .yaml extension.
func ValidateAssetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
