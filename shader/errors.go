package shader

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned when a material names a variant outside the
// closed set.
var ErrUnknownVariant = errors.New("shader: unknown variant")

// VariantError reports an unknown variant by value or by name.
type VariantError struct {
	Variant Variant
	Name    string
}

func (e *VariantError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("shader: unknown variant %q", e.Name)
	}
	return fmt.Sprintf("shader: unknown variant %d", uint8(e.Variant))
}

// Unwrap lets errors.Is match ErrUnknownVariant.
func (e *VariantError) Unwrap() error {
	return ErrUnknownVariant
}
