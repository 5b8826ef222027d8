package codegen

import "fmt"

// InvalidExtensionMetadataError reports missing or malformed extension-level
// metadata at generation time.
type InvalidExtensionMetadataError struct {
	Field string
	Value string
}

func (e *InvalidExtensionMetadataError) Error() string {
	return fmt.Sprintf("invalid extension metadata: field %q has unusable value %q", e.Field, e.Value)
}
