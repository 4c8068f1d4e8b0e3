package variant

import (
	"fmt"

	"github.com/recordkit/recordkit/internal/schema"
)

// NoRulesError is returned when a record type resolves to zero field
// rules. A type with nothing to validate almost always means the caller
// forgot to register its field annotations.
type NoRulesError struct {
	Type *schema.Type
}

// Error implements the error interface
func (e *NoRulesError) Error() string {
	return fmt.Sprintf("no field rules registered for type %s or its ancestors", e.Type.Name)
}
