package column

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// UnknownMappingError is returned when a preset identifier is not registered.
type UnknownMappingError struct {
	ID string
}

func (e *UnknownMappingError) Error() string {
	return fmt.Sprintf("unknown mapping: %q", e.ID)
}

func unknownMapping(id string, known []string) error {
	err := errors.WithStack(&UnknownMappingError{ID: id})
	if len(known) == 0 {
		return errors.WithHint(err, "no known mappings are registered")
	}

	return errors.WithHintf(err, "known mappings: %s", strings.Join(known, ", "))
}
