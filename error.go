package dispatch

import (
	"errors"
	"fmt"
)

// An AttributeError reports a name absent from both an object's own fields
// and its table. It is the only error the lookup path produces; a missing
// name is always reported, never defaulted.
type AttributeError struct {
	// Name is the name that was looked up.
	Name string
	// On describes where the lookup happened: the table name, or "object"
	// for a table-less object.
	On string
}

// Error returns the error message.
func (e *AttributeError) Error() string {
	return fmt.Sprintf("%s has no field or operation %q", e.On, e.Name)
}

// IsAttributeError reports whether err is an *AttributeError.
func IsAttributeError(err error) bool {
	var ae *AttributeError
	return errors.As(err, &ae)
}
