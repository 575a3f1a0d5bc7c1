package core

import (
	"errors"
	"fmt"
)

// UnknownLevelError reports a severity lookup that matched no canonical
// level: either a name outside the known set or a rank outside the
// canonical five. Exactly one of Name and Rank is meaningful.
type UnknownLevelError struct {
	// Name is the severity name that failed to resolve, if the lookup
	// was by name.
	Name string

	// Rank is the rank that failed to resolve, if the lookup was by rank.
	Rank Level
}

// Error implements the error interface.
func (e *UnknownLevelError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("unknown severity name: %q", e.Name)
	}
	return fmt.Sprintf("unknown severity rank: %d", int(e.Rank))
}

// IsUnknownLevel reports whether err is an *UnknownLevelError.
func IsUnknownLevel(err error) bool {
	var target *UnknownLevelError
	return errors.As(err, &target)
}
