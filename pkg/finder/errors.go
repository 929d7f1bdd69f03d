package finder

import "errors"

var (
	// ErrUnsupported is returned for a structure that does not exist in the
	// requested version or has no region placement.
	ErrUnsupported = errors.New("finder: unsupported structure")
	// ErrInvalidCursor is returned when a stronghold cursor's fields are
	// inconsistent with any state the search can produce.
	ErrInvalidCursor = errors.New("finder: invalid stronghold cursor")
)
