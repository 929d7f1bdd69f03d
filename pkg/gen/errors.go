package gen

import "errors"

var (
	// ErrUnsupported is returned for a version, dimension or flag
	// combination the generator cannot produce.
	ErrUnsupported = errors.New("gen: unsupported configuration")
	// ErrNotSeeded is returned by queries made before ApplySeed.
	ErrNotSeeded = errors.New("gen: generator has no seed applied")
	// ErrInvalidRange is returned for a malformed range or scale.
	ErrInvalidRange = errors.New("gen: invalid range")
	// ErrCacheTooLarge is returned when a range needs more cache cells than
	// the generator permits or than can be addressed.
	ErrCacheTooLarge = errors.New("gen: cache too large")
	// ErrShortCache is returned when a caller-supplied cache is smaller than
	// MinCacheSize for its range.
	ErrShortCache = errors.New("gen: cache smaller than required")
)
