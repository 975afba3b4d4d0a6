// Package sdcerr holds sentinel errors shared across the sdc module.
package sdcerr

import "errors"

// Sentinel errors for common cases across bigrams, matcher and the
// surrounding corpus/store/cache layers.
var (
	ErrInvalidThreshold = errors.New("sdc: threshold must be in (0, 1]")
	ErrEndIterator      = errors.New("sdc: iterator already at end")
	ErrCellOutOfRange   = errors.New("sdc: matrix cell out of range")
	ErrEmptyQuery       = errors.New("sdc: query profile is empty")
	ErrIteratorLive     = errors.New("sdc: matcher has a live iterator")
	ErrNotFound         = errors.New("sdc: not found")
	ErrInvalidConfig    = errors.New("sdc: invalid configuration")
)
