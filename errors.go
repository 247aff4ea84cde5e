package arena

import "errors"

// ErrAllocationFailed is returned by the Try* surface when the configured
// PageSource cannot supply a block of the requested size. The arena remains
// usable after this error; callers may retry or abort.
var ErrAllocationFailed = errors.New("arena: allocation failed")

// ErrClosed is returned when an operation is attempted on an arena that has
// already been closed via Close.
var ErrClosed = errors.New("arena: use after Close")
