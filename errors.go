package pathedit

import "errors"

// Errors returned by PathMutator operations and Interpolate. They are always
// wrapped with positional context; match them with errors.Is.
var (
	// ErrIndexOutOfRange is returned when a subpath or command index does not
	// exist in the path being edited.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidParameter is returned when a parametric value lies outside the
	// open interval required by an operation, such as splitting at t=0 or t=1.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotSplit is returned when an unsplit is requested on a command that
	// has no recorded split partner.
	ErrNotSplit = errors.New("command is not split")

	// ErrNotClosed is returned when an operation that requires a closed
	// subpath is requested on an open one.
	ErrNotClosed = errors.New("subpath is not closed")

	// ErrNotMorphable is returned when interpolation is requested between two
	// structurally incompatible paths.
	ErrNotMorphable = errors.New("paths are not morphable")
)
