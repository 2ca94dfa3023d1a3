// Package pathedit implements structural editing of vector paths. A Path is an
// immutable ordered collection of subpaths, each an ordered sequence of drawing
// commands (move, line, quadratic Bézier, cubic Bézier, close). Edits never
// mutate a Path; a PathMutator accumulates operations (splitting a command at a
// parametric point, merging it back, reversing a contour, rotating its start
// point, partitioning a contour in two) and builds a new Path.
//
// Paths additionally support nearest-point projection and hit-testing of
// pointer coordinates, and morphing: two Paths with identical subpath and
// command-kind structure can be linearly interpolated point by point to
// produce in-between shapes.
//
// All coordinates are in the path's local space; composing and inverting the
// host's transform stack is the caller's responsibility (see Matrix).
package pathedit
