package internal

import "github.com/pkg/errors"

// The mesh mutators call each other several levels deep, and threading an
// error return through every cycle-splicing helper would bury the actual
// topology code. Instead, internal failures panic, and the public API
// recovers to convert the panic to an error.

// meshError is the concrete panic payload fatalf throws. A defined struct
// rather than an error interface, so that the recovery shim cannot be
// fooled by unrelated panic values (a runtime.Error from an index bug also
// implements error, and must not be swallowed as a construction failure).
type meshError struct{ error }

// Construction-time error kinds. Everything here is fatal: a failed
// insertion leaves no usable mesh, so no partial state is ever exposed.
var (
	// ErrLengthMismatch reports x and y sequences of different lengths.
	ErrLengthMismatch = errors.New("x and y must be the same length")

	// ErrInsufficientNodes reports fewer than three input nodes.
	ErrInsufficientNodes = errors.New("at least three nodes are required for meshing")

	// ErrCollinearSeed reports that the first three nodes are collinear, so
	// no seed triangle exists for the remaining insertions to extend.
	ErrCollinearSeed = errors.New("the first three nodes must not be collinear")

	// ErrMeshInvariant reports an internal consistency failure: a boundary
	// walk that does not close, a point location that does not terminate, a
	// duplicate node. It signals corrupted or degenerate geometry and is
	// never retried.
	ErrMeshInvariant = errors.New("mesh invariant violated")
)

// Panic with a meshError wrapping the given kind, so the recovery shim
// hands callers something errors.Is can classify.
func fatalf(kind error, format string, args ...interface{}) {
	panic(meshError{errors.Wrapf(kind, format, args...)})
}

// HandleMeshPanicRecover converts a recovered meshError back to an error.
// Any other panic value is re-raised; it is a bug, not bad input.
func HandleMeshPanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(meshError); ok {
			return err.error
		}
		panic(r)
	}
	return nil
}
