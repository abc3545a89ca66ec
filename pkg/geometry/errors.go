package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is wrapped by every construction error in this package
var ErrInvalidGeometry = errors.New("invalid geometry")

// Construction errors
var (
	ErrTooFewVertices  = fmt.Errorf("%w: polygon needs at least 3 vertices", ErrInvalidGeometry)
	ErrDuplicateVertex = fmt.Errorf("%w: consecutive vertices coincide", ErrInvalidGeometry)
	ErrCollinear       = fmt.Errorf("%w: points are collinear", ErrInvalidGeometry)
	ErrNonPlanar       = fmt.Errorf("%w: vertices are not coplanar", ErrInvalidGeometry)
	ErrNotConvex       = fmt.Errorf("%w: polygon is concave or its vertices are misordered", ErrInvalidGeometry)
	ErrBadRadius       = fmt.Errorf("%w: radius must be positive", ErrInvalidGeometry)
	ErrBadHeight       = fmt.Errorf("%w: height must be positive", ErrInvalidGeometry)
	ErrZeroDirection   = fmt.Errorf("%w: zero-length direction", ErrInvalidGeometry)
)
