package syntree

// Point is a zero-based position in source text, counted in rows and
// byte columns, matching the engine's coordinate system.
type Point struct {
	Row    uint
	Column uint
}

// Before reports whether p comes before other in source order.
func (p Point) Before(other Point) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Column < other.Column
}

// Extent is a half-open [Start, End) range over an ordinate type,
// either byte offsets or Points.
type Extent[T any] struct {
	Start T
	End   T
}

// ByteExtent is the byte-offset span of a node in the parsed source.
type ByteExtent = Extent[uint]

// PointExtent is the row/column span of a node in the parsed source.
type PointExtent = Extent[Point]
