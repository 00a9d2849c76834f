package multirender

// LineCap specifies how stroke ends are drawn.
type LineCap uint8

// Line cap styles.
const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// String returns a human-readable name for the line cap.
func (c LineCap) String() string {
	switch c {
	case CapButt:
		return "Butt"
	case CapRound:
		return "Round"
	case CapSquare:
		return "Square"
	default:
		return "Unknown"
	}
}

// LineJoin specifies how stroke corners are drawn.
type LineJoin uint8

// Line join styles.
const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// String returns a human-readable name for the line join.
func (j LineJoin) String() string {
	switch j {
	case JoinMiter:
		return "Miter"
	case JoinRound:
		return "Round"
	case JoinBevel:
		return "Bevel"
	default:
		return "Unknown"
	}
}

// FillRule determines how self-intersecting paths are filled.
type FillRule uint8

// Fill rules.
const (
	FillNonZero FillRule = iota
	FillEvenOdd
)

// String returns a human-readable name for the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillNonZero:
		return "NonZero"
	case FillEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// StrokeStyle describes how a path outline is stroked.
type StrokeStyle struct {
	// Width is the stroke width.
	Width float64

	// Cap is the style for unclosed subpath ends.
	Cap LineCap

	// Join is the style for segment corners.
	Join LineJoin

	// MiterLimit bounds the length of miter joins before they fall
	// back to bevel.
	MiterLimit float64

	// DashPattern holds alternating dash and gap lengths.
	// An empty pattern means a solid line.
	DashPattern []float64

	// DashOffset is the starting offset into the dash pattern.
	DashOffset float64
}

// DefaultStrokeStyle returns a 1px solid stroke with butt caps and
// miter joins.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      1,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 4,
	}
}

// IsDashed reports whether the stroke has a dash pattern.
func (s *StrokeStyle) IsDashed() bool {
	return len(s.DashPattern) > 0
}
