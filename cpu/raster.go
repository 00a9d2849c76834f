package cpu

import (
	"math"
	"sort"

	"github.com/dest-hq/multirender"
)

// subsamples is the number of vertical samples per pixel row.
// Horizontal coverage is computed analytically per span, so 4 vertical
// samples give 1/4-pixel quality in Y and continuous quality in X.
const subsamples = 4

// edge is a non-horizontal line segment normalized so y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	wind   int8 // +1 downward, -1 upward (before normalization)
}

const edgeEpsilon = 1e-9

// addEdge appends the segment (x0,y0)-(x1,y1) to the list, dropping
// horizontal segments.
func addEdge(edges []edge, x0, y0, x1, y1 float64) []edge {
	var wind int8 = 1
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		wind = -1
	}
	dy := y1 - y0
	if dy < edgeEpsilon {
		return edges
	}
	return append(edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
		wind: wind,
	})
}

// xAt returns the X coordinate of the edge at scanline y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

// edgesFromSubpaths builds the edge list for filling. Open subpaths
// are closed implicitly.
func edgesFromSubpaths(subpaths [][]multirender.Point) []edge {
	var edges []edge
	for _, pts := range subpaths {
		if len(pts) < 2 {
			continue
		}
		for i := 1; i < len(pts); i++ {
			edges = addEdge(edges, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
		}
		first, last := pts[0], pts[len(pts)-1]
		if first != last {
			edges = addEdge(edges, last.X, last.Y, first.X, first.Y)
		}
	}
	return edges
}

// edgeBounds returns the bounding box of the edge list.
func edgeBounds(edges []edge) multirender.Rect {
	b := multirender.EmptyRect()
	for i := range edges {
		e := &edges[i]
		minX := math.Min(e.x0, e.x1)
		maxX := math.Max(e.x0, e.x1)
		b = b.Union(multirender.Rect{MinX: minX, MinY: e.y0, MaxX: maxX, MaxY: e.y1})
	}
	return b
}

// coverageMask is a per-pixel coverage buffer over an integer region.
type coverageMask struct {
	x0, y0 int // origin in canvas coordinates
	w, h   int
	cov    []float32 // coverage in [0, 1]
}

func newCoverageMask(x0, y0, w, h int) *coverageMask {
	return &coverageMask{
		x0: x0, y0: y0,
		w: w, h: h,
		cov: make([]float32, w*h),
	}
}

// at returns the coverage at canvas pixel (x, y).
func (m *coverageMask) at(x, y int) float32 {
	ix := x - m.x0
	iy := y - m.y0
	if ix < 0 || ix >= m.w || iy < 0 || iy >= m.h {
		return 0
	}
	return m.cov[iy*m.w+ix]
}

// crossing is an edge intersection with a sub-scanline.
type crossing struct {
	x    float64
	wind int8
}

// rasterize computes the anti-aliased coverage of the edge list over
// the given clip region using the fill rule. Returns nil if the
// geometry does not intersect the region.
func rasterize(edges []edge, rule multirender.FillRule, clip multirender.Rect) *coverageMask {
	if len(edges) == 0 {
		return nil
	}

	bounds := edgeBounds(edges).Intersect(clip)
	if bounds.IsEmpty() {
		return nil
	}

	x0 := int(math.Floor(bounds.MinX))
	y0 := int(math.Floor(bounds.MinY))
	x1 := int(math.Ceil(bounds.MaxX))
	y1 := int(math.Ceil(bounds.MaxY))

	mask := newCoverageMask(x0, y0, x1-x0, y1-y0)
	crossings := make([]crossing, 0, 16)
	weight := float32(1.0 / subsamples)

	for py := y0; py < y1; py++ {
		row := mask.cov[(py-y0)*mask.w : (py-y0+1)*mask.w]

		for s := 0; s < subsamples; s++ {
			sy := float64(py) + (float64(s)+0.5)/subsamples

			crossings = crossings[:0]
			for i := range edges {
				e := &edges[i]
				if sy < e.y0 || sy >= e.y1 {
					continue
				}
				crossings = append(crossings, crossing{x: e.xAt(sy), wind: e.wind})
			}
			if len(crossings) == 0 {
				continue
			}
			sort.Slice(crossings, func(i, j int) bool {
				return crossings[i].x < crossings[j].x
			})

			// Walk crossings accumulating winding; emit inside spans.
			winding := 0
			var spanStart float64
			inside := false
			for _, c := range crossings {
				winding += int(c.wind)
				nowInside := false
				switch rule {
				case multirender.FillEvenOdd:
					nowInside = winding%2 != 0
				default:
					nowInside = winding != 0
				}
				if nowInside && !inside {
					spanStart = c.x
					inside = true
				} else if !nowInside && inside {
					accumulateSpan(row, x0, spanStart, c.x, weight)
					inside = false
				}
			}
		}
	}

	return mask
}

// accumulateSpan adds weighted horizontal coverage for the span
// [xa, xb) to a coverage row, handling fractional end pixels.
func accumulateSpan(row []float32, rowX0 int, xa, xb float64, weight float32) {
	if xb <= xa {
		return
	}
	minX := float64(rowX0)
	maxX := float64(rowX0 + len(row))
	if xa < minX {
		xa = minX
	}
	if xb > maxX {
		xb = maxX
	}
	if xb <= xa {
		return
	}

	ixa := int(math.Floor(xa))
	ixb := int(math.Floor(xb))

	if ixa == ixb {
		row[ixa-rowX0] += weight * float32(xb-xa)
		return
	}

	// Left fractional pixel.
	row[ixa-rowX0] += weight * float32(float64(ixa+1)-xa)
	// Full interior pixels.
	for x := ixa + 1; x < ixb; x++ {
		row[x-rowX0] += weight
	}
	// Right fractional pixel.
	if ixb-rowX0 < len(row) {
		row[ixb-rowX0] += weight * float32(xb-float64(ixb))
	}
}
