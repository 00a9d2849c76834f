package serialize

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dest-hq/multirender"
)

// DefaultMaxDepth is the default pretty-printing depth for EncodeJSON.
const DefaultMaxDepth = 3

// jsonNode is the ordered JSON value tree the encoder walks.
// encoding/json is not used because command output must keep field
// order stable for snapshot diffs.
type jsonNode interface{ isJSONNode() }

type jsonObject struct {
	fields []jsonField
}

type jsonField struct {
	key string
	val jsonNode
}

type jsonArray struct {
	items []jsonNode
}

type jsonString string

type jsonNumber float64

type jsonBool bool

func (*jsonObject) isJSONNode() {}
func (*jsonArray) isJSONNode()  {}
func (jsonString) isJSONNode()  {}
func (jsonNumber) isJSONNode()  {}
func (jsonBool) isJSONNode()    {}

func obj(fields ...jsonField) *jsonObject { return &jsonObject{fields: fields} }
func field(key string, val jsonNode) jsonField {
	return jsonField{key: key, val: val}
}
func arr(items ...jsonNode) *jsonArray { return &jsonArray{items: items} }
func num(v float64) jsonNumber         { return jsonNumber(v) }

// EncodeJSON writes the recording as JSON. Nesting up to maxDepth is
// pretty-printed with indentation; anything deeper is written on one
// line, which keeps command streams readable without drowning diffs in
// per-coordinate lines.
func (rec *Recording) EncodeJSON(w io.Writer, maxDepth int) error {
	root := obj(
		field("commands", rec.commandsNode()),
		field("resources", rec.resourcesNode()),
	)
	enc := &jsonEncoder{w: w, maxDepth: maxDepth}
	enc.encode(root, 0)
	if enc.err != nil {
		return fmt.Errorf("serialize: encode recording: %w", enc.err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// MarshalJSON implements json.Marshaler using DefaultMaxDepth, so a
// Recording can be embedded in larger JSON documents.
func (rec *Recording) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	enc := &jsonEncoder{w: &sb, maxDepth: DefaultMaxDepth}
	enc.encode(obj(
		field("commands", rec.commandsNode()),
		field("resources", rec.resourcesNode()),
	), 0)
	if enc.err != nil {
		return nil, enc.err
	}
	return []byte(sb.String()), nil
}

func (rec *Recording) commandsNode() *jsonArray {
	out := arr()
	for _, cmd := range rec.commands {
		out.items = append(out.items, commandNode(cmd))
	}
	return out
}

func (rec *Recording) resourcesNode() *jsonObject {
	paths := arr()
	for _, p := range rec.pool.paths {
		paths.items = append(paths.items, pathNode(p))
	}
	paints := arr()
	for _, p := range rec.pool.paints {
		paints.items = append(paints.items, paintNode(p))
	}
	fonts := arr()
	for _, f := range rec.pool.fonts {
		fonts.items = append(fonts.items, obj(
			field("id", num(float64(f.ID()))),
			field("index", num(float64(f.Index()))),
			field("bytes", num(float64(len(f.Data())))),
		))
	}
	return obj(
		field("paths", paths),
		field("paints", paints),
		field("fonts", fonts),
	)
}

func commandNode(cmd Command) *jsonObject {
	switch c := cmd.(type) {
	case ResetCommand:
		return obj(field("type", jsonString("Reset")))

	case PushLayerCommand:
		return obj(
			field("type", jsonString("PushLayer")),
			field("blend", jsonString(c.Blend.String())),
			field("alpha", num(float64(c.Alpha))),
			field("transform", affineNode(c.Transform)),
			field("clip", refNode(uint32(c.Clip))),
		)

	case PushClipLayerCommand:
		return obj(
			field("type", jsonString("PushClipLayer")),
			field("transform", affineNode(c.Transform)),
			field("clip", refNode(uint32(c.Clip))),
		)

	case PopLayerCommand:
		return obj(field("type", jsonString("PopLayer")))

	case FillCommand:
		fields := []jsonField{
			field("type", jsonString("Fill")),
			field("rule", jsonString(c.Rule.String())),
			field("transform", affineNode(c.Transform)),
			field("paint", refNode(uint32(c.Paint))),
		}
		if c.HasPaintTransform {
			fields = append(fields, field("paintTransform", affineNode(c.PaintTransform)))
		}
		fields = append(fields, field("path", refNode(uint32(c.Path))))
		return obj(fields...)

	case StrokeCommand:
		fields := []jsonField{
			field("type", jsonString("Stroke")),
			field("style", strokeNode(c.Style)),
			field("transform", affineNode(c.Transform)),
			field("paint", refNode(uint32(c.Paint))),
		}
		if c.HasPaintTransform {
			fields = append(fields, field("paintTransform", affineNode(c.PaintTransform)))
		}
		fields = append(fields, field("path", refNode(uint32(c.Path))))
		return obj(fields...)

	case DrawGlyphsCommand:
		glyphs := arr()
		for _, g := range c.Glyphs {
			glyphs.items = append(glyphs.items, arr(
				num(float64(g.ID)), num(float64(g.X)), num(float64(g.Y))))
		}
		fields := []jsonField{
			field("type", jsonString("DrawGlyphs")),
			field("font", refNode(uint32(c.Font))),
			field("fontSize", num(float64(c.FontSize))),
			field("hint", jsonBool(c.Hint)),
			field("transform", affineNode(c.Transform)),
		}
		if c.HasGlyphTransform {
			fields = append(fields, field("glyphTransform", affineNode(c.GlyphTransform)))
		}
		if c.Style.Stroke != nil {
			fields = append(fields, field("stroke", strokeNode(*c.Style.Stroke)))
		} else {
			fields = append(fields, field("fill", jsonString(c.Style.Fill.String())))
		}
		fields = append(fields,
			field("glyphs", glyphs),
			field("paint", refNode(uint32(c.Paint))),
		)
		return obj(fields...)

	case DrawBoxShadowCommand:
		return obj(
			field("type", jsonString("DrawBoxShadow")),
			field("transform", affineNode(c.Transform)),
			field("rect", rectNode(c.Rect)),
			field("color", colorNode(c.Color)),
			field("radius", num(c.Radius)),
			field("stdDev", num(c.StdDev)),
		)

	default:
		return obj(field("type", jsonString(cmd.Type().String())))
	}
}

func pathNode(p *multirender.Path) *jsonArray {
	out := arr()
	if p == nil {
		return out
	}
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case multirender.MoveTo:
			out.items = append(out.items, arr(jsonString("M"), num(e.Point.X), num(e.Point.Y)))
		case multirender.LineTo:
			out.items = append(out.items, arr(jsonString("L"), num(e.Point.X), num(e.Point.Y)))
		case multirender.QuadTo:
			out.items = append(out.items, arr(jsonString("Q"),
				num(e.Control.X), num(e.Control.Y), num(e.Point.X), num(e.Point.Y)))
		case multirender.CubicTo:
			out.items = append(out.items, arr(jsonString("C"),
				num(e.Control1.X), num(e.Control1.Y),
				num(e.Control2.X), num(e.Control2.Y),
				num(e.Point.X), num(e.Point.Y)))
		case multirender.Close:
			out.items = append(out.items, arr(jsonString("Z")))
		}
	}
	return out
}

func paintNode(p multirender.Paint) jsonNode {
	switch paint := p.(type) {
	case multirender.SolidPaint:
		return obj(
			field("kind", jsonString("solid")),
			field("color", colorNode(paint.Color)),
		)
	case *multirender.LinearGradientPaint:
		return obj(
			field("kind", jsonString("linearGradient")),
			field("start", pointNode(paint.Start)),
			field("end", pointNode(paint.End)),
			field("stops", stopsNode(paint.Stops)),
			field("extend", jsonString(paint.Extend.String())),
		)
	case *multirender.RadialGradientPaint:
		return obj(
			field("kind", jsonString("radialGradient")),
			field("center", pointNode(paint.Center)),
			field("startRadius", num(paint.StartRadius)),
			field("endRadius", num(paint.EndRadius)),
			field("stops", stopsNode(paint.Stops)),
			field("extend", jsonString(paint.Extend.String())),
		)
	case *multirender.SweepGradientPaint:
		return obj(
			field("kind", jsonString("sweepGradient")),
			field("center", pointNode(paint.Center)),
			field("startAngle", num(paint.StartAngle)),
			field("endAngle", num(paint.EndAngle)),
			field("stops", stopsNode(paint.Stops)),
			field("extend", jsonString(paint.Extend.String())),
		)
	case *multirender.ImagePaint:
		fields := []jsonField{field("kind", jsonString("image"))}
		if paint.Image != nil {
			fields = append(fields,
				field("image", num(float64(paint.Image.ID()))),
				field("width", num(float64(paint.Image.Width))),
				field("height", num(float64(paint.Image.Height))),
			)
		}
		fields = append(fields,
			field("quality", num(float64(paint.Quality))),
			field("xExtend", jsonString(paint.XExtend.String())),
			field("yExtend", jsonString(paint.YExtend.String())),
		)
		return obj(fields...)
	case multirender.CustomPaint:
		return obj(field("kind", jsonString("custom")))
	default:
		return obj(field("kind", jsonString("unknown")))
	}
}

func stopsNode(stops []multirender.GradientStop) *jsonArray {
	out := arr()
	for _, s := range stops {
		out.items = append(out.items, arr(num(s.Offset), colorNode(s.Color)))
	}
	return out
}

func strokeNode(s multirender.StrokeStyle) *jsonObject {
	fields := []jsonField{
		field("width", num(s.Width)),
		field("cap", jsonString(s.Cap.String())),
		field("join", jsonString(s.Join.String())),
		field("miterLimit", num(s.MiterLimit)),
	}
	if s.IsDashed() {
		dashes := arr()
		for _, d := range s.DashPattern {
			dashes.items = append(dashes.items, num(d))
		}
		fields = append(fields,
			field("dashPattern", dashes),
			field("dashOffset", num(s.DashOffset)),
		)
	}
	return obj(fields...)
}

func affineNode(m multirender.Affine) *jsonArray {
	return arr(num(m.A), num(m.B), num(m.C), num(m.D), num(m.E), num(m.F))
}

func rectNode(r multirender.Rect) *jsonArray {
	return arr(num(r.MinX), num(r.MinY), num(r.MaxX), num(r.MaxY))
}

func pointNode(p multirender.Point) *jsonArray {
	return arr(num(p.X), num(p.Y))
}

func colorNode(c multirender.Color) *jsonArray {
	return arr(num(c.R), num(c.G), num(c.B), num(c.A))
}

// refNode renders a pool reference, mapping InvalidRef to null-ish -1.
func refNode(ref uint32) jsonNumber {
	if ref == InvalidRef {
		return jsonNumber(-1)
	}
	return jsonNumber(float64(ref))
}

// jsonEncoder writes a node tree with depth-limited pretty printing.
type jsonEncoder struct {
	w        io.Writer
	maxDepth int
	err      error
}

func (e *jsonEncoder) writeString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *jsonEncoder) encode(node jsonNode, depth int) {
	switch n := node.(type) {
	case *jsonObject:
		e.encodeObject(n, depth)
	case *jsonArray:
		e.encodeArray(n, depth)
	case jsonString:
		e.writeString(strconv.Quote(string(n)))
	case jsonNumber:
		e.writeString(formatNumber(float64(n)))
	case jsonBool:
		if n {
			e.writeString("true")
		} else {
			e.writeString("false")
		}
	default:
		e.writeString("null")
	}
}

func (e *jsonEncoder) encodeObject(n *jsonObject, depth int) {
	if len(n.fields) == 0 {
		e.writeString("{}")
		return
	}
	pretty := depth < e.maxDepth

	e.writeString("{")
	for i, f := range n.fields {
		if i > 0 {
			e.writeString(",")
			if !pretty {
				e.writeString(" ")
			}
		}
		if pretty {
			e.newlineIndent(depth + 1)
		}
		e.writeString(strconv.Quote(f.key))
		e.writeString(": ")
		e.encode(f.val, depth+1)
	}
	if pretty {
		e.newlineIndent(depth)
	}
	e.writeString("}")
}

func (e *jsonEncoder) encodeArray(n *jsonArray, depth int) {
	if len(n.items) == 0 {
		e.writeString("[]")
		return
	}
	pretty := depth < e.maxDepth

	e.writeString("[")
	for i, item := range n.items {
		if i > 0 {
			e.writeString(",")
			if !pretty {
				e.writeString(" ")
			}
		}
		if pretty {
			e.newlineIndent(depth + 1)
		}
		e.encode(item, depth+1)
	}
	if pretty {
		e.newlineIndent(depth)
	}
	e.writeString("]")
}

// newlineIndent starts a new pretty-mode line at the given indent.
// Inline containers take no padding inside their brackets; values are
// separated by ", " only.
func (e *jsonEncoder) newlineIndent(indent int) {
	e.writeString("\n")
	for i := 0; i < indent; i++ {
		e.writeString("  ")
	}
}

// formatNumber renders a float the shortest way that round-trips,
// with integral values written without a decimal point.
func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "null"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
