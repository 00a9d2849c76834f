package multirender

// BlendMode specifies how layer or paint colors combine with the
// content below. The set covers the Porter-Duff source-over default
// plus the separable blend modes the cpu compositor implements.
type BlendMode uint8

// Blend modes.
const (
	BlendSourceOver BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendClear
	BlendCopy
)

var blendModeNames = [...]string{
	BlendSourceOver: "SourceOver",
	BlendMultiply:   "Multiply",
	BlendScreen:     "Screen",
	BlendOverlay:    "Overlay",
	BlendDarken:     "Darken",
	BlendLighten:    "Lighten",
	BlendClear:      "Clear",
	BlendCopy:       "Copy",
}

// String returns a human-readable name for the blend mode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "Unknown"
}
