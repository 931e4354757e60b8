package renderer

// FilmstripFraction is the share of the framebuffer height given to the
// filmstrip along the bottom.
const FilmstripFraction = 0.2

// Viewport is a GL viewport rectangle in pixels, origin bottom-left.
type Viewport struct {
	X, Y, W, H int32
}

// Aspect returns W/H, or 1 for an empty viewport.
func (v Viewport) Aspect() float32 {
	if v.W <= 0 || v.H <= 0 {
		return 1
	}
	return float32(v.W) / float32(v.H)
}

// Layout splits the framebuffer into the two comparison panes on top and
// one filmstrip cell per keyframe slot underneath.
type Layout struct {
	Euler      Viewport
	Quaternion Viewport
	Filmstrip  []Viewport
}

// ComputeLayout lays out a width x height framebuffer with the given number
// of filmstrip slots. Remainder pixels go to the last pane and cell.
func ComputeLayout(width, height, slots int) Layout {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if slots < 1 {
		slots = 1
	}

	stripH := int32(float64(height) * FilmstripFraction)
	topH := int32(height) - stripH
	halfW := int32(width) / 2

	l := Layout{
		Euler:      Viewport{X: 0, Y: stripH, W: halfW, H: topH},
		Quaternion: Viewport{X: halfW, Y: stripH, W: int32(width) - halfW, H: topH},
		Filmstrip:  make([]Viewport, slots),
	}

	cellW := int32(width) / int32(slots)
	for i := range l.Filmstrip {
		x := int32(i) * cellW
		w := cellW
		if i == slots-1 {
			w = int32(width) - x
		}
		l.Filmstrip[i] = Viewport{X: x, Y: 0, W: w, H: stripH}
	}
	return l
}
