package app

import (
	"fmt"

	"github.com/Faultbox/gimbal/internal/animation"
	"github.com/Faultbox/gimbal/internal/engine/camera"
	"github.com/Faultbox/gimbal/internal/engine/renderer"
	"github.com/Faultbox/gimbal/internal/session"
	"github.com/Faultbox/gimbal/pkg/math"
)

// Diffuse colors for the three kinds of pane.
var (
	colorEuler      = [4]float32{0, 0.47, 0.75, 1}
	colorQuaternion = [4]float32{1, 0.37, 0.37, 1}
	colorSlot       = [4]float32{0.7, 0.7, 1, 1}
	colorActiveSlot = [4]float32{1, 0.7, 0, 1}
	colorClear      = [4]float32{1, 1, 1, 1}
)

// axisLength is the gizmo line length in world units.
const axisLength = 15

// drawer is the part of the renderer a frame needs.
type drawer interface {
	SetViewport(renderer.Viewport)
	DrawAxes(length float32, view, proj math.Mat4)
	SubmitDraw(transform, view, proj math.Mat4, color [4]float32)
}

// drawScene renders both comparison panes and the filmstrip.
func drawScene(d drawer, l renderer.Layout, s *session.Session, cam *camera.OrbitCamera) {
	view := cam.ViewMatrix()

	pane := func(v renderer.Viewport) math.Mat4 {
		d.SetViewport(v)
		proj := cam.ProjectionMatrix(v.Aspect())
		d.DrawAxes(axisLength, view, proj)
		return proj
	}

	proj := pane(l.Euler)
	d.SubmitDraw(s.EulerTransform(), view, proj, colorEuler)

	proj = pane(l.Quaternion)
	d.SubmitDraw(s.QuaternionTransform(), view, proj, colorQuaternion)

	for i, slot := range s.Filmstrip() {
		if i >= len(l.Filmstrip) {
			break
		}
		proj = pane(l.Filmstrip[i])
		if !slot.Captured {
			continue
		}
		color := colorSlot
		if slot.Active {
			color = colorActiveSlot
		}
		d.SubmitDraw(slot.Transform, view, proj, color)
	}
}

// windowTitle appends the session state to the base title.
func windowTitle(base string, st session.Status) string {
	if st.Mode == animation.Playing {
		return fmt.Sprintf("%s  [playing %d/%d  %.0f%%]", base, st.Segment+1, st.Capacity, st.Blend*100)
	}
	return fmt.Sprintf("%s  [captured %d/%d]", base, st.Captured, st.Capacity)
}
