package app

import (
	"go.uber.org/zap"

	"github.com/Faultbox/gimbal/internal/engine/camera"
	"github.com/Faultbox/gimbal/internal/engine/input"
	"github.com/Faultbox/gimbal/internal/session"
)

// controls routes input events to a session and camera. Every handler it
// registers is a closure over these fields, so independent sessions can be
// wired to independent dispatchers.
type controls struct {
	session    *session.Session
	camera     *camera.OrbitCamera
	keys       session.KeyMap
	dragButton input.Button
	clock      interface{ NowMs() float64 }
	// onAction receives actions the session does not handle.
	onAction func(session.Action)
	log      *zap.Logger
}

// register installs the handlers on d.
func (c *controls) register(d *input.Dispatcher) {
	d.OnKey(func(key string) {
		a := c.keys.Lookup(key)
		if a == session.ActionNone {
			return
		}
		c.log.Debug("key action", zap.String("key", key), zap.Stringer("action", a))
		if c.session.HandleAction(a, c.clock.NowMs()) {
			return
		}
		if c.onAction != nil {
			c.onAction(a)
		}
	})

	d.On(input.EventMouseDown, func(e input.Event) {
		if e.Button == c.dragButton {
			c.session.BeginDrag(e.Pos)
		}
	})
	d.On(input.EventMouseMove, func(e input.Event) {
		c.session.DragTo(e.Pos)
	})
	d.On(input.EventMouseUp, func(e input.Event) {
		if e.Button == c.dragButton {
			c.session.EndDrag()
		}
	})

	d.On(input.EventScroll, func(e input.Event) {
		if c.camera != nil {
			c.camera.HandleZoom(e.Scroll)
		}
	})
}
