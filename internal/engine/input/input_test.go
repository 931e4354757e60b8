package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/gimbal/pkg/math"
)

func TestTranslateMouse(t *testing.T) {
	tests := []struct {
		name  string
		in    sdl.Event
		want  Event
		valid bool
	}{
		{
			name:  "left down",
			in:    &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 10, Y: 20},
			want:  Event{Type: EventMouseDown, Button: ButtonLeft, Pos: math.Vec2{X: 10, Y: 20}},
			valid: true,
		},
		{
			name:  "right up",
			in:    &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_RIGHT, X: 3, Y: 4},
			want:  Event{Type: EventMouseUp, Button: ButtonRight, Pos: math.Vec2{X: 3, Y: 4}},
			valid: true,
		},
		{
			name:  "motion",
			in:    &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 100, Y: 50},
			want:  Event{Type: EventMouseMove, Pos: math.Vec2{X: 100, Y: 50}},
			valid: true,
		},
		{
			name:  "wheel",
			in:    &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2},
			want:  Event{Type: EventScroll, Scroll: 2},
			valid: true,
		},
		{
			name:  "flipped wheel",
			in:    &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 1, Direction: sdl.MOUSEWHEEL_FLIPPED},
			want:  Event{Type: EventScroll, Scroll: -1},
			valid: true,
		},
		{
			name:  "resize",
			in:    &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			want:  Event{Type: EventWindowResize, Width: 800, Height: 600},
			valid: true,
		},
		{
			name:  "window focus ignored",
			in:    &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED},
			valid: false,
		},
		{
			name:  "quit",
			in:    &sdl.QuitEvent{Type: sdl.QUIT},
			want:  Event{Type: EventQuit},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.in)
			if ok != tt.valid {
				t.Fatalf("translate ok = %v, want %v", ok, tt.valid)
			}
			if ok && got != tt.want {
				t.Errorf("translate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseButton(t *testing.T) {
	for _, b := range []Button{ButtonLeft, ButtonMiddle, ButtonRight} {
		got, err := ParseButton(b.String())
		if err != nil || got != b {
			t.Errorf("ParseButton(%q) = %v, %v", b.String(), got, err)
		}
	}
	if _, err := ParseButton("x1"); err == nil {
		t.Error("expected error for unknown button")
	}
}

func TestDispatcherRoutesByType(t *testing.T) {
	d := NewDispatcher()

	var moves []math.Vec2
	var order []string
	d.On(EventMouseMove, func(e Event) { moves = append(moves, e.Pos) })
	d.On(EventMouseDown, func(Event) { order = append(order, "first") })
	d.On(EventMouseDown, func(Event) { order = append(order, "second") })

	d.DispatchAll([]Event{
		{Type: EventMouseMove, Pos: math.Vec2{X: 1}},
		{Type: EventMouseDown},
		{Type: EventMouseMove, Pos: math.Vec2{X: 2}},
	})

	if len(moves) != 2 || moves[0].X != 1 || moves[1].X != 2 {
		t.Errorf("unexpected moves %v", moves)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("handlers should run in registration order, got %v", order)
	}
	if d.Dispatch(Event{Type: EventScroll}) {
		t.Error("dispatch without handlers should report false")
	}
}

func TestDispatcherSkipsRepeats(t *testing.T) {
	d := NewDispatcher()

	var keys []string
	d.OnKey(func(k string) { keys = append(keys, k) })

	d.DispatchAll([]Event{
		{Type: EventKeyDown, Key: "c"},
		{Type: EventKeyDown, Key: "c", Repeat: true},
		{Type: EventKeyUp, Key: "c"},
		{Type: EventKeyDown, Key: "p"},
	})

	if len(keys) != 2 || keys[0] != "c" || keys[1] != "p" {
		t.Errorf("expected [c p], got %v", keys)
	}
}

// Handlers are closures over their own state, so two dispatchers never share it.
func TestDispatchersAreIndependent(t *testing.T) {
	var a, b int
	da, db := NewDispatcher(), NewDispatcher()
	da.On(EventMouseDown, func(Event) { a++ })
	db.On(EventMouseDown, func(Event) { b++ })

	da.Dispatch(Event{Type: EventMouseDown})
	da.Dispatch(Event{Type: EventMouseDown})
	db.Dispatch(Event{Type: EventMouseDown})

	if a != 2 || b != 1 {
		t.Errorf("expected a=2 b=1, got a=%d b=%d", a, b)
	}
}
