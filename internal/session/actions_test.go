package session

import (
	"strings"
	"testing"
)

func TestDefaultKeyMap(t *testing.T) {
	km, err := NewKeyMap(DefaultBindings())
	if err != nil {
		t.Fatalf("default bindings rejected: %v", err)
	}

	tests := []struct {
		key  string
		want Action
	}{
		{"c", ActionCapture},
		{"C", ActionCapture},
		{"p", ActionStart},
		{"e", ActionStart},
		{"r", ActionReset},
		{"l", ActionToggleLight},
		{"o", ActionLogCamera},
		{"F12", ActionScreenshot},
		{"q", ActionQuit},
		{"Escape", ActionQuit},
		{"z", ActionNone},
	}

	for _, tt := range tests {
		if got := km.Lookup(tt.key); got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestKeyMapRebinding(t *testing.T) {
	km, err := NewKeyMap(map[string][]string{
		"capture": {"space"},
		"start":   {" Return "},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if km.Lookup("space") != ActionCapture {
		t.Error("expected space to capture")
	}
	if km.Lookup("return") != ActionStart {
		t.Error("expected return to start")
	}
	if km.Lookup("c") != ActionNone {
		t.Error("expected c to be unbound")
	}
}

func TestKeyMapConflict(t *testing.T) {
	_, err := NewKeyMap(map[string][]string{
		"capture": {"c"},
		"reset":   {"c"},
	})
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if !strings.Contains(err.Error(), `"c"`) {
		t.Errorf("error should name the key, got %v", err)
	}
}

func TestKeyMapUnknownAction(t *testing.T) {
	if _, err := NewKeyMap(map[string][]string{"jump": {"space"}}); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestParseActionRoundTrip(t *testing.T) {
	for a := ActionCapture; a <= ActionQuit; a++ {
		got, err := ParseAction(a.String())
		if err != nil {
			t.Errorf("ParseAction(%q): %v", a.String(), err)
			continue
		}
		if got != a {
			t.Errorf("ParseAction(%q) = %v, want %v", a.String(), got, a)
		}
	}
}

func TestHandleAction(t *testing.T) {
	s := New(Options{KeyframeCapacity: 2, DurationMs: 1000, DragSensitivity: 1}, nil)

	if !s.HandleAction(ActionCapture, 0) || !s.HandleAction(ActionCapture, 0) {
		t.Fatal("capture should be handled by the session")
	}
	if !s.IsFull() {
		t.Fatal("two captures should fill a capacity-2 session")
	}
	if !s.HandleAction(ActionStart, 100) || !s.IsPlaying() {
		t.Fatal("start should begin playback")
	}
	if !s.HandleAction(ActionReset, 200) {
		t.Fatal("reset should be handled by the session")
	}
	if s.IsPlaying() || s.IsFull() {
		t.Error("reset should clear keyframes and stop playback")
	}

	for _, a := range []Action{ActionNone, ActionToggleLight, ActionLogCamera, ActionScreenshot, ActionQuit} {
		if s.HandleAction(a, 0) {
			t.Errorf("%v should be left to the caller", a)
		}
	}
}
