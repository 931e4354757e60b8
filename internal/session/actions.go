package session

import (
	"fmt"
	"sort"
	"strings"
)

// Action is a user command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionCapture
	ActionStart
	ActionReset
	ActionToggleLight
	ActionLogCamera
	ActionScreenshot
	ActionQuit
)

var actionNames = map[Action]string{
	ActionCapture:     "capture",
	ActionStart:       "start",
	ActionReset:       "reset",
	ActionToggleLight: "toggle_light",
	ActionLogCamera:   "log_camera",
	ActionScreenshot:  "screenshot",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction resolves an action by its config name.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// DefaultBindings maps each action to its default key names.
func DefaultBindings() map[string][]string {
	return map[string][]string{
		"capture":      {"c"},
		"start":        {"p", "e"},
		"reset":        {"r"},
		"toggle_light": {"l"},
		"log_camera":   {"o"},
		"screenshot":   {"f12"},
		"quit":         {"q", "escape"},
	}
}

// KeyMap resolves key names to actions. Key names are compared
// case-insensitively.
type KeyMap map[string]Action

// NewKeyMap builds a key map from action name -> key names.
// A key bound to two different actions is an error.
func NewKeyMap(bindings map[string][]string) (KeyMap, error) {
	km := make(KeyMap)

	// Deterministic error messages regardless of map order.
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		for _, key := range bindings[name] {
			key = normalizeKey(key)
			if key == "" {
				continue
			}
			if prev, ok := km[key]; ok && prev != action {
				return nil, fmt.Errorf("key %q bound to both %s and %s", key, prev, action)
			}
			km[key] = action
		}
	}
	return km, nil
}

// Lookup returns the action bound to key, or ActionNone.
func (km KeyMap) Lookup(key string) Action {
	return km[normalizeKey(key)]
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
