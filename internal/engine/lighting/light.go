// Package lighting holds the demo's light sources and flattens them for
// shader upload.
package lighting

import gomath "math"

// MaxLights is the number of light slots the object shader declares.
const MaxLights = 4

// Light is a point light, or a spotlight when SpotCutoffDegrees > 0.
type Light struct {
	Position [4]float32 // w = 0 for a directional light
	Ambient  [4]float32
	Diffuse  [4]float32
	Specular [4]float32

	SpotDirection     [3]float32
	SpotExponent      float32
	SpotCutoffDegrees float32 // 0 disables the cone
}

// IsSpot reports whether the light has a cone.
func (l Light) IsSpot() bool {
	return l.SpotCutoffDegrees > 0
}

// LightSet is a bounded list of lights with a master switch.
type LightSet struct {
	lights []Light
	on     bool
}

// NewLightSet creates an empty set with the lights switched on.
func NewLightSet() *LightSet {
	return &LightSet{
		lights: make([]Light, 0, MaxLights),
		on:     true,
	}
}

// DemoLights returns a white overhead point light and a narrow blue
// spotlight pointing straight down.
func DemoLights() *LightSet {
	s := NewLightSet()
	s.Add(Light{
		Position: [4]float32{10, 150, 10, 1},
		Ambient:  [4]float32{0.9, 0.9, 0.9, 1},
		Diffuse:  [4]float32{0.9, 0.9, 0.9, 1},
		Specular: [4]float32{0.9, 0.9, 0.9, 1},
	})
	s.Add(Light{
		Position:          [4]float32{7, 100, 7, 1},
		Ambient:           [4]float32{0.5, 0.5, 0.5, 1},
		Diffuse:           [4]float32{0, 0.47, 0.75, 1},
		Specular:          [4]float32{1, 1, 1, 1},
		SpotDirection:     [3]float32{0, -1, 0},
		SpotExponent:      128,
		SpotCutoffDegrees: 7,
	})
	return s
}

// Add appends a light. Returns false if the set is full.
func (s *LightSet) Add(l Light) bool {
	if len(s.lights) >= MaxLights {
		return false
	}
	s.lights = append(s.lights, l)
	return true
}

// Clear removes all lights.
func (s *LightSet) Clear() {
	s.lights = s.lights[:0]
}

// Len returns the number of lights.
func (s *LightSet) Len() int {
	return len(s.lights)
}

// Lights returns a copy of the lights.
func (s *LightSet) Lights() []Light {
	out := make([]Light, len(s.lights))
	copy(out, s.lights)
	return out
}

// On reports whether the switch is on.
func (s *LightSet) On() bool {
	return s.on
}

// SetOn sets the switch.
func (s *LightSet) SetOn(on bool) {
	s.on = on
}

// Toggle flips the switch and returns the new state.
func (s *LightSet) Toggle() bool {
	s.on = !s.on
	return s.on
}

// ActiveCount is the light count the shader should loop over: zero while
// switched off.
func (s *LightSet) ActiveCount() int32 {
	if !s.on {
		return 0
	}
	return int32(len(s.lights))
}

// Positions returns positions as a flat slice for GPU upload.
// Format: [x0, y0, z0, w0, x1, ...], padded to MaxLights.
func (s *LightSet) Positions() []float32 {
	return s.flatten4(func(l Light) [4]float32 { return l.Position })
}

// Ambients returns ambient colors flattened like Positions.
func (s *LightSet) Ambients() []float32 {
	return s.flatten4(func(l Light) [4]float32 { return l.Ambient })
}

// Diffuses returns diffuse colors flattened like Positions.
func (s *LightSet) Diffuses() []float32 {
	return s.flatten4(func(l Light) [4]float32 { return l.Diffuse })
}

// Speculars returns specular colors flattened like Positions.
func (s *LightSet) Speculars() []float32 {
	return s.flatten4(func(l Light) [4]float32 { return l.Specular })
}

// SpotDirections returns spotlight directions as [x0, y0, z0, x1, ...].
func (s *LightSet) SpotDirections() []float32 {
	out := make([]float32, MaxLights*3)
	for i, l := range s.lights {
		copy(out[i*3:i*3+3], l.SpotDirection[:])
	}
	return out
}

// SpotExponents returns one exponent per slot.
func (s *LightSet) SpotExponents() []float32 {
	out := make([]float32, MaxLights)
	for i, l := range s.lights {
		out[i] = l.SpotExponent
	}
	return out
}

// SpotCosCutoffs returns cos(cutoff) per slot, or -1 for lights without a
// cone so every direction passes the shader's cone test.
func (s *LightSet) SpotCosCutoffs() []float32 {
	out := make([]float32, MaxLights)
	for i := range out {
		out[i] = -1
	}
	for i, l := range s.lights {
		if l.IsSpot() {
			out[i] = float32(gomath.Cos(float64(l.SpotCutoffDegrees) * gomath.Pi / 180))
		}
	}
	return out
}

func (s *LightSet) flatten4(get func(Light) [4]float32) []float32 {
	out := make([]float32, MaxLights*4)
	for i, l := range s.lights {
		v := get(l)
		copy(out[i*4:i*4+4], v[:])
	}
	return out
}
