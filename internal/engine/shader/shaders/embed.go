// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ObjectVertexShader transforms mesh and gizmo vertices.
//
//go:embed object.vert
var ObjectVertexShader string

// ObjectFragmentShader shades with up to four point lights or spotlights,
// or with the flat color when no light is active.
//
//go:embed object.frag
var ObjectFragmentShader string
