package shader

import _ "embed"

// MeshVertex is the vertex shader for the loaded model.
//
//go:embed mesh.vert
var MeshVertex string

// MeshFragment lights the model with a key and a fill light.
//
//go:embed mesh.frag
var MeshFragment string

// BackgroundVertex draws the gradient quad behind the model.
//
//go:embed background.vert
var BackgroundVertex string

// BackgroundFragment passes the interpolated gradient colour through.
//
//go:embed background.frag
var BackgroundFragment string

// LineVertex transforms the bounding box outline like the mesh.
//
//go:embed line.vert
var LineVertex string

// LineFragment draws lines in a single colour.
//
//go:embed line.frag
var LineFragment string
