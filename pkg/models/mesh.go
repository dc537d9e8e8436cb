// Package models provides 3D mesh loading and representation for Echo.
package models

import (
	"github.com/chewxy/math32"
	"github.com/l-echo/echo/pkg/echomath"
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []echomath.Vector3
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin echomath.Vector3
	BoundsMax echomath.Vector3
}

// Face is a triangle as indices into Mesh.Vertices.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]echomath.Vector3, 0),
		Faces:    make([]Face, 0),
	}
}

// Cube creates a cube of the given edge length centered at the origin.
func Cube(size float32) *Mesh {
	h := size / 2
	m := NewMesh("cube")
	m.Vertices = []echomath.Vector3{
		{X: -h, Y: -h, Z: -h}, // 0: bottom-left-back
		{X: h, Y: -h, Z: -h},  // 1: bottom-right-back
		{X: h, Y: h, Z: -h},   // 2: top-right-back
		{X: -h, Y: h, Z: -h},  // 3: top-left-back
		{X: -h, Y: -h, Z: h},  // 4: bottom-left-front
		{X: h, Y: -h, Z: h},   // 5: bottom-right-front
		{X: h, Y: h, Z: h},    // 6: top-right-front
		{X: -h, Y: h, Z: h},   // 7: top-left-front
	}
	m.Faces = []Face{
		{V: [3]int{0, 2, 1}}, {V: [3]int{0, 3, 2}}, // back
		{V: [3]int{4, 5, 6}}, {V: [3]int{4, 6, 7}}, // front
		{V: [3]int{0, 1, 5}}, {V: [3]int{0, 5, 4}}, // bottom
		{V: [3]int{3, 7, 6}}, {V: [3]int{3, 6, 2}}, // top
		{V: [3]int{0, 4, 7}}, {V: [3]int{0, 7, 3}}, // left
		{V: [3]int{1, 2, 6}}, {V: [3]int{1, 6, 5}}, // right
	}
	m.CalculateBounds()
	return m
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = echomath.V3(min(m.BoundsMin.X, v.X), min(m.BoundsMin.Y, v.Y), min(m.BoundsMin.Z, v.Z))
		m.BoundsMax = echomath.V3(max(m.BoundsMax.X, v.X), max(m.BoundsMax.Y, v.Y), max(m.BoundsMax.Z, v.Z))
	}
}

// Bounds returns the bounding box as a range over the mesh's own bound
// fields, so later CalculateBounds calls are reflected.
func (m *Mesh) Bounds() echomath.AngleRange {
	return echomath.NewAngleRange(&m.BoundsMin, &m.BoundsMax)
}

// Contains reports whether p lies inside the bounding box.
func (m *Mesh) Contains(p echomath.Vector3) bool {
	return m.Bounds().Contains(p)
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() echomath.Vector3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() echomath.Vector3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Translate moves every vertex by offset.
func (m *Mesh) Translate(offset echomath.Vector3) {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Add(offset)
	}
	m.CalculateBounds()
}

// ScaleUniform scales every vertex about the origin.
func (m *Mesh) ScaleUniform(s float32) {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Scale(s)
	}
	m.CalculateBounds()
}

// Rotate applies RotateXY to every vertex.
func (m *Mesh) Rotate(rot echomath.Vector3) {
	if rot.IsZero() {
		return
	}
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].RotateXY(rot)
	}
	m.CalculateBounds()
}

// Normalize centers the mesh at the origin and scales it so its largest
// dimension equals size.
func (m *Mesh) Normalize(size float32) {
	m.CalculateBounds()
	m.Translate(m.Center().Negate())

	dim := m.Size()
	maxDim := max(dim.X, dim.Y, dim.Z)
	if maxDim > 0 {
		m.ScaleUniform(size / maxDim)
	}
}

// Edges returns every triangle edge once. Edges shared by two faces, or
// repeated because the source split vertices, are merged using undirected
// line equality.
func (m *Mesh) Edges() []echomath.Line3 {
	edges := make([]echomath.Line3, 0, len(m.Faces)*3/2)
	buckets := make(map[edgeKey][]int)

	for _, f := range m.Faces {
		for k := range 3 {
			l := echomath.L3(m.Vertices[f.V[k]], m.Vertices[f.V[(k+1)%3]])
			key := keyOf(l)

			dup := false
			for _, i := range buckets[key] {
				if edges[i].Equals(l) {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			buckets[key] = append(buckets[key], len(edges))
			edges = append(edges, l)
		}
	}
	return edges
}

// edgeKey buckets lines by endpoints snapped to an Epsilon grid, smaller
// endpoint first.
type edgeKey [6]int32

func keyOf(l echomath.Line3) edgeKey {
	a, b := snap(l.P1), snap(l.P2)
	if b[0] < a[0] || (b[0] == a[0] && (b[1] < a[1] || (b[1] == a[1] && b[2] < a[2]))) {
		a, b = b, a
	}
	return edgeKey{a[0], a[1], a[2], b[0], b[1], b[2]}
}

func snap(v echomath.Vector3) [3]int32 {
	const cell = echomath.Epsilon
	return [3]int32{
		int32(math32.Round(v.X / cell)),
		int32(math32.Round(v.Y / cell)),
		int32(math32.Round(v.Z / cell)),
	}
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]echomath.Vector3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}
