package models

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/l-echo/echo/pkg/echomath"
	"github.com/qmuntal/gltf"
)

// ErrNoGeometry is returned when a document holds no triangle primitives.
var ErrNoGeometry = errors.New("no triangle geometry")

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// Normalize centers the mesh and scales it to TargetSize.
	Normalize  bool
	TargetSize float32
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		Normalize:  true,
		TargetSize: 2,
	}
}

// LoadGLB loads a binary GLTF (.glb) file with default options.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh, err := l.FromDocument(doc, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return mesh, nil
}

// FromDocument builds a Mesh from an already decoded document.
func (l *GLTFLoader) FromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)

	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	if len(mesh.Faces) == 0 {
		return nil, ErrNoGeometry
	}

	mesh.CalculateBounds()
	if l.Normalize {
		mesh.Normalize(l.TargetSize)
	}

	return mesh, nil
}

// processMesh extracts geometry from a GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for i, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			slog.Warn("skipping non-triangle primitive", "mesh", m.Name, "primitive", i, "mode", prim.Mode)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			slog.Warn("skipping primitive without positions", "mesh", m.Name, "primitive", i)
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		baseVertex := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, positions...)

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]int, len(positions))
			for j := range indices {
				indices[j] = j
			}
		}

		for j := 0; j+2 < len(indices); j += 3 {
			f := Face{V: [3]int{
				baseVertex + indices[j],
				baseVertex + indices[j+1],
				baseVertex + indices[j+2],
			}}
			for _, v := range f.V {
				if v >= len(mesh.Vertices) {
					return fmt.Errorf("index %d out of range (%d vertices)", v-baseVertex, len(positions))
				}
			}
			mesh.Faces = append(mesh.Faces, f)
		}
	}

	return nil
}

// readVec3Accessor reads float VEC3 data from a GLTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]echomath.Vector3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float components, got %v", accessor.ComponentType)
	}

	data, start, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]echomath.Vector3, accessor.Count)
	for i := range accessor.Count {
		offset := start + i*stride
		if offset+12 > len(data) {
			return nil, fmt.Errorf("accessor overruns buffer at element %d", i)
		}
		result[i] = echomath.V3(
			readFloat32(data[offset:]),
			readFloat32(data[offset+4:]),
			readFloat32(data[offset+8:]),
		)
	}

	return result, nil
}

// readIndices reads scalar index data from a GLTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index type: %v", accessor.ComponentType)
	}

	data, start, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range accessor.Count {
		offset := start + i*stride
		if offset+size > len(data) {
			return nil, fmt.Errorf("accessor overruns buffer at element %d", i)
		}
		var v uint32
		for b := range size {
			v |= uint32(data[offset+b]) << (8 * b)
		}
		result[i] = int(v)
	}

	return result, nil
}

// accessorBytes resolves the buffer bytes, start offset and element stride
// behind an accessor. Buffers referenced by URI are loaded by gltf.Open.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("accessor has no buffer view")
	}

	viewIdx := *accessor.BufferView
	if viewIdx < 0 || viewIdx >= len(doc.BufferViews) {
		return nil, 0, 0, fmt.Errorf("buffer view index %d out of range", viewIdx)
	}
	bufferView := doc.BufferViews[viewIdx]
	if bufferView.Buffer < 0 || bufferView.Buffer >= len(doc.Buffers) {
		return nil, 0, 0, fmt.Errorf("buffer index %d out of range", bufferView.Buffer)
	}
	buffer := doc.Buffers[bufferView.Buffer]
	if len(buffer.Data) == 0 {
		return nil, 0, 0, fmt.Errorf("buffer has no data")
	}

	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	return buffer.Data, bufferView.ByteOffset + accessor.ByteOffset, stride, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
