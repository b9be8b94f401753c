package kernel

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Mesh is a triangle mesh produced by tessellation.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
// Vertices are duplicated per triangle with flat normals.
type Mesh struct {
	Vertices []float32 // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 // [nx0,ny0,nz0, ...]
	Indices  []uint32  // [i0,i1,i2, ...] triangles
	PartName string    // which layout row this mesh came from
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// WriteSTL writes the mesh in binary STL format. The per-triangle normal
// is taken from the first vertex of each triangle, which is exact for the
// flat-shaded meshes tessellation produces.
func (m *Mesh) WriteSTL(w io.Writer) error {
	var header [80]byte
	copy(header[:], m.PartName)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	triCount := m.TriangleCount()
	if err := binary.Write(w, binary.LittleEndian, uint32(triCount)); err != nil {
		return err
	}

	// 12 floats (normal + 3 vertices) and a 2-byte attribute per triangle.
	rec := make([]float32, 12)
	for t := 0; t < triCount; t++ {
		i0 := m.Indices[t*3]
		copy(rec[0:3], m.Normals[i0*3:i0*3+3])
		for j := 0; j < 3; j++ {
			vi := m.Indices[t*3+j]
			copy(rec[3+j*3:6+j*3], m.Vertices[vi*3:vi*3+3])
		}
		if err := binary.Write(w, binary.LittleEndian, rec); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}
	return nil
}

// SaveSTL writes the mesh to a binary STL file at path.
func (m *Mesh) SaveSTL(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := m.WriteSTL(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
