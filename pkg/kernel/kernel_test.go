package kernel

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"testing"

	"github.com/ninicksicard/keylegend/pkg/geom"
)

// --- Mesh helper method tests ---

func TestMeshVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []float32{1, 2, 3}, 1},
		{"four vertices", []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices}
			if got := m.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshTriangleCount(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    int
	}{
		{"empty", nil, 0},
		{"one triangle", []uint32{0, 1, 2}, 1},
		{"two triangles", []uint32{0, 1, 2, 2, 3, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Indices: tt.indices}
			if got := m.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshIsEmpty(t *testing.T) {
	t.Run("empty mesh", func(t *testing.T) {
		m := &Mesh{}
		if !m.IsEmpty() {
			t.Error("IsEmpty() = false for empty mesh, want true")
		}
	})
	t.Run("non-empty mesh", func(t *testing.T) {
		m := &Mesh{Vertices: []float32{1, 2, 3}}
		if m.IsEmpty() {
			t.Error("IsEmpty() = true for non-empty mesh, want false")
		}
	})
}

// --- Binary STL output ---

func singleTriangleMesh() *Mesh {
	return &Mesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:  []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices:  []uint32{0, 1, 2},
		PartName: "tri",
	}
}

func TestWriteSTL(t *testing.T) {
	var buf bytes.Buffer
	if err := singleTriangleMesh().WriteSTL(&buf); err != nil {
		t.Fatalf("WriteSTL() error = %v", err)
	}

	data := buf.Bytes()
	// 80-byte header, 4-byte triangle count, 50 bytes per triangle.
	if want := 80 + 4 + 50; len(data) != want {
		t.Fatalf("STL size = %d, want %d", len(data), want)
	}
	if count := binary.LittleEndian.Uint32(data[80:84]); count != 1 {
		t.Fatalf("triangle count = %d, want 1", count)
	}

	rec := data[84:]
	nz := math.Float32frombits(binary.LittleEndian.Uint32(rec[8:12]))
	if nz != 1 {
		t.Errorf("facet normal z = %v, want 1", nz)
	}
	// Second vertex of the triangle is (1, 0, 0).
	vx := math.Float32frombits(binary.LittleEndian.Uint32(rec[24:28]))
	if vx != 1 {
		t.Errorf("second vertex x = %v, want 1", vx)
	}
	if attr := binary.LittleEndian.Uint16(rec[48:50]); attr != 0 {
		t.Errorf("attribute byte count = %d, want 0", attr)
	}
}

func TestSaveSTL(t *testing.T) {
	path := t.TempDir() + "/tri.stl"
	if err := singleTriangleMesh().SaveSTL(path); err != nil {
		t.Fatalf("SaveSTL() error = %v", err)
	}
	var want bytes.Buffer
	if err := singleTriangleMesh().WriteSTL(&want); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want.Bytes()) {
		t.Error("SaveSTL output differs from WriteSTL output")
	}
}

// --- Compile-time interface checks with stubs ---

type stubSolid struct{ min, max geom.Vec3 }

func (s *stubSolid) BoundingBox() (min, max geom.Vec3) { return s.min, s.max }

type stubFace struct{}

func (f *stubFace) ParameterDomain() (uMin, uMax, vMin, vMax float64) { return 0, 1, 0, 1 }
func (f *stubFace) NormalAt(u, v float64) (geom.Vec3, error)          { return geom.Vec3{Z: 1}, nil }
func (f *stubFace) Centroid() geom.Vec3                               { return geom.Vec3{} }

type stubOutline struct{}

func (o *stubOutline) BoundingBox() (min, max [2]float64) { return min, max }

// stubKernel proves the interface is satisfiable without a geometry engine.
type stubKernel struct{}

func (k *stubKernel) Box(x, y, z float64) Solid {
	return &stubSolid{max: geom.Vec3{X: x, Y: y, Z: z}}
}

func (k *stubKernel) Cylinder(height, radius float64) Solid {
	return &stubSolid{
		min: geom.Vec3{X: -radius, Y: -radius, Z: -height / 2},
		max: geom.Vec3{X: radius, Y: radius, Z: height / 2},
	}
}

func (k *stubKernel) Faces(s Solid) []Face                     { return []Face{&stubFace{}} }
func (k *stubKernel) Copy(s Solid) Solid                       { return s }
func (k *stubKernel) Translate(s Solid, x, y, z float64) Solid { return s }
func (k *stubKernel) Union(a, b Solid) (Solid, error)          { return a, nil }
func (k *stubKernel) Difference(a, b Solid) (Solid, error)     { return a, nil }

func (k *stubKernel) Extrude(o Outline, at geom.Frame, v geom.Vec3) (Solid, error) {
	return &stubSolid{}, nil
}

func (k *stubKernel) Tessellate(s Solid, tolerance float64) (*Mesh, error) {
	return &Mesh{}, nil
}

var (
	_ Solid   = (*stubSolid)(nil)
	_ Face    = (*stubFace)(nil)
	_ Outline = (*stubOutline)(nil)
	_ Kernel  = (*stubKernel)(nil)
)

func TestStubKernelBoxBoundingBox(t *testing.T) {
	var k Kernel = &stubKernel{}
	s := k.Box(10, 20, 30)
	min, max := s.BoundingBox()
	if min != (geom.Vec3{}) {
		t.Errorf("Box min = %v, want origin", min)
	}
	if max != (geom.Vec3{X: 10, Y: 20, Z: 30}) {
		t.Errorf("Box max = %v, want (10,20,30)", max)
	}
}
