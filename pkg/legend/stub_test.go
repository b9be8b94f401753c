package legend

import (
	"errors"
	"fmt"

	"github.com/ninicksicard/keylegend/pkg/geom"
	"github.com/ninicksicard/keylegend/pkg/kernel"
)

// --- In-package fakes. Face selection and composition only need the
// kernel boundary, so a recording fake keeps these tests hermetic. ---

type fakeFace struct {
	normal     geom.Vec3
	centroid   geom.Vec3
	failNormal bool
	uMin, uMax float64
	vMin, vMax float64
}

var _ kernel.Face = (*fakeFace)(nil)

func (f *fakeFace) ParameterDomain() (float64, float64, float64, float64) {
	return f.uMin, f.uMax, f.vMin, f.vMax
}

func (f *fakeFace) NormalAt(u, v float64) (geom.Vec3, error) {
	if f.failNormal {
		return geom.Vec3{}, errors.New("normal evaluation failed")
	}
	return f.normal, nil
}

func (f *fakeFace) Centroid() geom.Vec3 { return f.centroid }

type fakeSolid struct{ name string }

func (s *fakeSolid) BoundingBox() (min, max geom.Vec3) { return geom.Vec3{}, geom.Vec3{} }

type fakeOutline struct{ min, max [2]float64 }

func (o *fakeOutline) BoundingBox() (min, max [2]float64) { return o.min, o.max }

type extrudeCall struct {
	outline kernel.Outline
	at      geom.Frame
	sweep   geom.Vec3
}

type fakeKernel struct {
	faces []kernel.Face

	extrusions  []extrudeCall
	unions      int
	differences int
	failUnion   bool
	failDiff    bool
}

var _ kernel.Kernel = (*fakeKernel)(nil)

func (k *fakeKernel) Box(x, y, z float64) kernel.Solid      { return &fakeSolid{name: "box"} }
func (k *fakeKernel) Cylinder(h, r float64) kernel.Solid    { return &fakeSolid{name: "cylinder"} }
func (k *fakeKernel) Faces(s kernel.Solid) []kernel.Face    { return k.faces }
func (k *fakeKernel) Copy(s kernel.Solid) kernel.Solid      { return s }
func (k *fakeKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	return s
}

func (k *fakeKernel) Union(a, b kernel.Solid) (kernel.Solid, error) {
	if k.failUnion {
		return nil, errors.New("union failed")
	}
	k.unions++
	return a, nil
}

func (k *fakeKernel) Difference(a, b kernel.Solid) (kernel.Solid, error) {
	if k.failDiff {
		return nil, errors.New("difference failed")
	}
	k.differences++
	return a, nil
}

func (k *fakeKernel) Extrude(o kernel.Outline, at geom.Frame, v geom.Vec3) (kernel.Solid, error) {
	k.extrusions = append(k.extrusions, extrudeCall{outline: o, at: at, sweep: v})
	return &fakeSolid{name: fmt.Sprintf("extrusion-%d", len(k.extrusions))}, nil
}

func (k *fakeKernel) Tessellate(s kernel.Solid, tol float64) (*kernel.Mesh, error) {
	return &kernel.Mesh{}, nil
}

// cubeFaces returns the six faces of an axis-aligned unit cube centered
// at the origin.
func cubeFaces() []*fakeFace {
	mk := func(n geom.Vec3) *fakeFace {
		return &fakeFace{normal: n, centroid: n.Scale(0.5), uMax: 1, vMax: 1}
	}
	return []*fakeFace{
		mk(geom.Vec3{Z: 1}), mk(geom.Vec3{Z: -1}),
		mk(geom.Vec3{Y: 1}), mk(geom.Vec3{Y: -1}),
		mk(geom.Vec3{X: 1}), mk(geom.Vec3{X: -1}),
	}
}

func kernelWith(faces ...*fakeFace) *fakeKernel {
	k := &fakeKernel{}
	for _, f := range faces {
		k.faces = append(k.faces, f)
	}
	return k
}
