// Package legend picks the face of a solid that should carry a text
// legend, builds a stable local frame on it, lays text outlines out in
// that frame and combines the extruded legend volume with the blank
// solid. This is the geometric core; solid modeling itself is delegated
// to a kernel.Kernel.
package legend

import "errors"

// Mode selects how the legend volume combines with the blank.
type Mode string

const (
	// ModeRaise fuses the legend onto the surface (embossing).
	ModeRaise Mode = "raise"
	// ModeEngrave cuts the legend into the surface.
	ModeEngrave Mode = "engrave"
)

var (
	// ErrNoSuitableFace means face selection exhausted every face of
	// the solid without an acceptable candidate.
	ErrNoSuitableFace = errors.New("legend: no suitable face for the requested direction")

	// ErrInvalidMode means a mode outside {raise, engrave}.
	ErrInvalidMode = errors.New(`legend: mode must be "raise" or "engrave"`)

	// ErrInvalidDepth means a non-positive extrusion depth.
	ErrInvalidDepth = errors.New("legend: depth must be > 0")

	// ErrInvalidTolerance means a non-positive tessellation tolerance.
	ErrInvalidTolerance = errors.New("legend: tessellation tolerance must be > 0")

	// ErrEmptyLegend means no role had any text to render.
	ErrEmptyLegend = errors.New("legend: no legend text to render")
)

// Valid reports whether m is a defined mode.
func (m Mode) Valid() bool {
	return m == ModeRaise || m == ModeEngrave
}
