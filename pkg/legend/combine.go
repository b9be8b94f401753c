package legend

import (
	"fmt"

	"github.com/ninicksicard/keylegend/pkg/kernel"
)

// Combine fuses (raise) or subtracts (engrave) the legend volume against
// the blank. The boolean operation is delegated to the kernel and is
// all-or-nothing; engine failures are surfaced, never retried. Callers
// that reuse the blank across rows must pass their own copy, since some
// engines consume boolean operands.
func Combine(k kernel.Kernel, blank, legendVolume kernel.Solid, mode Mode) (kernel.Solid, error) {
	switch mode {
	case ModeRaise:
		s, err := k.Union(blank, legendVolume)
		if err != nil {
			return nil, fmt.Errorf("legend: fuse: %w", err)
		}
		return s, nil
	case ModeEngrave:
		s, err := k.Difference(blank, legendVolume)
		if err != nil {
			return nil, fmt.Errorf("legend: cut: %w", err)
		}
		return s, nil
	default:
		return nil, ErrInvalidMode
	}
}
