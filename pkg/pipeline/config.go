package pipeline

import (
	"github.com/ninicksicard/keylegend/pkg/geom"
	"github.com/ninicksicard/keylegend/pkg/legend"
	"github.com/ninicksicard/keylegend/pkg/theme"
)

// RoleConfig enables one legend role and carries its style. The primary
// role is always enabled; secondary roles apply only to rows that carry
// text for them.
type RoleConfig struct {
	Enabled bool
	Size    float64
	OffsetX float64
	OffsetY float64
}

// Config is the immutable parameter bundle for one batch run,
// constructed once and read-only thereafter.
type Config struct {
	Template     string
	TemplateSize geom.Vec3
	Face         legend.DirectionName
	LayoutPath   string
	OutputDir    string
	Mode         legend.Mode
	Depth        float64
	Tolerance    float64

	Primary  RoleConfig
	Shift    RoleConfig
	AltGr    RoleConfig
	Function RoleConfig
}

// FromTheme maps a stored theme onto a run configuration.
func FromTheme(t theme.Theme) Config {
	role := func(s theme.RoleStyle) RoleConfig {
		return RoleConfig{Enabled: s.Enabled, Size: s.Size, OffsetX: s.OffsetX, OffsetY: s.OffsetY}
	}
	return Config{
		Template:     t.Template,
		TemplateSize: geom.Vec3{X: t.TemplateSize[0], Y: t.TemplateSize[1], Z: t.TemplateSize[2]},
		Face:         legend.DirectionName(t.Face),
		LayoutPath:   t.LayoutPath,
		OutputDir:    t.OutputDir,
		Mode:         legend.Mode(t.Mode),
		Depth:        t.Depth,
		Tolerance:    t.Tolerance,
		Primary:      role(t.Primary),
		Shift:        role(t.Shift),
		AltGr:        role(t.AltGr),
		Function:     role(t.Function),
	}
}
