// Package theme persists the full export parameter bundle as a
// versioned YAML document. Every field is explicit and has a documented
// default, so a stored theme and the in-memory shape cannot silently
// drift apart.
package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the theme schema version this build writes and the
// only one it accepts.
const CurrentVersion = 1

// RoleStyle holds the per-role legend parameters.
type RoleStyle struct {
	Enabled bool    `yaml:"enabled"`
	Size    float64 `yaml:"size"`     // font size, mm
	OffsetX float64 `yaml:"offset_x"` // in-plane offset, mm
	OffsetY float64 `yaml:"offset_y"` // in-plane offset, mm
}

// Theme is the stored parameter bundle. Zero values in an on-disk theme
// mean "use the default" only at creation time; Load returns exactly
// what was stored.
type Theme struct {
	Version int `yaml:"version"`

	Template     string     `yaml:"template"`      // blank template name; default "box"
	TemplateSize [3]float64 `yaml:"template_size"` // mm; default 18×18×5
	Face         string     `yaml:"face"`          // side carrying the legend; default "Top"
	FontPath     string     `yaml:"font_path"`     // no default, required for export
	LayoutPath   string     `yaml:"layout_path"`   // no default, required for export
	OutputDir    string     `yaml:"output_dir"`    // default "./out"
	Mode         string     `yaml:"mode"`          // "raise" or "engrave"; default "engrave"
	Depth        float64    `yaml:"depth"`         // extrusion depth, mm; default 0.6
	Tolerance    float64    `yaml:"tolerance"`     // tessellation tolerance, mm; default 0.1

	Primary  RoleStyle `yaml:"primary"`
	Shift    RoleStyle `yaml:"shift"`
	AltGr    RoleStyle `yaml:"altgr"`
	Function RoleStyle `yaml:"fn"`

	IncludeVariableFonts bool   `yaml:"include_variable_fonts"` // default false
	PreviewLabel         string `yaml:"preview_label"`          // default "A"
}

// Default returns a theme populated with every documented default.
func Default() Theme {
	return Theme{
		Version:      CurrentVersion,
		Template:     "box",
		TemplateSize: [3]float64{18, 18, 5},
		Face:         "Top",
		OutputDir:    "./out",
		Mode:         "engrave",
		Depth:        0.6,
		Tolerance:    0.1,
		Primary:      RoleStyle{Enabled: true, Size: 6},
		Shift:        RoleStyle{Size: 3.5, OffsetX: 3.5, OffsetY: 3.5},
		AltGr:        RoleStyle{Size: 3.5, OffsetX: 3.5, OffsetY: -3.5},
		Function:     RoleStyle{Size: 3, OffsetX: -3.5, OffsetY: -3.5},
		PreviewLabel: "A",
	}
}

// Load reads and validates a theme file.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("theme: parse %s: %w", path, err)
	}
	if t.Version != CurrentVersion {
		return Theme{}, fmt.Errorf("theme: %s has version %d, want %d", path, t.Version, CurrentVersion)
	}
	return t, nil
}

// Save writes the theme to path.
func (t Theme) Save(path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("theme: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("theme: write %s: %w", path, err)
	}
	return nil
}
