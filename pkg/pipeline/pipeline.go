// Package pipeline drives the batch export: resolve the blank template,
// pick the legend face once, then compose, combine, tessellate and write
// one mesh per layout row. Setup failures abort the run before anything
// is produced; row failures are logged and skipped so one bad label
// cannot sink a whole batch.
package pipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ninicksicard/keylegend/pkg/blank"
	"github.com/ninicksicard/keylegend/pkg/geom"
	"github.com/ninicksicard/keylegend/pkg/kernel"
	"github.com/ninicksicard/keylegend/pkg/layout"
	"github.com/ninicksicard/keylegend/pkg/legend"
)

// Pipeline owns the collaborators shared by every row of a run: the
// geometry kernel, the template registry and the outline provider.
type Pipeline struct {
	kernel   kernel.Kernel
	blanks   *blank.Registry
	provider legend.OutlineProvider
	logger   *log.Logger
}

// New assembles a pipeline. A nil logger falls back to the standard
// logger.
func New(k kernel.Kernel, blanks *blank.Registry, provider legend.OutlineProvider, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{kernel: k, blanks: blanks, provider: provider, logger: logger}
}

// Result summarizes a batch run.
type Result struct {
	Written []string // paths of the meshes produced
	Failed  int      // rows skipped after a row-level failure
}

// setup is the per-run state computed once: the canonical blank and the
// face frame, both invariant across rows for a fixed template and
// direction.
type setup struct {
	blank kernel.Solid
	frame geom.Frame
	rows  []layout.Row
}

// resolveFrame builds the template blank and computes the face frame
// for the configured direction. Both are invariant across rows.
func (p *Pipeline) resolveFrame(cfg Config) (kernel.Solid, geom.Frame, error) {
	builder, err := p.blanks.Resolve(cfg.Template)
	if err != nil {
		return nil, geom.Frame{}, fmt.Errorf("pipeline: %w", err)
	}
	blankSolid := builder(p.kernel, cfg.TemplateSize)

	dir, ok := legend.FaceDirections[cfg.Face]
	if !ok {
		return nil, geom.Frame{}, fmt.Errorf("pipeline: unknown face direction %q", cfg.Face)
	}
	face, err := legend.SelectFace(p.kernel, blankSolid, dir)
	if err != nil {
		return nil, geom.Frame{}, fmt.Errorf("pipeline: select face: %w", err)
	}
	frame, err := legend.PlaceFrame(face)
	if err != nil {
		return nil, geom.Frame{}, fmt.Errorf("pipeline: place frame: %w", err)
	}
	return blankSolid, frame, nil
}

// prepare checks every batch precondition and computes the shared
// per-run state. Any failure here aborts the run with nothing produced.
func (p *Pipeline) prepare(cfg Config) (*setup, error) {
	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("pipeline: output directory is empty")
	}
	if cfg.LayoutPath == "" {
		return nil, fmt.Errorf("pipeline: layout table path is empty")
	}

	blankSolid, frame, err := p.resolveFrame(cfg)
	if err != nil {
		return nil, err
	}

	rows, err := layout.Read(cfg.LayoutPath)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("pipeline: layout table %s has no rows with a primary legend", cfg.LayoutPath)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("pipeline: create output directory: %w", err)
	}

	return &setup{blank: blankSolid, frame: frame, rows: rows}, nil
}

// Run executes a full batch. The face and frame are computed once; each
// row then composes its legend, combines it with a fresh copy of the
// blank, tessellates and writes an STL file named after the row.
func (p *Pipeline) Run(cfg Config) (*Result, error) {
	st, err := p.prepare(cfg)
	if err != nil {
		return nil, err
	}

	p.logger.Printf("template %s %gx%gx%g, face %s, mode %s, %d rows",
		cfg.Template, cfg.TemplateSize.X, cfg.TemplateSize.Y, cfg.TemplateSize.Z,
		cfg.Face, cfg.Mode, len(st.rows))

	res := &Result{}
	for i, row := range st.rows {
		path, err := p.exportRow(cfg, st, row)
		if err != nil {
			p.logger.Printf("row %d (%s): %v", i+1, row.Name, err)
			res.Failed++
			continue
		}
		p.logger.Printf("exported %s", path)
		res.Written = append(res.Written, path)
	}

	p.logger.Printf("done: %d written, %d failed", len(res.Written), res.Failed)
	return res, nil
}

// exportRow builds, meshes and writes one row.
func (p *Pipeline) exportRow(cfg Config, st *setup, row layout.Row) (string, error) {
	solid, err := p.buildRow(cfg, st, row)
	if err != nil {
		return "", err
	}

	mesh, err := p.kernel.Tessellate(solid, cfg.Tolerance)
	if err != nil {
		return "", fmt.Errorf("tessellate: %w", err)
	}
	mesh.PartName = row.Name

	path := filepath.Join(cfg.OutputDir, row.Name+".stl")
	if err := mesh.SaveSTL(path); err != nil {
		return "", err
	}
	return path, nil
}

// buildRow combines one row's legend with a fresh copy of the blank.
func (p *Pipeline) buildRow(cfg Config, st *setup, row layout.Row) (kernel.Solid, error) {
	roles := rolesForRow(cfg, row)

	volume, err := legend.Compose(p.kernel, st.frame, cfg.Face, cfg.Mode, cfg.Depth, cfg.Tolerance, roles, p.provider)
	if err != nil {
		return nil, err
	}

	// Each row gets its own copy: boolean operations may consume their
	// operands and the canonical blank is shared by every row.
	return legend.Combine(p.kernel, p.kernel.Copy(st.blank), volume, cfg.Mode)
}

// BuildOne builds the solid for a single row without touching the
// filesystem. Used for previews.
func (p *Pipeline) BuildOne(cfg Config, row layout.Row) (kernel.Solid, error) {
	st, err := p.prepare(cfg)
	if err != nil {
		return nil, err
	}
	return p.buildRow(cfg, st, row)
}

// BuildLabel builds a one-off solid for a bare label, bypassing the
// layout table preconditions. Used by the preview command.
func (p *Pipeline) BuildLabel(cfg Config, label string) (kernel.Solid, error) {
	blankSolid, frame, err := p.resolveFrame(cfg)
	if err != nil {
		return nil, err
	}
	st := &setup{blank: blankSolid, frame: frame}
	return p.buildRow(cfg, st, layout.Row{Primary: label, Name: label})
}

// rolesForRow assembles the legend roles for one row. A lone primary
// legend ignores its configured offsets and sits centered on the face;
// the offsets exist to make room for secondary legends.
func rolesForRow(cfg Config, row layout.Row) []legend.Role {
	hasSecondary := (cfg.Shift.Enabled && row.Shift != "") ||
		(cfg.AltGr.Enabled && row.AltGr != "") ||
		(cfg.Function.Enabled && row.Function != "")

	primary := legend.Role{
		Name: legend.RolePrimary,
		Text: row.Primary,
		Size: cfg.Primary.Size,
	}
	if hasSecondary {
		primary.OffsetX = cfg.Primary.OffsetX
		primary.OffsetY = cfg.Primary.OffsetY
	}

	roles := []legend.Role{primary}
	if cfg.Shift.Enabled && row.Shift != "" {
		roles = append(roles, legend.Role{
			Name: legend.RoleShift, Text: row.Shift,
			Size: cfg.Shift.Size, OffsetX: cfg.Shift.OffsetX, OffsetY: cfg.Shift.OffsetY,
		})
	}
	if cfg.AltGr.Enabled && row.AltGr != "" {
		roles = append(roles, legend.Role{
			Name: legend.RoleAltGr, Text: row.AltGr,
			Size: cfg.AltGr.Size, OffsetX: cfg.AltGr.OffsetX, OffsetY: cfg.AltGr.OffsetY,
		})
	}
	if cfg.Function.Enabled && row.Function != "" {
		roles = append(roles, legend.Role{
			Name: legend.RoleFunction, Text: row.Function,
			Size: cfg.Function.Size, OffsetX: cfg.Function.OffsetX, OffsetY: cfg.Function.OffsetY,
		})
	}
	return roles
}
