package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ninicksicard/keylegend/pkg/blank"
	"github.com/ninicksicard/keylegend/pkg/kernel/sdfx"
	"github.com/ninicksicard/keylegend/pkg/pipeline"
	"github.com/ninicksicard/keylegend/pkg/preview"
)

var previewFlags struct {
	label    string
	fontPath string
	outPath  string
}

// previews holds the session's preview solids. One owner per command
// invocation; exists so a longer-lived frontend can reuse the same
// replace-or-create slot.
var previews = preview.NewRegistry()

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Build a single sample solid and write it as preview.stl",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTheme()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("font") {
			t.FontPath = previewFlags.fontPath
		}
		label := t.PreviewLabel
		if cmd.Flags().Changed("label") {
			label = previewFlags.label
		}
		if t.FontPath == "" {
			return fmt.Errorf("no font file given (--font or theme font_path)")
		}
		if _, err := os.Stat(t.FontPath); err != nil {
			return fmt.Errorf("font file not found: %s", t.FontPath)
		}

		provider, err := sdfx.LoadFontProvider(t.FontPath)
		if err != nil {
			return err
		}

		k := sdfx.New()
		p := pipeline.New(k, blank.NewRegistry(), provider, log.Default())
		cfg := pipeline.FromTheme(t)

		solid, err := p.BuildLabel(cfg, label)
		if err != nil {
			return err
		}
		previews.Set("cli", solid)

		mesh, err := k.Tessellate(solid, cfg.Tolerance)
		if err != nil {
			return err
		}
		mesh.PartName = label

		path := previewFlags.outPath
		if path == "" {
			path = filepath.Join(cfg.OutputDir, "preview.stl")
			if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
				return err
			}
		}
		if err := mesh.SaveSTL(path); err != nil {
			return err
		}
		log.Printf("preview %q written to %s (%d triangles)", label, path, mesh.TriangleCount())
		return nil
	},
}

func init() {
	f := previewCmd.Flags()
	f.StringVar(&previewFlags.label, "label", "", "label to preview (default: theme preview_label)")
	f.StringVar(&previewFlags.fontPath, "font", "", "TTF/OTF font file")
	f.StringVar(&previewFlags.outPath, "o", "", "preview output path")
	rootCmd.AddCommand(previewCmd)
}
