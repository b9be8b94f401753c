package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ninicksicard/keylegend/pkg/blank"
	"github.com/ninicksicard/keylegend/pkg/kernel/sdfx"
	"github.com/ninicksicard/keylegend/pkg/pipeline"
	"github.com/ninicksicard/keylegend/pkg/theme"
)

var exportFlags struct {
	fontPath   string
	layoutPath string
	outputDir  string
	mode       string
	face       string
	template   string
	depth      float64
	tolerance  float64
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one STL per layout row",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTheme()
		if err != nil {
			return err
		}
		applyExportFlags(cmd, &t)

		if t.FontPath == "" {
			return fmt.Errorf("no font file given (--font or theme font_path)")
		}
		if _, err := os.Stat(t.FontPath); err != nil {
			return fmt.Errorf("font file not found: %s", t.FontPath)
		}
		if t.LayoutPath == "" {
			return fmt.Errorf("no layout table given (--layout or theme layout_path)")
		}
		if _, err := os.Stat(t.LayoutPath); err != nil {
			return fmt.Errorf("layout table not found: %s", t.LayoutPath)
		}

		provider, err := sdfx.LoadFontProvider(t.FontPath)
		if err != nil {
			return err
		}

		p := pipeline.New(sdfx.New(), blank.NewRegistry(), provider, log.Default())
		res, err := p.Run(pipeline.FromTheme(t))
		if err != nil {
			return err
		}
		if res.Failed > 0 {
			return fmt.Errorf("%d of %d rows failed", res.Failed, res.Failed+len(res.Written))
		}
		return nil
	},
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.fontPath, "font", "", "TTF/OTF font file for the legends")
	f.StringVar(&exportFlags.layoutPath, "layout", "", "CSV layout table")
	f.StringVar(&exportFlags.outputDir, "out", "", "output directory for STL files")
	f.StringVar(&exportFlags.mode, "mode", "", `"raise" or "engrave"`)
	f.StringVar(&exportFlags.face, "face", "", "side carrying the legend (Top, Bottom, Front, Back, Right, Left)")
	f.StringVar(&exportFlags.template, "template", "", "blank template name")
	f.Float64Var(&exportFlags.depth, "depth", 0, "legend depth/height in mm")
	f.Float64Var(&exportFlags.tolerance, "tolerance", 0, "tessellation tolerance in mm")
	rootCmd.AddCommand(exportCmd)
}

// applyExportFlags overlays explicitly set flags onto the theme.
func applyExportFlags(cmd *cobra.Command, t *theme.Theme) {
	if cmd.Flags().Changed("font") {
		t.FontPath = exportFlags.fontPath
	}
	if cmd.Flags().Changed("layout") {
		t.LayoutPath = exportFlags.layoutPath
	}
	if cmd.Flags().Changed("out") {
		t.OutputDir = exportFlags.outputDir
	}
	if cmd.Flags().Changed("mode") {
		t.Mode = exportFlags.mode
	}
	if cmd.Flags().Changed("face") {
		t.Face = exportFlags.face
	}
	if cmd.Flags().Changed("template") {
		t.Template = exportFlags.template
	}
	if cmd.Flags().Changed("depth") {
		t.Depth = exportFlags.depth
	}
	if cmd.Flags().Changed("tolerance") {
		t.Tolerance = exportFlags.tolerance
	}
}
