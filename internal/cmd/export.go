package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runegrid/runegrid/internal/codepoint"
	"github.com/runegrid/runegrid/internal/export"
	"github.com/runegrid/runegrid/internal/logging"
)

var (
	exportDir    string
	exportFont   string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export <character|U+XXXX> [...]",
	Short: "Export glyph images without opening the explorer",
	Long: `Render one or more characters to image files. Each argument may be a
literal character, a U+XXXX code point, or a decimal code point.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "output directory (default from config)")
	exportCmd.Flags().StringVar(&exportFont, "font", "", "font name recorded in outputs")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "both", "image format: svg, png or both")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dir := cfg.Export.Dir
	if exportDir != "" {
		dir = exportDir
	}
	font := cfg.Export.Font
	if exportFont != "" {
		font = exportFont
	}

	if exportFormat != "svg" && exportFormat != "png" && exportFormat != "both" {
		return fmt.Errorf("invalid format %q: want svg, png or both", exportFormat)
	}

	exporter := export.New(dir, font, logging.NopLogger())

	var written []string
	for _, arg := range args {
		r, err := parseCodePoint(arg)
		if err != nil {
			return err
		}
		rec, err := codepoint.NewRecord(r)
		if err != nil {
			return fmt.Errorf("invalid code point %q: %w", arg, err)
		}

		if exportFormat == "svg" || exportFormat == "both" {
			path, err := exporter.SVG(rec)
			if err != nil {
				return fmt.Errorf("svg export of %s failed: %w", rec.Hex, err)
			}
			written = append(written, path)
		}
		if exportFormat == "png" || exportFormat == "both" {
			path, err := exporter.PNG(rec)
			if err != nil {
				return fmt.Errorf("png export of %s failed: %w", rec.Hex, err)
			}
			written = append(written, path)
		}
	}

	out := cmd.OutOrStdout()
	for _, path := range written {
		fmt.Fprintln(out, path)
	}
	return nil
}
