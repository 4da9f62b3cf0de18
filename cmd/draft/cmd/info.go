package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
)

var (
	outputJSON bool
)

// DrawingInfo represents structured drawing information
type DrawingInfo struct {
	ShapeCount int            `json:"shape_count"`
	Kinds      map[string]int `json:"kinds"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Shapes     []ShapeInfo    `json:"shapes"`
}

// ShapeInfo represents one shape in a listing
type ShapeInfo struct {
	Kind    string    `json:"kind"`
	Summary string    `json:"summary"`
	Stroke  string    `json:"stroke,omitempty"`
	Width   float64   `json:"stroke_width,omitempty"`
	Dash    []float64 `json:"dash,omitempty"`
}

var infoCmd = &cobra.Command{
	Use:   "info <file.draft>",
	Short: "Show drawing information",
	Long: `Parse a .draft file and print a summary of its shapes.

Examples:
  draft info plate.draft
  draft info plate.draft --json`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	shapes, err := loadShapes(args[0])
	if err != nil {
		return err
	}

	info := DrawingInfo{
		ShapeCount: len(shapes),
		Kinds:      make(map[string]int),
	}
	set := draft.NewSet()
	for _, s := range shapes {
		set.Insert(s)
		info.Kinds[s.Kind.String()]++
		info.Shapes = append(info.Shapes, ShapeInfo{
			Kind:    s.Kind.String(),
			Summary: describeShape(s),
			Stroke:  s.Style.Stroke,
			Width:   s.Style.Width,
			Dash:    s.Style.Dash,
		})
	}
	if bbox, ok := set.BBox(); ok {
		info.Width = bbox.Width()
		info.Height = bbox.Height()
	}

	if outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Printf("Drawing: %s\n", args[0])
	fmt.Printf("  Shapes: %d\n", info.ShapeCount)
	for kind, n := range info.Kinds {
		fmt.Printf("    %s: %d\n", kind, n)
	}
	if info.Width > 0 || info.Height > 0 {
		fmt.Printf("  Extent: %.2f x %.2f\n", info.Width, info.Height)
	}
	for i, s := range info.Shapes {
		fmt.Printf("  [%d] %s", i, s.Summary)
		if s.Stroke != "" {
			fmt.Printf("  stroke=%s width=%g", s.Stroke, s.Width)
		}
		if len(s.Dash) > 0 {
			fmt.Printf(" dash=%v", s.Dash)
		}
		fmt.Println()
	}
	return nil
}
