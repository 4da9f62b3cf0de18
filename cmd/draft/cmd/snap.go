package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/snap"
)

var (
	snapAt           string
	snapTolerance    float64
	snapNoEndpoints  bool
	snapNoMidpoints  bool
	snapNoIntersects bool
)

var snapCmd = &cobra.Command{
	Use:   "snap <file.draft>",
	Short: "Resolve a snap point against a drawing",
	Long: `Resolve the snap candidate nearest to a cursor position, the way the
editor would while drawing.

Examples:
  draft snap plate.draft --at 5,0.3
  draft snap plate.draft --at 5,0.3 --tolerance 20 --no-intersections`,
	Args: cobra.ExactArgs(1),
	RunE: runSnap,
}

func init() {
	snapCmd.Flags().StringVar(&snapAt, "at", "", "cursor position (x,y)")
	snapCmd.Flags().Float64Var(&snapTolerance, "tolerance", snap.DefaultOptions().Tolerance, "snap tolerance in pixels")
	snapCmd.Flags().BoolVar(&snapNoEndpoints, "no-endpoints", false, "ignore endpoint candidates")
	snapCmd.Flags().BoolVar(&snapNoMidpoints, "no-midpoints", false, "ignore midpoint candidates")
	snapCmd.Flags().BoolVar(&snapNoIntersects, "no-intersections", false, "ignore intersection candidates")
	snapCmd.MarkFlagRequired("at")
	rootCmd.AddCommand(snapCmd)
}

func runSnap(cmd *cobra.Command, args []string) error {
	shapes, err := loadShapes(args[0])
	if err != nil {
		return err
	}
	cursor, err := parsePoint(snapAt)
	if err != nil {
		return err
	}

	set := draft.NewSet()
	for _, s := range shapes {
		set.Insert(s)
	}

	opts := snap.Options{
		Tolerance:     snapTolerance,
		Endpoints:     !snapNoEndpoints,
		Midpoints:     !snapNoMidpoints,
		Intersections: !snapNoIntersects,
	}
	cand, ok := snap.Resolve(cursor, set, opts, snap.Identity)
	if !ok {
		fmt.Println("no snap candidate in range")
		return nil
	}

	fmt.Printf("%s at (%.4f, %.4f)\n", cand.Kind, cand.Point.X, cand.Point.Y)
	for _, id := range cand.Sources {
		if s, err := set.Get(id); err == nil {
			fmt.Printf("  source: %s\n", describeShape(s))
		}
	}
	return nil
}
