package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/dimension"
)

var (
	measureFrom  string
	measureTo    string
	measureAngle []string
)

var measureCmd = &cobra.Command{
	Use:   "measure <file.draft>",
	Short: "Print shape dimensions",
	Long: `Measure the shapes of a .draft file: lengths for lines, width and
height for rectangles, radii for circles, edge lengths and perimeter
for polygons.

Point-to-point and angle measurements are available through flags.

Examples:
  draft measure plate.draft
  draft measure plate.draft --from 0,0 --to 10,5
  draft measure plate.draft --angle 0,0 --angle 5,0 --angle 0,5`,
	Args: cobra.ExactArgs(1),
	RunE: runMeasure,
}

func init() {
	measureCmd.Flags().StringVar(&measureFrom, "from", "", "first point for a distance measurement (x,y)")
	measureCmd.Flags().StringVar(&measureTo, "to", "", "second point for a distance measurement (x,y)")
	measureCmd.Flags().StringArrayVar(&measureAngle, "angle", nil, "vertex, then two ray points for an angle (x,y; repeat 3 times)")
	rootCmd.AddCommand(measureCmd)
}

func runMeasure(cmd *cobra.Command, args []string) error {
	shapes, err := loadShapes(args[0])
	if err != nil {
		return err
	}

	for i, s := range shapes {
		fmt.Printf("[%d] %s\n", i, describeShape(s))
		for _, d := range dimension.Measure(s) {
			fmt.Printf("    %s: %s\n", d.Kind, d.Label)
		}
	}

	if (measureFrom == "") != (measureTo == "") {
		return fmt.Errorf("--from and --to must be given together")
	}
	if measureFrom != "" {
		a, err := parsePoint(measureFrom)
		if err != nil {
			return err
		}
		b, err := parsePoint(measureTo)
		if err != nil {
			return err
		}
		d := dimension.Between(a, b)
		fmt.Printf("distance %s -> %s: %s\n", measureFrom, measureTo, d.Label)
	}

	if len(measureAngle) > 0 {
		if len(measureAngle) != 3 {
			return fmt.Errorf("--angle needs exactly 3 points (vertex, ray, ray)")
		}
		vertex, err := parsePoint(measureAngle[0])
		if err != nil {
			return err
		}
		a, err := parsePoint(measureAngle[1])
		if err != nil {
			return err
		}
		b, err := parsePoint(measureAngle[2])
		if err != nil {
			return err
		}
		d, ok := dimension.Angle(vertex, a, b)
		if !ok {
			return fmt.Errorf("angle rays must have nonzero length")
		}
		fmt.Printf("angle at %s: %s\n", measureAngle[0], d.Label)
	}
	return nil
}
