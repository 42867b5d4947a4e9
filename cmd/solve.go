package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"

	"github.com/philipparndt/gointersect/pkg/analysis"
	"github.com/philipparndt/gointersect/pkg/geometry"
)

var (
	centerX, centerY, radius float64
	startX, startY           float64
	endX, endY               float64
	tolerance                float64
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Intersect a circle with a line segment",
	Long: `Compute the intersection points of a circle and a line segment given on the
command line. Points are printed in the order they are met when walking from
the segment start to its end.`,
	Example: "  gointersect solve --cx 0 --cy 0 --r 0.5 --x0 -1 --y0 0 --x1 1 --y1 0",
	Args:    cobra.NoArgs,
	RunE:    runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().Float64Var(&centerX, "cx", 0.0, "X coordinate of the circle center")
	solveCmd.Flags().Float64Var(&centerY, "cy", 0.0, "Y coordinate of the circle center")
	solveCmd.Flags().Float64Var(&radius, "r", 0.0, "circle radius")
	solveCmd.Flags().Float64Var(&startX, "x0", 0.0, "X coordinate of the segment start")
	solveCmd.Flags().Float64Var(&startY, "y0", 0.0, "Y coordinate of the segment start")
	solveCmd.Flags().Float64Var(&endX, "x1", 0.0, "X coordinate of the segment end")
	solveCmd.Flags().Float64Var(&endY, "y1", 0.0, "Y coordinate of the segment end")
	solveCmd.Flags().Float64Var(&tolerance, "eps", 0.0, "root acceptance tolerance (defaults to the settings file)")

	_ = solveCmd.MarkFlagRequired("r")
	solveCmd.MarkFlagsRequiredTogether("x0", "y0", "x1", "y1")
}

func runSolve(cmd *cobra.Command, args []string) error {
	if radius < 0 {
		return fmt.Errorf("radius must not be negative, got %g", radius)
	}
	eps := cfg.Solver.Tolerance
	if cmd.Flags().Changed("eps") {
		if tolerance <= 0 {
			return fmt.Errorf("tolerance must be positive, got %g", tolerance)
		}
		eps = tolerance
	}

	center := geometry.NewPoint2(centerX, centerY)
	p0 := geometry.NewPoint2(startX, startY)
	p1 := geometry.NewPoint2(endX, endY)

	points := geometry.IntersectCircleSegmentTol(center, radius, p0, p1, eps)
	logger.Debug("solved", "count", len(points), "eps", eps)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, colored(chalk.Cyan, "Circle-Segment Intersection"))
	fmt.Fprintln(out, "===========================")
	fmt.Fprintf(out, "Circle: center %s radius = %s\n", analysis.FormatPoint(center), analysis.FormatValue(radius))
	fmt.Fprintf(out, "Line segment: %s ~ %s\n", analysis.FormatPoint(p0), analysis.FormatPoint(p1))

	result := analysis.FormatIntersections(points)
	if len(points) == 0 {
		fmt.Fprintln(out, colored(chalk.Yellow, result))
	} else {
		fmt.Fprintln(out, colored(chalk.Green, result))
	}
	return nil
}
