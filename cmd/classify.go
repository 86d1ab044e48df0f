package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/conceptswipe/internal/gesture"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a drag vector with the configured thresholds",
	Long: `Classify prints what releasing a drag at (dx, dy) would do.
Negative dy is upward. Values are in gesture units, not terminal cells.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dx, _ := cmd.Flags().GetFloat64("dx")
		dy, _ := cmd.Flags().GetFloat64("dy")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		env := &environment{cfg: cfg}
		cl, err := env.classifier()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		v := gesture.DragVector{DX: dx, DY: dy}
		h := cl.OnDragUpdate(v)
		t := cl.Thresholds()
		fmt.Fprintf(w, "Vector:     dx=%g dy=%g\n", v.DX, v.DY)
		fmt.Fprintf(w, "Thresholds: horizontal=%g vertical=%g\n", t.Horizontal, t.Vertical)
		fmt.Fprintf(w, "Rotation:   %.1f°\n", h.Rotation)
		if c, ok := cl.OnDragEnd(v); ok {
			fmt.Fprintf(w, "Result:     %s\n", c)
		} else {
			fmt.Fprintln(w, "Result:     cancelled (card snaps back)")
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().Float64("dx", 0, "Horizontal displacement (positive is right)")
	classifyCmd.Flags().Float64("dy", 0, "Vertical displacement (negative is up)")
}
