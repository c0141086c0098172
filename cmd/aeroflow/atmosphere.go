package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ponceRuhan/go_aeroflow"
	"github.com/ponceRuhan/go_aeroflow/bmath/unit"
	"github.com/spf13/cobra"
)

var optAltitudes []float64
var optAltitudeUnit string
var optDisa float64

var atmosphereCmd = &cobra.Command{
	Use:   "atmosphere",
	Short: "Evaluate the standard atmosphere over one or more altitudes",
	RunE: func(cmd *cobra.Command, args []string) error {
		units, err := altitudeUnitCode(optAltitudeUnit)
		if err != nil {
			return err
		}

		altitudes := make([]float64, len(optAltitudes))
		for i, h := range optAltitudes {
			d, err := unit.CreateDistance(h, units)
			if err != nil {
				return err
			}
			altitudes[i] = d.In(unit.DistanceMeter)
		}

		batch, err := go_aeroflow.CreateAtmosphereRange(altitudes, optDisa)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "ALT m\tT K\tP Pa\tRHO kg/m3\tA m/s\tMU Pa.s\tNU m2/s\tK W/(m.K)\tPR\t")
		for i := 0; i < batch.Len(); i++ {
			a := batch.At(i)
			fmt.Fprintf(w, "%.0f\t%.2f\t%.1f\t%.5f\t%.2f\t%.4e\t%.4e\t%.5f\t%.4f\t\n",
				a.Altitude(), a.Temperature(), a.Pressure(), a.Density(), a.SpeedOfSound(),
				a.DynamicViscosity(), a.KinematicViscosity(), a.ThermalConductivity(), a.Prandtl())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(atmosphereCmd)

	flags := atmosphereCmd.Flags()
	flags.Float64SliceVar(&optAltitudes, "altitude", []float64{0}, "pressure-altitudes to evaluate")
	flags.StringVar(&optAltitudeUnit, "altitude-unit", "m", "altitude unit (m, km, ft, fl)")
	flags.Float64Var(&optDisa, "disa", 0, "ISA temperature deviation [K]")
}
