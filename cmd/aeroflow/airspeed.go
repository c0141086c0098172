package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ponceRuhan/go_aeroflow"
	"github.com/ponceRuhan/go_aeroflow/bmath/unit"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var optSpeedAltitude float64
var optSpeedAltitudeUnit string
var optSpeedDisa float64
var optSpeedUnit string
var optMach float64
var optEAS float64
var optCAS float64
var optTAS float64

var airspeedCmd = &cobra.Command{
	Use:   "airspeed",
	Short: "Convert between mach, equivalent, calibrated and true airspeed",
	Long: `Converts exactly one supplied airspeed quantity into the other three,
together with the impact and dynamic pressure, at the given
pressure-altitude and ISA deviation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		altUnits, err := altitudeUnitCode(optSpeedAltitudeUnit)
		if err != nil {
			return err
		}
		speedUnits, err := speedUnitCode(optSpeedUnit)
		if err != nil {
			return err
		}

		altitude, err := unit.CreateDistance(optSpeedAltitude, altUnits)
		if err != nil {
			return err
		}

		spec, err := speedSpecFromFlags(cmd.Flags(), speedUnits)
		if err != nil {
			return err
		}

		v, err := go_aeroflow.CreateSpeed(spec, altitude.In(unit.DistanceMeter), optSpeedDisa)
		if err != nil {
			return err
		}

		eas := unit.MustCreateVelocity(v.EAS(), unit.VelocityMPS).Convert(speedUnits)
		cas := unit.MustCreateVelocity(v.CAS(), unit.VelocityMPS).Convert(speedUnits)
		tas := unit.MustCreateVelocity(v.TAS(), unit.VelocityMPS).Convert(speedUnits)

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintf(w, "MACH\t%.4f\t\n", v.Mach())
		fmt.Fprintf(w, "EAS\t%s\t\n", eas)
		fmt.Fprintf(w, "CAS\t%s\t\n", cas)
		fmt.Fprintf(w, "TAS\t%s\t\n", tas)
		fmt.Fprintf(w, "QC\t%s\t\n", unit.MustCreatePressure(v.ImpactPressure(), unit.PressurePa))
		fmt.Fprintf(w, "Q\t%s\t\n", unit.MustCreatePressure(v.DynamicPressure(), unit.PressurePa))
		return w.Flush()
	},
}

//speedSpecFromFlags builds the conversion spec from whichever speed flags
//were set, converting the speed values to m/s. Supplying zero or several is
//left to the library to reject.
func speedSpecFromFlags(flags *pflag.FlagSet, speedUnits byte) (go_aeroflow.SpeedSpec, error) {
	var spec go_aeroflow.SpeedSpec
	if flags.Changed("mach") {
		spec.Mach = &optMach
	}
	if flags.Changed("eas") {
		v, err := unit.CreateVelocity(optEAS, speedUnits)
		if err != nil {
			return spec, err
		}
		mps := v.In(unit.VelocityMPS)
		spec.EAS = &mps
	}
	if flags.Changed("cas") {
		v, err := unit.CreateVelocity(optCAS, speedUnits)
		if err != nil {
			return spec, err
		}
		mps := v.In(unit.VelocityMPS)
		spec.CAS = &mps
	}
	if flags.Changed("tas") {
		v, err := unit.CreateVelocity(optTAS, speedUnits)
		if err != nil {
			return spec, err
		}
		mps := v.In(unit.VelocityMPS)
		spec.TAS = &mps
	}
	return spec, nil
}

func init() {
	rootCmd.AddCommand(airspeedCmd)

	flags := airspeedCmd.Flags()
	flags.Float64Var(&optSpeedAltitude, "altitude", 0, "pressure-altitude")
	flags.StringVar(&optSpeedAltitudeUnit, "altitude-unit", "m", "altitude unit (m, km, ft, fl)")
	flags.Float64Var(&optSpeedDisa, "disa", 0, "ISA temperature deviation [K]")
	flags.StringVar(&optSpeedUnit, "speed-unit", "mps", "speed unit for input and output (mps, kmh, fps, mph, kt)")
	flags.Float64Var(&optMach, "mach", 0, "mach number")
	flags.Float64Var(&optEAS, "eas", 0, "equivalent airspeed")
	flags.Float64Var(&optCAS, "cas", 0, "calibrated airspeed")
	flags.Float64Var(&optTAS, "tas", 0, "true airspeed")
}
