package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ponceRuhan/go_aeroflow/bmath/unit"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aeroflow",
	Short: "Standard-atmosphere and airspeed calculator",
	Long: `aeroflow evaluates the U.S. Standard Atmosphere, 1976 at pressure-altitudes
up to 84852 m and converts between mach number, equivalent, calibrated and
true airspeed using compressible-flow relations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("aeroflow failed", "err", err)
		os.Exit(1)
	}
}

func altitudeUnitCode(name string) (byte, error) {
	switch name {
	case "m":
		return unit.DistanceMeter, nil
	case "km":
		return unit.DistanceKilometer, nil
	case "ft":
		return unit.DistanceFoot, nil
	case "fl":
		return unit.DistanceFlightLevel, nil
	default:
		return 0, fmt.Errorf("unknown altitude unit %q (use m, km, ft or fl)", name)
	}
}

func speedUnitCode(name string) (byte, error) {
	switch name {
	case "mps":
		return unit.VelocityMPS, nil
	case "kmh":
		return unit.VelocityKMH, nil
	case "fps":
		return unit.VelocityFPS, nil
	case "mph":
		return unit.VelocityMPH, nil
	case "kt":
		return unit.VelocityKT, nil
	default:
		return 0, fmt.Errorf("unknown speed unit %q (use mps, kmh, fps, mph or kt)", name)
	}
}
