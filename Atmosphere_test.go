package go_aeroflow_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ponceRuhan/go_aeroflow"
	"github.com/ponceRuhan/go_aeroflow/bmath/unit"
	"gonum.org/v1/gonum/floats/scalar"
)

func assertRel(t *testing.T, got, want, tol float64, name string) {
	if !scalar.EqualWithinRel(got, want, tol) {
		t.Errorf("Assertion %s failed (got %g, want %g)", name, got, want)
	}
}

func assertAbs(t *testing.T, got, want, tol float64, name string) {
	if math.Abs(got-want) > tol {
		t.Errorf("Assertion %s failed (got %g, want %g)", name, got, want)
	}
}

func TestSeaLevelIdentity(t *testing.T) {
	a := go_aeroflow.MustCreateAtmosphere(0, 0)

	assertRel(t, a.Temperature(), 288.15, 1e-12, "Temperature")
	assertRel(t, a.Pressure(), 101325.0, 1e-12, "Pressure")
	assertRel(t, a.Density(), 1.2250, 1e-3, "Density")
	assertRel(t, a.SpeedOfSound(), 340.294, 1e-4, "SpeedOfSound")
	assertRel(t, a.MeanMolecularWeight(), 28.96443, 1e-5, "MeanMolecularWeight")
	assertRel(t, a.DynamicViscosity(), 1.7894e-5, 1e-3, "DynamicViscosity")
	assertRel(t, a.ThermalConductivity(), 0.025326, 1e-3, "ThermalConductivity")
	assertRel(t, a.CpMass(), 1004.685, 1e-4, "CpMass")
	assertRel(t, a.CvMass(), 717.632, 1e-4, "CvMass")
	assertRel(t, a.Prandtl(), 0.7098, 2e-3, "Prandtl")
	assertRel(t, a.Gravity(), 9.80665, 1e-12, "Gravity")
	assertAbs(t, a.GeometricHeight(), 0, 1e-12, "GeometricHeight")

	assertRel(t, a.TemperatureRatio(), 1.0, 1e-12, "TemperatureRatio")
	assertRel(t, a.PressureRatio(), 1.0, 1e-12, "PressureRatio")
	assertRel(t, a.DensityRatio(), 1.0, 1e-12, "DensityRatio")
}

func TestTenKilometerState(t *testing.T) {
	a := go_aeroflow.MustCreateAtmosphere(10000, 0)

	assertRel(t, a.Temperature(), 223.15, 1e-9, "Temperature")
	assertRel(t, a.Pressure(), 26436.3, 1e-4, "Pressure")
	assertRel(t, a.Density(), 0.412707, 2e-4, "Density")
	assertRel(t, a.SpeedOfSound(), 299.463, 1e-4, "SpeedOfSound")
	assertRel(t, a.GeometricHeight(), 10015.76, 1e-5, "GeometricHeight")
	assertRel(t, a.Gravity(), 9.77582, 1e-5, "Gravity")
}

func TestLayerBoundaryContinuity(t *testing.T) {
	boundaries := []float64{11000, 20000, 32000, 47000, 51000, 71000, 84852}
	for _, h := range boundaries {
		below := go_aeroflow.MustCreateAtmosphere(h-1e-6, 0)
		at := go_aeroflow.MustCreateAtmosphere(h, 0)

		assertRel(t, below.Temperature(), at.Temperature(), 1e-9, "Temperature continuity")
		assertRel(t, below.Pressure(), at.Pressure(), 1e-9, "Pressure continuity")
	}
}

func TestMonotonicPressureAndDensity(t *testing.T) {
	var altitudes []float64
	for h := 0.0; h < 84852; h += 250 {
		altitudes = append(altitudes, h)
	}
	altitudes = append(altitudes, 84852)

	for _, disa := range []float64{0, 15} {
		batch, err := go_aeroflow.CreateAtmosphereRange(altitudes, disa)
		if err != nil {
			t.Fatalf("Batch evaluation failed: %v", err)
		}
		pressures := batch.Pressures()
		densities := batch.Densities()
		for i := 1; i < len(altitudes); i++ {
			if pressures[i] >= pressures[i-1] {
				t.Errorf("Pressure not decreasing between %g and %g m (disa=%g)",
					altitudes[i-1], altitudes[i], disa)
			}
			if densities[i] >= densities[i-1] {
				t.Errorf("Density not decreasing between %g and %g m (disa=%g)",
					altitudes[i-1], altitudes[i], disa)
			}
		}
	}
}

func TestOffsetShiftsTemperatureNotPressure(t *testing.T) {
	standard := go_aeroflow.MustCreateAtmosphere(5000, 0)
	hot := go_aeroflow.MustCreateAtmosphere(5000, 10)

	assertRel(t, hot.Pressure(), standard.Pressure(), 1e-12, "Pressure under offset")
	assertAbs(t, hot.Temperature()-standard.Temperature(), 10, 1e-9, "Temperature shift")
	assertRel(t, hot.Density()/standard.Density(),
		standard.Temperature()/hot.Temperature(), 1e-9, "Density under offset")
}

func TestMolecularWeightAboveTable(t *testing.T) {
	low := go_aeroflow.MustCreateAtmosphere(50000, 0)
	assertRel(t, low.MeanMolecularWeight(), 28.9644253, 1e-7, "M below 79 km")

	mid := go_aeroflow.MustCreateAtmosphere(80000, 0)
	assertRel(t, mid.MeanMolecularWeight(), 28.9640777, 1e-7, "M at 80 km")

	interpolated := go_aeroflow.MustCreateAtmosphere(79250, 0)
	assertRel(t, interpolated.MeanMolecularWeight(), 28.9643674, 1e-7, "M at 79.25 km")

	clamped := go_aeroflow.MustCreateAtmosphere(84700, 0)
	assertRel(t, clamped.MeanMolecularWeight(), 28.9551280, 1e-7, "M above table end")
}

func TestAltitudeRangeRejected(t *testing.T) {
	for _, h := range []float64{-0.1, -5000, 84852.1, 1e6, math.NaN()} {
		if _, err := go_aeroflow.CreateAtmosphere(h, 0); !errors.Is(err, go_aeroflow.ErrAltitudeRange) {
			t.Errorf("Altitude %g accepted, want ErrAltitudeRange", h)
		}
	}
	for _, h := range []float64{0, 84852} {
		if _, err := go_aeroflow.CreateAtmosphere(h, 0); err != nil {
			t.Errorf("Altitude %g rejected: %v", h, err)
		}
	}
}

func TestAtmosphereRangeMatchesScalar(t *testing.T) {
	altitudes := []float64{0, 1000, 11000, 25000, 47000, 60000, 84852}
	batch, err := go_aeroflow.CreateAtmosphereRange(altitudes, 5)
	if err != nil {
		t.Fatalf("Batch evaluation failed: %v", err)
	}
	if batch.Len() != len(altitudes) {
		t.Fatalf("Batch length %d, want %d", batch.Len(), len(altitudes))
	}
	for i, h := range altitudes {
		want := go_aeroflow.MustCreateAtmosphere(h, 5)
		got := batch.At(i)
		if got.Pressure() != want.Pressure() || got.Temperature() != want.Temperature() ||
			got.Density() != want.Density() {
			t.Errorf("Batch element %d differs from the scalar evaluation", i)
		}
	}
}

func TestAtmosphereRangeWithOffsets(t *testing.T) {
	altitudes := []float64{0, 10000, 20000}
	offsets := []float64{-10, 0, 10}
	batch, err := go_aeroflow.CreateAtmosphereRangeWithOffsets(altitudes, offsets)
	if err != nil {
		t.Fatalf("Batch evaluation failed: %v", err)
	}
	for i := range altitudes {
		assertRel(t, batch.At(i).ISADeviation(), offsets[i], 1e-12, "Element offset")
	}

	if _, err := go_aeroflow.CreateAtmosphereRangeWithOffsets(altitudes, offsets[:2]); !errors.Is(err, go_aeroflow.ErrLengthMismatch) {
		t.Errorf("Length mismatch accepted, got %v", err)
	}
	if _, err := go_aeroflow.CreateAtmosphereRange(nil, 0); !errors.Is(err, go_aeroflow.ErrEmptyInput) {
		t.Errorf("Empty input accepted, got %v", err)
	}
	if _, err := go_aeroflow.CreateAtmosphereRange([]float64{0, 95000}, 0); !errors.Is(err, go_aeroflow.ErrAltitudeRange) {
		t.Errorf("Out-of-range batch element accepted, got %v", err)
	}
}

func TestCreateAtmosphereAt(t *testing.T) {
	a, err := go_aeroflow.CreateAtmosphereAt(unit.MustCreateDistance(350, unit.DistanceFlightLevel), 0)
	if err != nil {
		t.Fatalf("FL350 rejected: %v", err)
	}
	assertRel(t, a.Altitude(), 10668, 1e-12, "FL350 altitude")
}
