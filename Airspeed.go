package go_aeroflow

import (
	"errors"
	"fmt"
	"math"
)

//ErrSpeedInput is returned when the airspeed conversion is given anything
//other than exactly one of mach, eas, cas and tas.
var ErrSpeedInput = errors.New("exactly one of mach, eas, cas and tas must be supplied")

//SpeedSpec selects the single airspeed quantity driving a conversion.
//Exactly one field must be non-nil: Mach is dimensionless, the three speeds
//are in m/s.
type SpeedSpec struct {
	Mach *float64
	EAS  *float64
	CAS  *float64
	TAS  *float64
}

//Speed holds the result of an airspeed conversion at a given
//pressure-altitude and ISA deviation: all four airspeed quantities together
//with the impact and dynamic pressure.
//
//Formulas follow Olson, Aircraft Performance Flight Testing (2000), with the
//Rayleigh-Pitot relation above Mach one.
type Speed struct {
	atm Atmosphere

	mach            float64
	eas             float64
	cas             float64
	tas             float64
	impactPressure  float64
	dynamicPressure float64
}

//CreateSpeed converts the single quantity selected by the spec at the
//pressure-altitude [m] and ISA deviation [K] specified, using the default
//root solver for the branches without a closed-form inverse.
func CreateSpeed(spec SpeedSpec, altitude, disa float64) (Speed, error) {
	return CreateSpeedWithSolver(spec, altitude, disa, CreateNewtonSolver())
}

//CreateSpeedWithSolver is CreateSpeed with a caller-supplied root solver.
func CreateSpeedWithSolver(spec SpeedSpec, altitude, disa float64, solver RootSolver) (Speed, error) {
	var supplied int
	for _, q := range []*float64{spec.Mach, spec.EAS, spec.CAS, spec.TAS} {
		if q != nil {
			supplied++
		}
	}
	if supplied != 1 {
		return Speed{}, fmt.Errorf("%w: %d supplied", ErrSpeedInput, supplied)
	}

	atm, err := CreateAtmosphere(altitude, disa)
	if err != nil {
		return Speed{}, err
	}

	v := Speed{atm: atm}
	switch {
	case spec.Mach != nil:
		err = v.fromMach(*spec.Mach, solver)
	case spec.EAS != nil:
		err = v.fromEAS(*spec.EAS, solver)
	case spec.TAS != nil:
		err = v.fromTAS(*spec.TAS, solver)
	default:
		err = v.fromCAS(*spec.CAS, solver)
	}
	if err != nil {
		return Speed{}, err
	}
	return v, nil
}

//CreateSpeedFromMach converts a mach number.
func CreateSpeedFromMach(mach, altitude, disa float64) (Speed, error) {
	return CreateSpeed(SpeedSpec{Mach: &mach}, altitude, disa)
}

//CreateSpeedFromEAS converts an equivalent airspeed [m/s].
func CreateSpeedFromEAS(eas, altitude, disa float64) (Speed, error) {
	return CreateSpeed(SpeedSpec{EAS: &eas}, altitude, disa)
}

//CreateSpeedFromCAS converts a calibrated airspeed [m/s].
func CreateSpeedFromCAS(cas, altitude, disa float64) (Speed, error) {
	return CreateSpeed(SpeedSpec{CAS: &cas}, altitude, disa)
}

//CreateSpeedFromTAS converts a true airspeed [m/s].
func CreateSpeedFromTAS(tas, altitude, disa float64) (Speed, error) {
	return CreateSpeed(SpeedSpec{TAS: &tas}, altitude, disa)
}

//impactPressureFromMach applies the subsonic pitot relation below Mach one
//and the Rayleigh-Pitot relation at and above it, against the ambient static
//pressure. The two branches meet continuously at Mach one.
func (v Speed) impactPressureFromMach(mach float64) float64 {
	p := v.atm.Pressure()
	if mach < 1 {
		return p * (math.Pow(1.0+0.2*mach*mach, 3.5) - 1.0)
	}
	return p * (math.Pow(1.2*mach*mach, 3.5)*math.Pow(2.4/(2.8*mach*mach-0.4), 2.5) - 1.0)
}

//casFromImpactPressure inverts the sea-level pitot calibration. The closed
//form only holds below the sea-level speed of sound; past it the supersonic
//calibration is inverted numerically, seeded with the closed-form estimate.
func casFromImpactPressure(qc float64, solver RootSolver) (float64, error) {
	cas := speedSoundSeaLevel * math.Sqrt(5.0*(math.Pow(qc/cPressureSeaLevel+1.0, 1.0/3.5)-1.0))
	if cas < speedSoundSeaLevel {
		return cas, nil
	}
	return solver.Solve(func(x float64) float64 {
		ratio := x / speedSoundSeaLevel
		return x - speedSoundSeaLevel*0.881285*
			math.Sqrt((qc/cPressureSeaLevel+1.0)*math.Pow(1.0-1.0/(7.0*ratio*ratio), 2.5))
	}, cas)
}

//machFromImpactPressure recovers the mach number from the impact pressure at
//the ambient static pressure, solving the Rayleigh-Pitot relation
//numerically when the subsonic closed form lands at or above Mach one.
func (v Speed) machFromImpactPressure(qc float64, solver RootSolver) (float64, error) {
	p := v.atm.Pressure()
	mach := math.Sqrt(5.0 * (math.Pow(qc/p+1.0, 2.0/7.0) - 1.0))
	if mach < 1 {
		return mach, nil
	}
	return solver.Solve(func(x float64) float64 {
		return x - 0.881285*math.Sqrt((qc/p+1.0)*math.Pow(1.0-1.0/(7.0*x*x), 2.5))
	}, mach)
}

func (v *Speed) fromMach(mach float64, solver RootSolver) error {
	v.mach = mach
	v.impactPressure = v.impactPressureFromMach(mach)
	v.tas = mach * v.atm.SpeedOfSound()
	v.dynamicPressure = 0.5 * v.atm.Density() * v.tas * v.tas
	v.eas = v.tas * math.Sqrt(v.atm.DensityRatio())

	cas, err := casFromImpactPressure(v.impactPressure, solver)
	if err != nil {
		return err
	}
	v.cas = cas
	return nil
}

func (v *Speed) fromEAS(eas float64, solver RootSolver) error {
	v.eas = eas
	v.mach = eas / (speedSoundSeaLevel * math.Sqrt(v.atm.PressureRatio()))
	v.tas = eas / math.Sqrt(v.atm.DensityRatio())
	v.impactPressure = v.impactPressureFromMach(v.mach)
	v.dynamicPressure = 0.5 * v.atm.Density() * v.tas * v.tas

	cas, err := casFromImpactPressure(v.impactPressure, solver)
	if err != nil {
		return err
	}
	v.cas = cas
	return nil
}

func (v *Speed) fromTAS(tas float64, solver RootSolver) error {
	v.tas = tas
	v.mach = tas / v.atm.SpeedOfSound()
	v.eas = tas * math.Sqrt(v.atm.DensityRatio())
	v.impactPressure = v.impactPressureFromMach(v.mach)
	v.dynamicPressure = 0.5 * v.atm.Density() * v.tas * v.tas

	cas, err := casFromImpactPressure(v.impactPressure, solver)
	if err != nil {
		return err
	}
	v.cas = cas
	return nil
}

func (v *Speed) fromCAS(cas float64, solver RootSolver) error {
	v.cas = cas

	//The pitot calibration is defined against sea-level static pressure;
	//indicator readings at and above the sea-level speed of sound use the
	//Rayleigh form, continuous with the subsonic one.
	ratio := cas / speedSoundSeaLevel
	if ratio < 1 {
		v.impactPressure = cPressureSeaLevel * (math.Pow(1.0+0.2*ratio*ratio, 3.5) - 1.0)
	} else {
		v.impactPressure = cPressureSeaLevel *
			(166.9216*math.Pow(ratio, 7)/math.Pow(7.0*ratio*ratio-1.0, 2.5) - 1.0)
	}

	mach, err := v.machFromImpactPressure(v.impactPressure, solver)
	if err != nil {
		return err
	}
	v.mach = mach
	v.tas = mach * v.atm.SpeedOfSound()
	v.eas = v.tas * math.Sqrt(v.atm.DensityRatio())
	v.dynamicPressure = 0.5 * v.atm.Density() * v.tas * v.tas
	return nil
}

//Atmosphere returns the ambient atmosphere state the conversion used.
func (v Speed) Atmosphere() Atmosphere {
	return v.atm
}

//Mach returns the mach number
func (v Speed) Mach() float64 {
	return v.mach
}

//EAS returns the equivalent airspeed [m/s]
func (v Speed) EAS() float64 {
	return v.eas
}

//CAS returns the calibrated airspeed [m/s]
func (v Speed) CAS() float64 {
	return v.cas
}

//TAS returns the true airspeed [m/s]
func (v Speed) TAS() float64 {
	return v.tas
}

//ImpactPressure returns the impact pressure [Pa]
func (v Speed) ImpactPressure() float64 {
	return v.impactPressure
}

//DynamicPressure returns the dynamic pressure [Pa]
func (v Speed) DynamicPressure() float64 {
	return v.dynamicPressure
}

func (v Speed) String() string {
	return fmt.Sprintf("Mach:%.4f,EAS:%.2fm/s,CAS:%.2fm/s,TAS:%.2fm/s,Qc:%.1fPa,Q:%.1fPa",
		v.mach, v.eas, v.cas, v.tas, v.impactPressure, v.dynamicPressure)
}
