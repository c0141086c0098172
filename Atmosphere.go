package go_aeroflow

import (
	"fmt"
	"math"

	"github.com/ponceRuhan/go_aeroflow/bmath/unit"
)

//Sutherland's law constants for the dynamic viscosity of air.
const cSutherlandBeta float64 = 1.458e-6
const cSutherlandTemperature float64 = 110.4

//Atmosphere describes the state of the U.S. Standard Atmosphere, 1976 at a
//single pressure-altitude and ISA temperature deviation.
//
//Every derived quantity is a pure function of the two inputs; the state is
//computed once at creation and safe to share between goroutines.
type Atmosphere struct {
	altitude float64
	disa     float64
	profile  layerProfile

	geometricHeight     float64
	gravity             float64
	molecularWeight     float64
	temperature         float64
	pressure            float64
	density             float64
	dynamicViscosity    float64
	kinematicViscosity  float64
	thermalConductivity float64
	speedSound          float64
	cpMass              float64
	cvMass              float64
	prandtl             float64
}

//CreateAtmosphere creates the atmosphere state at the pressure-altitude [m]
//and ISA temperature deviation [K] specified.
//
//Altitudes outside the 0..84852 m layer table are rejected with ErrAltitudeRange.
func CreateAtmosphere(altitude, disa float64) (Atmosphere, error) {
	profile, err := resolveLayer(altitude)
	if err != nil {
		return Atmosphere{}, err
	}
	a := Atmosphere{altitude: altitude, disa: disa, profile: profile}
	a.calculate()
	return a, nil
}

//MustCreateAtmosphere creates the atmosphere state but panics instead of
//returning an error.
func MustCreateAtmosphere(altitude, disa float64) Atmosphere {
	a, err := CreateAtmosphere(altitude, disa)
	if err != nil {
		panic(err)
	}
	return a
}

//CreateAtmosphereAt creates the atmosphere state at the altitude specified in
//any distance unit. The ISA deviation remains a plain temperature difference
//in kelvin, since unit conversion of absolute temperatures does not apply to
//differences.
func CreateAtmosphereAt(altitude unit.Distance, disa float64) (Atmosphere, error) {
	return CreateAtmosphere(altitude.In(unit.DistanceMeter), disa)
}

func (a *Atmosphere) calculate() {
	var rair = airConstant(a.altitude)

	a.geometricHeight = cEffectiveEarthRadius * a.altitude / (cEffectiveEarthRadius - a.altitude)
	a.gravity = cGravitySeaLevel * math.Pow(cEffectiveEarthRadius/(cEffectiveEarthRadius+a.geometricHeight), 2)
	a.molecularWeight = molecularWeightRatio(a.altitude) * cMolecularWeightSeaLevel

	var dh = a.altitude - a.profile.baseAltitude
	a.temperature = a.profile.baseTemperature + a.profile.lapseRate*dh + a.disa

	//The hydrostatic integration follows the undisturbed layer profile:
	//the ISA deviation shifts temperature and density, never pressure.
	if a.profile.lapseRate != 0 {
		a.pressure = a.profile.basePressure * math.Pow(
			a.profile.baseTemperature/(a.profile.baseTemperature+a.profile.lapseRate*dh),
			cGravitySeaLevel/(rair*a.profile.lapseRate))
	} else {
		a.pressure = a.profile.basePressure *
			math.Exp(-cGravitySeaLevel*dh/(rair*a.profile.baseTemperature))
	}

	a.density = a.pressure / (rair * a.temperature)
	a.dynamicViscosity = cSutherlandBeta * math.Pow(a.temperature, 1.5) /
		(a.temperature + cSutherlandTemperature)
	a.kinematicViscosity = a.dynamicViscosity / a.density
	a.thermalConductivity = 2.64638e-3 * math.Pow(a.temperature, 1.5) /
		(a.temperature + 245.4*math.Pow(10, -12/a.temperature))
	a.speedSound = math.Sqrt(cRatioSpecificHeat * rair * a.temperature)
	a.cpMass = rair * cRatioSpecificHeat / (cRatioSpecificHeat - 1)
	a.cvMass = a.cpMass / cRatioSpecificHeat
	a.prandtl = a.cpMass * a.dynamicViscosity / a.thermalConductivity
}

//Altitude returns the pressure-altitude the state was evaluated at [m]
func (a Atmosphere) Altitude() float64 {
	return a.altitude
}

//ISADeviation returns the temperature deviation from the standard profile [K]
func (a Atmosphere) ISADeviation() float64 {
	return a.disa
}

//GeometricHeight returns the geometric height [m]
func (a Atmosphere) GeometricHeight() float64 {
	return a.geometricHeight
}

//Gravity returns the gravity acceleration from the inverse-square law of
//gravitation [m/s2]
func (a Atmosphere) Gravity() float64 {
	return a.gravity
}

//MeanMolecularWeight returns the mean molecular weight of air [kg/kmol]
func (a Atmosphere) MeanMolecularWeight() float64 {
	return a.molecularWeight
}

//Temperature returns the static temperature, ISA deviation included [K]
func (a Atmosphere) Temperature() float64 {
	return a.temperature
}

//Pressure returns the absolute static pressure [Pa]
func (a Atmosphere) Pressure() float64 {
	return a.pressure
}

//Density returns the mass density [kg/m3]
func (a Atmosphere) Density() float64 {
	return a.density
}

//DynamicViscosity returns the dynamic viscosity by Sutherland's law [Pa.s]
func (a Atmosphere) DynamicViscosity() float64 {
	return a.dynamicViscosity
}

//KinematicViscosity returns the kinematic viscosity [m2/s]
func (a Atmosphere) KinematicViscosity() float64 {
	return a.kinematicViscosity
}

//ThermalConductivity returns the coefficient of thermal conductivity [W/(m.K)]
func (a Atmosphere) ThermalConductivity() float64 {
	return a.thermalConductivity
}

//SpeedOfSound returns the speed of sound [m/s]
func (a Atmosphere) SpeedOfSound() float64 {
	return a.speedSound
}

//CpMass returns the specific heat at constant pressure [J/(kg.K)]
func (a Atmosphere) CpMass() float64 {
	return a.cpMass
}

//CvMass returns the specific heat at constant volume [J/(kg.K)]
func (a Atmosphere) CvMass() float64 {
	return a.cvMass
}

//Prandtl returns the Prandtl number
func (a Atmosphere) Prandtl() float64 {
	return a.prandtl
}

//TemperatureRatio returns the temperature normalized by its sea-level value
func (a Atmosphere) TemperatureRatio() float64 {
	return a.temperature / cTemperatureSeaLevel
}

//PressureRatio returns the pressure normalized by its sea-level value
func (a Atmosphere) PressureRatio() float64 {
	return a.pressure / cPressureSeaLevel
}

//DensityRatio returns the density normalized by its sea-level value
func (a Atmosphere) DensityRatio() float64 {
	return a.density / cDensitySeaLevel
}

func (a Atmosphere) String() string {
	return fmt.Sprintf("Altitude:%.0fm,Disa:%.1fK,Temperature:%.2fK,Pressure:%.1fPa,Density:%.5fkg/m3",
		a.altitude, a.disa, a.temperature, a.pressure, a.density)
}
