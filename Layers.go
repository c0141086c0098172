package go_aeroflow

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

//Reference constants of the U.S. Standard Atmosphere, 1976.

//cGasConstant is the universal gas constant [(N.m)/(kmol.K)]
const cGasConstant float64 = 8.31432e3

//cGravitySeaLevel is the sea-level value of the acceleration of gravity [m/s2]
const cGravitySeaLevel float64 = 9.80665

//cPressureSeaLevel is the standard sea-level atmospheric pressure [Pa]
const cPressureSeaLevel float64 = 101325.0

//cTemperatureSeaLevel is the standard sea-level temperature [K]
const cTemperatureSeaLevel float64 = 288.15

//cRatioSpecificHeat is the ratio of specific heats cp/cv of air
const cRatioSpecificHeat float64 = 1.40

//cEffectiveEarthRadius is the effective earth radius from the equation given
//by Harrison (1968) [m]
const cEffectiveEarthRadius float64 = 6356766.0

//cMolecularWeightSeaLevel is the mean molecular weight of sea-level dry air,
//the composition-weighted sum over the ten standard species [kg/kmol]:
//N2, O2, Ar, CO2, Ne, He, Kr, Xe, CH4 and H2
const cMolecularWeightSeaLevel float64 = 28.01340*0.78084 + 31.99880*0.209476 +
	39.94800*0.00934 + 44.00995*0.000314 +
	20.18300*1.818e-5 + 4.002600*5.24e-6 +
	83.80000*1.14e-6 + 131.3000*8.7e-8 +
	16.04303*2.0e-6 + 2.015940*5.0e-7

//cDensitySeaLevel is the standard sea-level density [kg/m3]
const cDensitySeaLevel float64 = cPressureSeaLevel * cMolecularWeightSeaLevel /
	(cGasConstant * cTemperatureSeaLevel)

//cTopAltitude is the upper bound of the layer table [m]
const cTopAltitude float64 = 84852.0

//cMolecularRatioFloor is the altitude below which the mean molecular weight
//equals its sea-level value [m]
const cMolecularRatioFloor float64 = 79000.0

//speedSoundSeaLevel is the standard sea-level speed of sound [m/s]
var speedSoundSeaLevel = math.Sqrt(cRatioSpecificHeat *
	(cGasConstant / cMolecularWeightSeaLevel) * cTemperatureSeaLevel)

//ErrAltitudeRange is returned for pressure-altitudes outside the supported
//0..84852 m range of the layer table.
var ErrAltitudeRange = errors.New("pressure-altitude is outside the 0..84852 m layer table")

//Molecular-scale temperature gradient of each layer [K/m] and the base
//altitude of each layer [m]. The eighth base closes the last layer.
var standardLapseRates = [7]float64{-6.5e-3, 0.0, 1.0e-3, 2.8e-3, 0.0, -2.8e-3, -2.0e-3}
var standardLayerBases = [8]float64{0.0, 11000.0, 20000.0, 32000.0, 47000.0, 51000.0, 71000.0, cTopAltitude}

//Temperature and pressure at the entry of each layer, accumulated once over
//the preceding layers at package initialization.
var layerEntryTemperature [7]float64
var layerEntryPressure [7]float64

//M/M0 lookup table between 79000 and 84500 m. Below the table the ratio is
//exactly one, above it the last value is held.
var molecularRatioAltitudes = []float64{
	79000, 79500, 80000, 80500, 81000, 81500,
	82000, 82500, 83000, 83500, 84000, 84500,
}
var molecularRatioValues = []float64{
	1.0, 0.999996, 0.999988, 0.999969, 0.999938, 0.999904,
	0.999864, 0.999822, 0.999778, 0.999731, 0.999681, 0.999679,
}
var molecularRatioTable interp.PiecewiseLinear

func init() {
	if err := molecularRatioTable.Fit(molecularRatioAltitudes, molecularRatioValues); err != nil {
		panic(err)
	}

	//The accumulation only spans layer bases up to 71000 m where M/M0 is
	//exactly one, so the sea-level air constant applies throughout.
	var rair = cGasConstant / cMolecularWeightSeaLevel
	layerEntryTemperature[0] = cTemperatureSeaLevel
	layerEntryPressure[0] = cPressureSeaLevel
	for i := 1; i < len(standardLapseRates); i++ {
		var dh = standardLayerBases[i] - standardLayerBases[i-1]
		var lapse = standardLapseRates[i-1]
		var tEntry = layerEntryTemperature[i-1]
		var tExit = tEntry + lapse*dh

		var factor float64
		if lapse != 0 {
			factor = math.Pow(tEntry/tExit, cGravitySeaLevel/(rair*lapse))
		} else {
			factor = math.Exp(-cGravitySeaLevel * dh / (rair * tEntry))
		}
		layerEntryTemperature[i] = tExit
		layerEntryPressure[i] = layerEntryPressure[i-1] * factor
	}
}

//molecularWeightRatio returns the ratio of the mean molecular weight at the
//pressure-altitude to its sea-level value.
func molecularWeightRatio(altitude float64) float64 {
	if altitude < cMolecularRatioFloor {
		return 1.0
	}
	if altitude >= molecularRatioAltitudes[len(molecularRatioAltitudes)-1] {
		return molecularRatioValues[len(molecularRatioValues)-1]
	}
	return molecularRatioTable.Predict(altitude)
}

//airConstant returns the gas constant of air at the pressure-altitude
//[(N.m)/(kg.K)]
func airConstant(altitude float64) float64 {
	return cGasConstant / (molecularWeightRatio(altitude) * cMolecularWeightSeaLevel)
}

//layerProfile describes the atmospheric layer enclosing a pressure-altitude:
//its lapse rate and the altitude, temperature and pressure at the layer entry.
type layerProfile struct {
	lapseRate       float64
	baseAltitude    float64
	baseTemperature float64
	basePressure    float64
}

//resolveLayer finds the layer containing the pressure-altitude. Layer
//intervals are half open, so a layer boundary resolves to the layer above it
//and the last layer is open ended up to the top of the table.
func resolveLayer(altitude float64) (layerProfile, error) {
	if altitude < 0 || altitude > cTopAltitude || math.IsNaN(altitude) {
		return layerProfile{}, fmt.Errorf("%w: %g m", ErrAltitudeRange, altitude)
	}
	var pos = len(standardLapseRates) - 1
	for pos > 0 && standardLayerBases[pos] > altitude {
		pos--
	}
	return layerProfile{
		lapseRate:       standardLapseRates[pos],
		baseAltitude:    standardLayerBases[pos],
		baseTemperature: layerEntryTemperature[pos],
		basePressure:    layerEntryPressure[pos],
	}, nil
}
