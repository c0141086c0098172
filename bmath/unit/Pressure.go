package unit

import "fmt"

//PressurePa is the value indicating that pressure value is expressed in pascals
const PressurePa byte = 30

//PressureHPa is the value indicating that pressure value is expressed in hectopascals
const PressureHPa byte = 31

//PressureMmHg is the value indicating that pressure value is expressed in millimeters of mercury
const PressureMmHg byte = 32

//PressureInHg is the value indicating that pressure value is expressed in inches of mercury
const PressureInHg byte = 33

//PressurePSF is the value indicating that pressure value is expressed in pounds per square foot
const PressurePSF byte = 34

func pressureToDefault(value float64, units byte) (float64, error) {
	switch units {
	case PressurePa:
		return value, nil
	case PressureHPa:
		return value * 100, nil
	case PressureMmHg:
		return value * 133.322387415, nil
	case PressureInHg:
		return value * 3386.388640341, nil
	case PressurePSF:
		return value * 47.880258980336, nil
	default:
		return 0, fmt.Errorf("Pressure: unit %d is not supported", units)
	}
}

func pressureFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case PressurePa:
		return value, nil
	case PressureHPa:
		return value / 100, nil
	case PressureMmHg:
		return value / 133.322387415, nil
	case PressureInHg:
		return value / 3386.388640341, nil
	case PressurePSF:
		return value / 47.880258980336, nil
	default:
		return 0, fmt.Errorf("Pressure: unit %d is not supported", units)
	}
}

//Pressure struct keeps pressure values
type Pressure struct {
	value        float64
	defaultUnits byte
}

//CreatePressure creates a pressure value.
//
//units are measurement unit and may be any value from
//unit.Pressure* constants.
func CreatePressure(value float64, units byte) (Pressure, error) {
	v, err := pressureToDefault(value, units)
	if err != nil {
		return Pressure{}, err
	}
	return Pressure{value: v, defaultUnits: units}, nil
}

//MustCreatePressure creates the pressure value but panics instead of returning an error
func MustCreatePressure(value float64, units byte) Pressure {
	v, err := CreatePressure(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the pressure in the specified units.
//
//The method returns an error in case the unit is not supported.
func (v Pressure) Value(units byte) (float64, error) {
	return pressureFromDefault(v.value, units)
}

//Convert converts the value into the specified units.
func (v Pressure) Convert(units byte) Pressure {
	return Pressure{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Pressure) In(units byte) float64 {
	x, e := pressureFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Pressure) String() string {
	x, e := pressureFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	var accuracy int
	switch v.defaultUnits {
	case PressurePa:
		unitName = "Pa"
		accuracy = 0
	case PressureHPa:
		unitName = "hPa"
		accuracy = 2
	case PressureMmHg:
		unitName = "mmHg"
		accuracy = 1
	case PressureInHg:
		unitName = "inHg"
		accuracy = 2
	case PressurePSF:
		unitName = "psf"
		accuracy = 2
	default:
		unitName = "?"
		accuracy = 6
	}
	format := fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}

//Units return the units in which the value is measured
func (v Pressure) Units() byte {
	return v.defaultUnits
}
