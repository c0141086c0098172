package unit

import "fmt"

//TemperatureKelvin is the value indicating that temperature value is expressed in kelvins
const TemperatureKelvin byte = 40

//TemperatureCelsius is the value indicating that temperature value is expressed in degrees of Celsius
const TemperatureCelsius byte = 41

//TemperatureFahrenheit is the value indicating that temperature value is expressed in degrees of Fahrenheit
const TemperatureFahrenheit byte = 42

//TemperatureRankine is the value indicating that temperature value is expressed in degrees of Rankine
const TemperatureRankine byte = 43

func temperatureToDefault(value float64, units byte) (float64, error) {
	switch units {
	case TemperatureKelvin:
		return value, nil
	case TemperatureCelsius:
		return value + 273.15, nil
	case TemperatureFahrenheit:
		return (value + 459.67) * 5 / 9, nil
	case TemperatureRankine:
		return value * 5 / 9, nil
	default:
		return 0, fmt.Errorf("Temperature: unit %d is not supported", units)
	}
}

func temperatureFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case TemperatureKelvin:
		return value, nil
	case TemperatureCelsius:
		return value - 273.15, nil
	case TemperatureFahrenheit:
		return value*9/5 - 459.67, nil
	case TemperatureRankine:
		return value * 9 / 5, nil
	default:
		return 0, fmt.Errorf("Temperature: unit %d is not supported", units)
	}
}

//Temperature struct keeps absolute temperature values
type Temperature struct {
	value        float64
	defaultUnits byte
}

//CreateTemperature creates a temperature value.
//
//units are measurement unit and may be any value from
//unit.Temperature* constants.
func CreateTemperature(value float64, units byte) (Temperature, error) {
	v, err := temperatureToDefault(value, units)
	if err != nil {
		return Temperature{}, err
	}
	return Temperature{value: v, defaultUnits: units}, nil
}

//MustCreateTemperature creates the temperature value but panics instead of returning an error
func MustCreateTemperature(value float64, units byte) Temperature {
	v, err := CreateTemperature(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the temperature in the specified units.
//
//The method returns an error in case the unit is not supported.
func (v Temperature) Value(units byte) (float64, error) {
	return temperatureFromDefault(v.value, units)
}

//Convert converts the value into the specified units.
func (v Temperature) Convert(units byte) Temperature {
	return Temperature{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Temperature) In(units byte) float64 {
	x, e := temperatureFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Temperature) String() string {
	x, e := temperatureFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	var accuracy int
	switch v.defaultUnits {
	case TemperatureKelvin:
		unitName = "K"
		accuracy = 2
	case TemperatureCelsius:
		unitName = "°C"
		accuracy = 1
	case TemperatureFahrenheit:
		unitName = "°F"
		accuracy = 1
	case TemperatureRankine:
		unitName = "°R"
		accuracy = 1
	default:
		unitName = "?"
		accuracy = 6
	}
	format := fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}

//Units return the units in which the value is measured
func (v Temperature) Units() byte {
	return v.defaultUnits
}
