package go_aeroflow

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

//ErrLengthMismatch is returned when the ISA deviation sequence does not match
//the altitude sequence element for element.
var ErrLengthMismatch = errors.New("offset sequence length differs from altitude sequence length")

//ErrEmptyInput is returned when the altitude sequence is empty.
var ErrEmptyInput = errors.New("altitude sequence is empty")

//AtmosphereRange holds atmosphere states evaluated over a batch of
//pressure-altitudes, in input order.
type AtmosphereRange struct {
	states []Atmosphere
}

//CreateAtmosphereRange evaluates the atmosphere over the pressure-altitudes
//[m] specified, broadcasting a single ISA deviation [K] to every element.
func CreateAtmosphereRange(altitudes []float64, disa float64) (AtmosphereRange, error) {
	if len(altitudes) == 0 {
		return AtmosphereRange{}, ErrEmptyInput
	}
	offsets := make([]float64, len(altitudes))
	for i := range offsets {
		offsets[i] = disa
	}
	return createAtmosphereRange(altitudes, offsets)
}

//CreateAtmosphereRangeWithOffsets evaluates the atmosphere over the
//pressure-altitudes [m] specified, pairing each with its own ISA
//deviation [K]. The two sequences must have the same length.
func CreateAtmosphereRangeWithOffsets(altitudes, disa []float64) (AtmosphereRange, error) {
	if len(altitudes) == 0 {
		return AtmosphereRange{}, ErrEmptyInput
	}
	if len(disa) != len(altitudes) {
		return AtmosphereRange{}, fmt.Errorf("%w: %d offsets for %d altitudes",
			ErrLengthMismatch, len(disa), len(altitudes))
	}
	return createAtmosphereRange(altitudes, disa)
}

//createAtmosphereRange evaluates the elements concurrently. Elements are
//independent of each other, so the only shared state is the read-only layer
//table and each goroutine's own slot of the result slice.
func createAtmosphereRange(altitudes, disa []float64) (AtmosphereRange, error) {
	states := make([]Atmosphere, len(altitudes))
	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i := range altitudes {
		i := i
		group.Go(func() error {
			a, err := CreateAtmosphere(altitudes[i], disa[i])
			if err != nil {
				return err
			}
			states[i] = a
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return AtmosphereRange{}, err
	}
	return AtmosphereRange{states: states}, nil
}

//Len returns the number of evaluated states.
func (r AtmosphereRange) Len() int {
	return len(r.states)
}

//At returns the full atmosphere state of the i-th element.
func (r AtmosphereRange) At(i int) Atmosphere {
	return r.states[i]
}

//Collect gathers one derived quantity across the batch, in input order.
func (r AtmosphereRange) Collect(quantity func(Atmosphere) float64) []float64 {
	values := make([]float64, len(r.states))
	for i, a := range r.states {
		values[i] = quantity(a)
	}
	return values
}

//Altitudes returns the pressure-altitudes of the batch [m]
func (r AtmosphereRange) Altitudes() []float64 {
	return r.Collect(Atmosphere.Altitude)
}

//Temperatures returns the static temperatures of the batch [K]
func (r AtmosphereRange) Temperatures() []float64 {
	return r.Collect(Atmosphere.Temperature)
}

//Pressures returns the static pressures of the batch [Pa]
func (r AtmosphereRange) Pressures() []float64 {
	return r.Collect(Atmosphere.Pressure)
}

//Densities returns the mass densities of the batch [kg/m3]
func (r AtmosphereRange) Densities() []float64 {
	return r.Collect(Atmosphere.Density)
}

//SpeedsOfSound returns the speeds of sound of the batch [m/s]
func (r AtmosphereRange) SpeedsOfSound() []float64 {
	return r.Collect(Atmosphere.SpeedOfSound)
}
