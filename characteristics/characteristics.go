// Package characteristics implements the fixed 4-vector resource algebra
// (cpu, memory, disk, gpu) shared by every Service requirement and
// Resource capacity in the scheduler core.
//
// Characteristics are immutable after construction: every operation
// returns a new value rather than mutating the receiver.
package characteristics

import (
	"errors"
	"math"
)

// ErrBadLength indicates a serialized values array was not length 4.
var ErrBadLength = errors.New("characteristics: values must have length 4")

// divisionGuard is added to every divisor before dividing so a zero-valued
// resource dimension (e.g. no GPU) never produces a division by zero.
// The guard is part of the arithmetic contract, not a zero-check
// short-circuit: it participates in the resulting quotient even when the
// divisor is non-zero.
const divisionGuard = 1e-10

// equalityTolerance is the fuzzy-equality tolerance used by Equal.
const equalityTolerance = 1e-5

// Characteristics is a fixed, non-negative resource vector.
type Characteristics struct {
	CPU    float64
	Memory float64
	Disk   float64
	GPU    float64
}

// New constructs a Characteristics from its four components.
func New(cpu, memory, disk, gpu float64) Characteristics {
	return Characteristics{CPU: cpu, Memory: memory, Disk: disk, GPU: gpu}
}

// LessEqual reports whether c is component-wise less than or equal to o.
// Used to test resource feasibility: a service's requirements must be
// LessEqual a resource's capacity.
func (c Characteristics) LessEqual(o Characteristics) bool {
	return c.CPU <= o.CPU && c.Memory <= o.Memory && c.Disk <= o.Disk && c.GPU <= o.GPU
}

// Add returns the component-wise sum of c and o.
func (c Characteristics) Add(o Characteristics) Characteristics {
	return Characteristics{
		CPU:    c.CPU + o.CPU,
		Memory: c.Memory + o.Memory,
		Disk:   c.Disk + o.Disk,
		GPU:    c.GPU + o.GPU,
	}
}

// Divide returns the component-wise quotient c/o, guarding every divisor
// with +1e-10 so a zero dimension in o never divides by zero.
func (c Characteristics) Divide(o Characteristics) Characteristics {
	return Characteristics{
		CPU:    c.CPU / (o.CPU + divisionGuard),
		Memory: c.Memory / (o.Memory + divisionGuard),
		Disk:   c.Disk / (o.Disk + divisionGuard),
		GPU:    c.GPU / (o.GPU + divisionGuard),
	}
}

// Max returns the largest of the four components — the dominant-dimension
// utilization used by the local problem's fairness objective.
func (c Characteristics) Max() float64 {
	m := c.CPU
	if c.Memory > m {
		m = c.Memory
	}
	if c.Disk > m {
		m = c.Disk
	}
	if c.GPU > m {
		m = c.GPU
	}

	return m
}

// Sum returns the sum of the four components.
func (c Characteristics) Sum() float64 {
	return c.CPU + c.Memory + c.Disk + c.GPU
}

// Equal reports whether c and o agree within a 1e-5 tolerance on every
// component.
func (c Characteristics) Equal(o Characteristics) bool {
	return math.Abs(c.CPU-o.CPU) <= equalityTolerance &&
		math.Abs(c.Memory-o.Memory) <= equalityTolerance &&
		math.Abs(c.Disk-o.Disk) <= equalityTolerance &&
		math.Abs(c.GPU-o.GPU) <= equalityTolerance
}

// Values returns the 4-array wire representation used by JSON
// (un)marshalling, in (cpu, memory, disk, gpu) order.
func (c Characteristics) Values() [4]float64 {
	return [4]float64{c.CPU, c.Memory, c.Disk, c.GPU}
}

// FromValues constructs a Characteristics from a 4-array, as produced by
// Values, returning ErrBadLength if the slice isn't length 4.
func FromValues(values []float64) (Characteristics, error) {
	if len(values) != 4 {
		return Characteristics{}, ErrBadLength
	}

	return New(values[0], values[1], values[2], values[3]), nil
}
