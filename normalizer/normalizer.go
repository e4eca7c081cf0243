// Package normalizer implements a streaming min-max normalizer
// (spec.md §4.10), used by state.GlobalState.NormalizedCandidateCosts to
// scale a service's per-(cluster, resource) candidate costs into [0,1]
// for cross-cluster comparison ahead of the global composition stage.
package normalizer

// Normalizer accumulates a running min/max/sum/count over accepted
// values and normalizes a value against that running range.
type Normalizer struct {
	min, max float64
	sum      float64
	count    int
	seeded   bool
}

// New returns an empty Normalizer.
func New() *Normalizer { return &Normalizer{} }

// Accept folds one value into the running min/max/sum.
func (n *Normalizer) Accept(v float64) {
	if !n.seeded {
		n.min, n.max, n.seeded = v, v, true
	} else {
		if v < n.min {
			n.min = v
		}
		if v > n.max {
			n.max = v
		}
	}
	n.sum += v
	n.count++
}

// AcceptAll folds every value in vs into the running min/max/sum.
func (n *Normalizer) AcceptAll(vs []float64) {
	for _, v := range vs {
		n.Accept(v)
	}
}

// Normalize returns (v - min) / (max - min), yielding 0 when the running
// range is zero-width or empty.
func (n *Normalizer) Normalize(v float64) float64 {
	if !n.seeded || n.max == n.min {
		return 0
	}

	return (v - n.min) / (n.max - n.min)
}

// NormalizedSum returns the sum of Normalize applied to every value in
// values, against the running range of the values accepted so far.
func (n *Normalizer) NormalizedSum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += n.Normalize(v)
	}

	return total
}

// NormalizedAverage returns NormalizedSum divided by len(values), or 0 for
// an empty slice.
func (n *Normalizer) NormalizedAverage(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	return n.NormalizedSum(values) / float64(len(values))
}

// Min returns the running minimum.
func (n *Normalizer) Min() float64 { return n.min }

// Max returns the running maximum.
func (n *Normalizer) Max() float64 { return n.max }

// Count returns the number of accepted values.
func (n *Normalizer) Count() int { return n.count }
