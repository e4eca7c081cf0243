package model

import "errors"

// ErrCandidateLengthMismatch indicates a Cluster's candidate list for some
// service does not have one entry per resource.
var ErrCandidateLengthMismatch = errors.New("model: candidate list length must equal resource count")

// Validate checks the Cluster invariant: len(Candidates[k]) == len(Resources)
// for every service index k.
func (c Cluster) Validate() error {
	for _, row := range c.Candidates {
		if len(row) != len(c.Resources) {
			return ErrCandidateLengthMismatch
		}
	}

	return nil
}
