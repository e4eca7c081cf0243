package localproblem

import "github.com/UIBK-DPS-DC/Pulse/engine"

// repair enforces cardinality(bitset) == target by clearing or setting
// uniformly-at-random-chosen bits without replacement (spec.md §4.4.1).
// Mutates b in place; deterministic given rng's seed.
func repair(b *engine.Bitset, target int, rng engine.RNG) {
	current := b.Cardinality()
	switch {
	case current == target:
		return
	case current > target:
		for _, idx := range sampleWithoutReplacement(b.SetBits(), current-target, rng) {
			b.Clear(idx)
		}
	default:
		for _, idx := range sampleWithoutReplacement(b.ClearBits(), target-current, rng) {
			b.Set(idx)
		}
	}
}

// sampleWithoutReplacement returns k positions drawn uniformly without
// replacement from pool, via a partial Fisher-Yates shuffle.
func sampleWithoutReplacement(pool []int, k int, rng engine.RNG) []int {
	if k <= 0 {
		return nil
	}
	n := len(pool)
	picked := make([]int, n)
	copy(picked, pool)
	for i := 0; i < k && i < n; i++ {
		j := i + rng.Intn(n-i)
		picked[i], picked[j] = picked[j], picked[i]
	}

	return picked[:k]
}
