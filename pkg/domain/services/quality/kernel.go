// Package quality implements the quality-upgrade probability kernel: the
// closed-form factor describing the chance that an item starting at tier s
// emerges at tier e, given a per-roll advance probability q.
package quality

import (
	"math"

	"github.com/kvoss/qrlp/pkg/domain/entities"
)

// Jump is the probability each extra tier beyond the first advance succeeds,
// conditioned on the first advance having already happened.
const Jump = 0.1

// Factor computes QualityFactor(s, e, m, q) per spec.md §4.1. Preconditions
// (0 <= s <= e <= m, 0 <= q <= 1) are the caller's responsibility; a
// violation is a programming error and Factor panics with
// *entities.KernelContractViolation rather than returning an error.
func Factor(s, e, m entities.Tier, q float64) float64 {
	if s > m {
		panic(&entities.KernelContractViolation{StartTier: s, EndTier: e, MaxTier: m, Reason: "starting tier above max tier unlocked"})
	}
	if e > m {
		panic(&entities.KernelContractViolation{StartTier: s, EndTier: e, MaxTier: m, Reason: "ending tier above max tier unlocked"})
	}
	if e < s {
		panic(&entities.KernelContractViolation{StartTier: s, EndTier: e, MaxTier: m, Reason: "ending tier below starting tier"})
	}

	switch {
	case e == s && s == m:
		// No further tiers to advance to: quality holds with certainty.
		return 1
	case e == s:
		// Probability of remaining at s is the complement of advancing.
		return 1 - q
	case e < m:
		// Advance at least one tier (q), take each of the e-s-1 further
		// jumps with probability Jump, then fail the next one (1 - Jump).
		return q * (1 - Jump) * math.Pow(Jump, float64(e-s-1))
	default:
		// e == m: absorbs all remaining jump mass so the row sums to 1.
		return q * math.Pow(Jump, float64(e-s-1))
	}
}
