package frost

import "math/big"

// DecrementThreshold lowers this participant's threshold by one, given one
// share that has been publicly revealed (e.g. a helper's point on the
// group's polynomial made public to drop it from the signing set). The
// revealed share lets every remaining participant recompute a point on the
// degree-(threshold-2) polynomial that interpolates to the same secret,
// without needing to rerun key generation.
//
// f'(i) = f(j) - j*((f(i) - f(j)) / (i - j))
func (p *Participant) DecrementThreshold(revealedShare *big.Int, revealedShareIndex int) error {
	if !p.aggregateShareSet {
		return preconditionError("aggregate share has not been initialized")
	}

	order := p.ciphersuite.Curve().Order()

	numerator := new(big.Int).Sub(p.aggregateShare, revealedShare)
	denominator := big.NewInt(int64(p.index - revealedShareIndex))
	denominator.Mod(denominator, order)
	if denominator.Sign() == 0 {
		return degenerateCurveError("revealed share index equals this participant's index")
	}

	exp := new(big.Int).Sub(order, big.NewInt(2))
	denominatorInv := new(big.Int).Exp(denominator, exp, order)

	quotient := new(big.Int).Mul(numerator, denominatorInv)
	quotient.Mod(quotient, order)

	newShare := new(big.Int).Mul(big.NewInt(int64(revealedShareIndex)), quotient)
	newShare.Sub(revealedShare, newShare)
	newShare.Mod(newShare, order)

	p.aggregateShare = newShare
	p.threshold--
	return nil
}

// IncreaseThreshold folds otherShares, one share from each other
// participant evaluated on the degree-(newThreshold-2) overlay polynomial
// sampled by InitThresholdIncrease, together with this participant's own
// overlay share, into the aggregate share.
//
// The overlay contribution is scaled by this participant's own index
// before being added, unlike a plain Shamir aggregate-shares step: the added
// values then lie on x*h(x), which is zero at x=0, so the joint secret and
// group public key are unchanged while the polynomial degree rises by one.
func (p *Participant) IncreaseThreshold(otherShares []*big.Int) error {
	if p.shares == nil {
		return preconditionError("this participant's overlay shares have not been generated")
	}
	if !p.aggregateShareSet {
		return preconditionError("aggregate share has not been initialized")
	}

	order := p.ciphersuite.Curve().Order()

	aggregate := new(big.Int).Set(p.shares[p.index-1])
	for _, other := range otherShares {
		aggregate.Add(aggregate, other)
	}
	aggregate.Mod(aggregate, order)

	scaled := new(big.Int).Mul(aggregate, big.NewInt(int64(p.index)))
	scaled.Mod(scaled, order)

	p.aggregateShare.Add(p.aggregateShare, scaled)
	p.aggregateShare.Mod(p.aggregateShare, order)
	return nil
}
