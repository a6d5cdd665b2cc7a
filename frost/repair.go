package frost

import "math/big"

// GenerateRepairShares produces this participant's contribution to
// repairing a lost share belonging to lostIndex. repairCohort is the set of
// helper participant indexes (including this one) cooperating on the
// repair.
//
// The repair shares it stores (see RepairShares) are threshold-1 random
// masks followed by a final entry equal to lambda*aggregateShare minus their
// sum, so that summing the whole slice recovers lambda*aggregateShare while
// no single entry reveals this participant's contribution.
func (p *Participant) GenerateRepairShares(repairCohort []int, lostIndex int) error {
	if !p.aggregateShareSet {
		return preconditionError("aggregate share has not been initialized")
	}

	order := p.ciphersuite.Curve().Order()
	lambda, err := lagrangeCoefficient(order, lostIndex, p.index, repairCohort)
	if err != nil {
		return err
	}

	randomShares := make([]*big.Int, p.threshold-1)
	sum := big.NewInt(0)
	for i := range randomShares {
		r, err := sampleScalar(order)
		if err != nil {
			return err
		}
		randomShares[i] = r
		sum.Add(sum, r)
	}

	finalShare := new(big.Int).Mul(lambda, p.aggregateShare)
	finalShare.Sub(finalShare, sum)
	finalShare.Mod(finalShare, order)

	p.repairShares = append(append([]*big.Int{}, randomShares...), finalShare)
	return nil
}

// RepairShares returns the shares produced by GenerateRepairShares.
func (p *Participant) RepairShares() []*big.Int { return p.repairShares }

// AggregateRepairShares combines otherShares, one repair share received
// from each of the other threshold-1 helpers in the repair cohort, with
// this participant's own first repair share into an aggregate repair
// share to forward to the participant being repaired.
func (p *Participant) AggregateRepairShares(otherShares []*big.Int) error {
	if len(p.repairShares) == 0 {
		return preconditionError("this participant's repair shares have not been generated")
	}
	if len(otherShares) != p.threshold-1 {
		return argumentError(
			"expected exactly %d other repair shares, got %d", p.threshold-1, len(otherShares),
		)
	}

	order := p.ciphersuite.Curve().Order()
	sum := new(big.Int).Set(p.repairShares[0])
	for _, other := range otherShares {
		sum.Add(sum, other)
		sum.Mod(sum, order)
	}

	p.aggregateRepairShare = sum
	return nil
}

// AggregateRepairShare returns the share produced by AggregateRepairShares.
func (p *Participant) AggregateRepairShare() *big.Int { return p.aggregateRepairShare }

// RepairShare reconstructs this participant's lost aggregate share from
// exactly threshold aggregate repair shares, one contributed by each helper
// in the repair cohort. It refuses to overwrite an aggregate share that is
// already present.
func (p *Participant) RepairShare(aggregateRepairShares []*big.Int) error {
	if p.aggregateShareSet {
		return preconditionError("aggregate share is already present, nothing to repair")
	}
	if len(aggregateRepairShares) != p.threshold {
		return argumentError(
			"expected exactly %d aggregate repair shares, got %d", p.threshold, len(aggregateRepairShares),
		)
	}

	order := p.ciphersuite.Curve().Order()
	sum := big.NewInt(0)
	for _, share := range aggregateRepairShares {
		sum.Add(sum, share)
		sum.Mod(sum, order)
	}

	p.aggregateShare = sum
	p.aggregateShareSet = true
	return nil
}
