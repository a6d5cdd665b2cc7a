package frost

import "math/big"

// Participant is one signer in a FROST-BIP340 threshold signing group. It
// holds the cryptographic state accumulated across key generation,
// signing, repair and threshold-change operations.
//
// A Participant is not safe for concurrent use; callers running several
// participants in one process (e.g. in tests or a simulator) must not
// share a single instance across goroutines.
type Participant struct {
	ciphersuite Ciphersuite

	index        int
	threshold    int
	participants int

	polynomial             *Polynomial
	coefficientCommitments []*Point
	proofOfKnowledge       *ProofOfKnowledge

	shares []*big.Int

	aggregateShare    *big.Int
	aggregateShareSet bool

	publicKey *Point

	repairShares         []*big.Int
	aggregateRepairShare *big.Int
}

// NewParticipant constructs a Participant with the given 1-based index,
// signing threshold and group size.
func NewParticipant(
	ciphersuite Ciphersuite,
	index, threshold, participants int,
) (*Participant, error) {
	if index < 1 || index > participants {
		return nil, argumentError("index %d out of range [1, %d]", index, participants)
	}
	if threshold < 1 || threshold > participants {
		return nil, argumentError("threshold %d out of range [1, %d]", threshold, participants)
	}
	return &Participant{
		ciphersuite:  ciphersuite,
		index:        index,
		threshold:    threshold,
		participants: participants,
	}, nil
}

// Index returns the participant's 1-based position in the group.
func (p *Participant) Index() int { return p.index }

// Threshold returns the participant's current view of the signing
// threshold, which changes after DecrementThreshold or InitThresholdIncrease.
func (p *Participant) Threshold() int { return p.threshold }

// PublicKey returns the group public key, once DerivePublicKey has been
// called.
func (p *Participant) PublicKey() *Point { return p.publicKey }

// CoefficientCommitments returns this participant's published Feldman
// commitments, once an Init* method has been called.
func (p *Participant) CoefficientCommitments() []*Point { return p.coefficientCommitments }

// ProofOfKnowledge returns this participant's proof of knowledge of its
// polynomial's constant term, once InitKeygen or InitThresholdIncrease has
// been called.
func (p *Participant) ProofOfKnowledge() *ProofOfKnowledge { return p.proofOfKnowledge }

// InitKeygen starts a fresh distributed key generation: it samples a
// random degree-(threshold-1) polynomial, computes a proof of knowledge of
// its secret constant term, and computes Feldman coefficient commitments
// to be published to the rest of the group.
func (p *Participant) InitKeygen() error {
	poly, err := generatePolynomial(p.threshold, p.ciphersuite.Curve().Order())
	if err != nil {
		return err
	}
	return p.initFromPolynomial(poly)
}

// InitRefresh starts a proactive secret-sharing refresh round: it samples a
// degree-(threshold-1) polynomial with constant term 0, so that aggregating
// shares derived from it re-randomizes every participant's aggregate share
// without altering the joint secret or the group public key.
func (p *Participant) InitRefresh() error {
	poly, err := generateRefreshPolynomial(p.threshold, p.ciphersuite.Curve().Order())
	if err != nil {
		return err
	}
	p.polynomial = poly
	p.coefficientCommitments = poly.commit(p.ciphersuite.Curve())
	p.proofOfKnowledge = nil
	return nil
}

// InitThresholdIncrease starts the process of raising the group's signing
// threshold to newThreshold: it samples a fresh overlay polynomial,
// computes a proof of knowledge for it, and records the new threshold on
// this participant.
func (p *Participant) InitThresholdIncrease(newThreshold int) error {
	if newThreshold <= p.threshold {
		return argumentError(
			"new threshold %d must be greater than current threshold %d",
			newThreshold, p.threshold,
		)
	}

	poly, err := generateThresholdIncreasePolynomial(newThreshold, p.ciphersuite.Curve().Order())
	if err != nil {
		return err
	}
	if err := p.initFromPolynomial(poly); err != nil {
		return err
	}
	p.threshold = newThreshold
	return nil
}

// initFromPolynomial is the common tail of InitKeygen and
// InitThresholdIncrease: compute a proof of knowledge of the constant term
// and Feldman-commit to every coefficient.
func (p *Participant) initFromPolynomial(poly *Polynomial) error {
	proof, err := computeProofOfKnowledge(p.ciphersuite.Curve(), p.index, poly.coefficients[0])
	if err != nil {
		return err
	}
	p.polynomial = poly
	p.proofOfKnowledge = proof
	p.coefficientCommitments = poly.commit(p.ciphersuite.Curve())
	return nil
}

// VerifyProofOfKnowledge verifies another participant's proof of knowledge
// of their polynomial's constant term, given their published secret
// commitment (the first coefficient commitment) and index.
func (p *Participant) VerifyProofOfKnowledge(
	proof *ProofOfKnowledge,
	secretCommitment *Point,
	index int,
) bool {
	return verifyProofOfKnowledge(p.ciphersuite.Curve(), index, secretCommitment, proof)
}

// GenerateShares evaluates this participant's polynomial at 1..n, producing
// one Feldman VSS share per participant in the group, to be sent privately
// to each of them.
func (p *Participant) GenerateShares() error {
	if p.polynomial == nil {
		return preconditionError("polynomial has not been initialized")
	}
	p.shares = p.polynomial.generateShares(p.participants, p.ciphersuite.Curve().Order())
	return nil
}

// Shares returns the shares produced by GenerateShares. Shares()[j-1] is
// the share addressed to participant j.
func (p *Participant) Shares() []*big.Int { return p.shares }

// VerifyShare checks a share received from another participant against
// their published coefficient commitments, per the Feldman VSS equation.
func (p *Participant) VerifyShare(share *big.Int, coefficientCommitments []*Point) (bool, error) {
	if len(coefficientCommitments) != p.threshold {
		return false, argumentError(
			"expected %d coefficient commitments, got %d", p.threshold, len(coefficientCommitments),
		)
	}
	return verifyShare(p.ciphersuite.Curve(), p.index, share, coefficientCommitments), nil
}

// AggregateShares folds otherShares (one share received from each other
// participant, in any consistent order) together with this participant's
// own share from GenerateShares into the running aggregate share.
//
// AggregateShares may be called more than once, accumulating further
// shares on top of an existing aggregate share; this is how a proactive
// refresh round updates an already-established aggregate share.
func (p *Participant) AggregateShares(otherShares []*big.Int) error {
	if p.shares == nil {
		return preconditionError("this participant's own shares have not been generated")
	}
	if p.index-1 < 0 || p.index-1 >= len(p.shares) {
		return argumentError("participant index %d out of range of generated shares", p.index)
	}
	if len(otherShares) != p.participants-1 {
		return argumentError(
			"expected exactly %d other shares, got %d", p.participants-1, len(otherShares),
		)
	}

	order := p.ciphersuite.Curve().Order()
	sum := new(big.Int).Set(p.shares[p.index-1])
	for _, other := range otherShares {
		sum.Add(sum, other)
		sum.Mod(sum, order)
	}

	if p.aggregateShareSet {
		p.aggregateShare.Add(p.aggregateShare, sum)
		p.aggregateShare.Mod(p.aggregateShare, order)
	} else {
		p.aggregateShare = sum
		p.aggregateShareSet = true
	}
	return nil
}

// AggregateShare returns this participant's current aggregate secret share,
// once AggregateShares or RepairShare has set one.
func (p *Participant) AggregateShare() (*big.Int, bool) {
	return p.aggregateShare, p.aggregateShareSet
}

// PublicVerificationShare computes this participant's public verification
// share Y_i = s_i*G from its aggregate share, letting other participants
// confirm a signature share without learning s_i.
func (p *Participant) PublicVerificationShare() (*Point, error) {
	if !p.aggregateShareSet {
		return nil, preconditionError("aggregate share has not been initialized")
	}
	return p.ciphersuite.Curve().EcBaseMul(p.aggregateShare), nil
}

// DerivePublicKey computes and stores the group public key Y = sum_j(phi_j_0),
// the sum of every participant's secret commitment (including this one's).
func (p *Participant) DerivePublicKey(otherSecretCommitments []*Point) (*Point, error) {
	if len(p.coefficientCommitments) == 0 {
		return nil, preconditionError("coefficient commitments have not been initialized")
	}

	curve := p.ciphersuite.Curve()
	publicKey := p.coefficientCommitments[0]
	for _, other := range otherSecretCommitments {
		publicKey = curve.EcAdd(publicKey, other)
	}

	p.publicKey = publicKey
	return publicKey, nil
}

// DeriveCoefficientCommitments reconstructs a polynomial's coefficient
// commitments from a set of public verification shares and their
// participant indexes, using a Vandermonde system. This lets the group
// recompute Feldman commitments for a polynomial whose dealer is no longer
// available, as part of threshold-change bookkeeping.
func (p *Participant) DeriveCoefficientCommitments(
	publicVerificationShares []*Point,
	participantIndexes []int,
) ([]*Point, error) {
	if len(publicVerificationShares) != len(participantIndexes) {
		return nil, argumentError(
			"expected %d public verification shares, one per participant index, got %d",
			len(participantIndexes), len(publicVerificationShares),
		)
	}

	order := p.ciphersuite.Curve().Order()
	vandermonde := newVandermonde(participantIndexes, order)
	inverse, err := vandermonde.invert()
	if err != nil {
		return nil, err
	}

	return inverse.multiplyPoints(p.ciphersuite.Curve(), publicVerificationShares)
}
