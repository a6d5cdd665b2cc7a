package frost

import (
	"crypto/rand"
	"math/big"
)

// NoncePair is a signer's private round-one signing nonces (d_i, e_i): the
// hiding nonce and the binding nonce.
type NoncePair struct {
	Hiding  *big.Int
	Binding *big.Int
}

// NonceCommitmentPair is the public commitment to a NoncePair, (D_i, E_i) =
// (d_i*G, e_i*G), broadcast to the signing cohort and the aggregator during
// round one.
type NonceCommitmentPair struct {
	Hiding  *Point
	Binding *Point
}

// GenerateNoncePair performs FROST signing round one for a single message:
// it derives a fresh hiding/binding nonce pair and returns both the secret
// pair (to retain for round two) and its public commitment (to publish).
//
// Each nonce is H3(random_bytes(32) || secret), binding it to this
// participant's aggregate share so two different signers never derive the
// same nonce even from correlated randomness.
//
// Each call MUST use a freshly sampled nonce pair; reusing a nonce pair
// across two signing sessions leaks the signer's aggregate share.
func GenerateNoncePair(ciphersuite Ciphersuite, secret *big.Int) (*NoncePair, *NonceCommitmentPair, error) {
	curve := ciphersuite.Curve()

	d, err := generateNonce(ciphersuite, secret)
	if err != nil {
		return nil, nil, err
	}
	e, err := generateNonce(ciphersuite, secret)
	if err != nil {
		return nil, nil, err
	}

	pair := &NoncePair{Hiding: d, Binding: e}
	commitment := &NonceCommitmentPair{
		Hiding:  curve.EcBaseMul(d),
		Binding: curve.EcBaseMul(e),
	}
	return pair, commitment, nil
}

// generateNonce derives a single nonce as H3(random_bytes || secret_bytes),
// so the nonce depends on both fresh entropy and the signer's own secret
// material.
func generateNonce(ciphersuite Ciphersuite, secret *big.Int) (*big.Int, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return ciphersuite.H3(b, secret.Bytes()), nil
}

// GenerateNonce performs FROST signing round one for this participant: it
// derives a fresh nonce pair bound to its aggregate share and returns the
// secret pair to retain for Sign alongside the commitment to publish.
func (p *Participant) GenerateNonce() (*NoncePair, *NonceCommitmentPair, error) {
	if !p.aggregateShareSet {
		return nil, nil, preconditionError("aggregate share has not been set")
	}
	return GenerateNoncePair(p.ciphersuite, p.aggregateShare)
}

// Sign performs FROST signing round two: given this participant's retained
// nonce pair and aggregate share, and the published round-one state of the
// whole signing cohort, it computes this participant's signature share
// z_i = d_i + e_i*p_i + lambda_i*s_i*c.
//
// Per [BIP-340], both the nonce pair and the aggregate share are negated
// when the corresponding public point (R or the group public key) has an
// odd Y coordinate, since BIP-340 signatures always commit to even-Y
// points.
func (p *Participant) Sign(
	aggregator *Aggregator,
	message []byte,
	nonce *NoncePair,
	commitments []*NonceCommitmentPair,
	participantIndexes []int,
) (*big.Int, error) {
	if nonce == nil {
		return nil, preconditionError("nonce pair has not been generated")
	}
	if p.publicKey == nil {
		return nil, preconditionError("public key has not been derived")
	}
	if !p.aggregateShareSet {
		return nil, preconditionError("aggregate share has not been set")
	}

	curve := p.ciphersuite.Curve()
	if !curve.IsPointOnCurve(p.publicKey) {
		return nil, degenerateCurveError("public key is the point at infinity")
	}

	groupCommitment := aggregator.groupCommitment(message, commitments, participantIndexes)
	if !curve.IsPointOnCurve(groupCommitment) {
		return nil, degenerateCurveError("group commitment is the point at infinity")
	}

	challenge := aggregator.challengeHash(groupCommitment, p.publicKey, message)

	order := curve.Order()
	firstNonce := new(big.Int).Set(nonce.Hiding)
	secondNonce := new(big.Int).Set(nonce.Binding)
	if !curve.HasEvenY(groupCommitment) {
		firstNonce.Sub(order, firstNonce)
		secondNonce.Sub(order, secondNonce)
	}

	bindingValue := aggregator.bindingValue(p.index, message, commitments, participantIndexes)

	lagrangeCoef, err := lagrangeCoefficient(order, 0, p.index, participantIndexes)
	if err != nil {
		return nil, err
	}

	aggregateShare := new(big.Int).Set(p.aggregateShare)
	if !curve.HasEvenY(p.publicKey) {
		aggregateShare.Sub(order, aggregateShare)
	}

	z := new(big.Int).Set(firstNonce)

	term := new(big.Int).Mul(secondNonce, bindingValue)
	z.Add(z, term)

	term = new(big.Int).Mul(lagrangeCoef, aggregateShare)
	term.Mul(term, challenge)
	z.Add(z, term)

	z.Mod(z, order)
	return z, nil
}
