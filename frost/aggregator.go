package frost

import (
	"math/big"
)

// Aggregator collects round-one nonce commitments and round-two signature
// shares from a signing cohort and assembles the final BIP-340 signature.
// Its group-commitment, binding-value and challenge-hash computations are
// also used directly by Participant.Sign, since every signer must derive
// the same values the aggregator will later use to verify and combine
// shares.
type Aggregator struct {
	ciphersuite Ciphersuite
}

// NewAggregator constructs an Aggregator for the given ciphersuite.
func NewAggregator(ciphersuite Ciphersuite) *Aggregator {
	return &Aggregator{ciphersuite: ciphersuite}
}

// bindingValue computes p_i = H1(i || m || B), the binding factor tying
// participant index's signature share to the full set of round-one
// commitments B, preventing a share computed for one signing session from
// being replayed into another.
func (a *Aggregator) bindingValue(
	index int,
	message []byte,
	commitments []*NonceCommitmentPair,
	participantIndexes []int,
) *big.Int {
	curve := a.ciphersuite.Curve()

	encoded := encodeCommitmentList(curve, commitments, participantIndexes)
	indexByte := []byte{byte(index)}

	return a.ciphersuite.H1(concat(indexByte, message, encoded))
}

// groupCommitment computes R = sum_i(D_i + p_i*E_i), the aggregate nonce
// commitment used both as the signature's R value and as an input to the
// challenge hash.
func (a *Aggregator) groupCommitment(
	message []byte,
	commitments []*NonceCommitmentPair,
	participantIndexes []int,
) *Point {
	curve := a.ciphersuite.Curve()
	R := curve.Identity()

	for i, idx := range participantIndexes {
		pair := commitments[i]
		p := a.bindingValue(idx, message, commitments, participantIndexes)
		term := curve.EcAdd(pair.Hiding, curve.EcMul(pair.Binding, p))
		R = curve.EcAdd(R, term)
	}

	return R
}

// challengeHash computes c = H2(R, Y, m), the BIP-340 challenge binding the
// group commitment, the group public key and the message together.
func (a *Aggregator) challengeHash(groupCommitment, publicKey *Point, message []byte) *big.Int {
	curve := a.ciphersuite.Curve()
	rx := curve.SerializePointXOnly(groupCommitment)
	px := curve.SerializePointXOnly(publicKey)
	return a.ciphersuite.H2(rx, px, message)
}

// encodeCommitmentList serializes the ordered (index, D_i, E_i) list that
// feeds into the binding-value hash, each commitment pair encoded as
// 33-byte SEC-compressed points and each index as a single byte.
func encodeCommitmentList(curve Curve, commitments []*NonceCommitmentPair, participantIndexes []int) []byte {
	var encoded []byte
	for i, idx := range participantIndexes {
		pair := commitments[i]
		encoded = concat(
			encoded,
			[]byte{byte(idx)},
			curve.SerializePoint(pair.Hiding),
			curve.SerializePoint(pair.Binding),
		)
	}
	return encoded
}

// Aggregate combines per-participant signature shares, computed by
// Participant.Sign, into the final BIP-340 signature (R, z) = sum_i(z_i).
//
// Aggregate does not itself re-verify each share against its signer's
// public verification share; that is left to the caller before shares
// reach aggregation.
func (a *Aggregator) Aggregate(
	message []byte,
	commitments []*NonceCommitmentPair,
	participantIndexes []int,
	signatureShares []*big.Int,
) (*Signature, error) {
	if len(commitments) != len(participantIndexes) {
		return nil, argumentError(
			"expected %d commitments, one per participant index, got %d",
			len(participantIndexes), len(commitments),
		)
	}
	if len(signatureShares) != len(participantIndexes) {
		return nil, argumentError(
			"expected %d signature shares, one per participant index, got %d",
			len(participantIndexes), len(signatureShares),
		)
	}

	curve := a.ciphersuite.Curve()
	order := curve.Order()

	R := a.groupCommitment(message, commitments, participantIndexes)
	if !curve.IsPointOnCurve(R) {
		return nil, degenerateCurveError("group commitment is the point at infinity")
	}

	z := big.NewInt(0)
	for _, zi := range signatureShares {
		z.Add(z, zi)
		z.Mod(z, order)
	}

	return &Signature{R: R, Z: z}, nil
}
