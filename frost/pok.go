package frost

import (
	"math/big"
)

// pokContext is the domain-separation context string mixed into every
// proof-of-knowledge challenge, distinguishing it from challenges produced
// by other protocols that might reuse the same participant's key material.
var pokContext = []byte("FROST-BIP340")

// ProofOfKnowledge is a Schnorr proof of knowledge of the discrete log of a
// polynomial's constant-term commitment, produced during key generation so
// other participants can detect a malicious dealer before accepting shares.
type ProofOfKnowledge struct {
	R *Point
	Mu *big.Int
}

// computeProofOfKnowledge produces a Schnorr proof of knowledge of secret
// for the commitment secret*G, binding the proof to participantIndex and
// the protocol context string so it cannot be replayed against a different
// participant or a different protocol run.
//
// index must fit in a single byte (1..255).
func computeProofOfKnowledge(
	curve Curve,
	participantIndex int,
	secret *big.Int,
) (*ProofOfKnowledge, error) {
	if participantIndex < 1 || participantIndex > 255 {
		return nil, argumentError("participant index %d does not fit in one byte", participantIndex)
	}

	order := curve.Order()
	k, err := sampleScalar(order)
	if err != nil {
		return nil, err
	}

	R := curve.EcBaseMul(k)
	commitment := curve.EcBaseMul(secret)

	c := pokChallenge(curve, participantIndex, R, commitment)

	mu := new(big.Int).Mul(c, secret)
	mu.Add(mu, k)
	mu.Mod(mu, order)

	return &ProofOfKnowledge{R: R, Mu: mu}, nil
}

// verifyProofOfKnowledge checks a ProofOfKnowledge against the claimed
// commitment to the secret (ordinarily the constant-term coefficient
// commitment phi_0 published alongside the other Feldman commitments).
func verifyProofOfKnowledge(
	curve Curve,
	participantIndex int,
	commitment *Point,
	proof *ProofOfKnowledge,
) bool {
	if participantIndex < 1 || participantIndex > 255 {
		return false
	}

	c := pokChallenge(curve, participantIndex, proof.R, commitment)

	lhs := curve.EcBaseMul(proof.Mu)
	rhs := curve.EcAdd(proof.R, curve.EcMul(commitment, c))

	return lhs.Equal(rhs)
}

// pokChallenge computes the challenge c = H(context || index || R || commitment)
// reduced modulo the curve order, using a single-byte index encoding and
// 33-byte SEC-compressed point encodings.
func pokChallenge(curve Curve, participantIndex int, R, commitment *Point) *big.Int {
	indexByte := []byte{byte(participantIndex)}
	msg := concat(pokContext, indexByte, curve.SerializePoint(R), curve.SerializePoint(commitment))
	h := plainHash(msg)

	c := os2ip(h)
	return c.Mod(c, curve.Order())
}
