package frost

import (
	"crypto/sha256"
	"math/big"
)

// contextString is the FROST domain-separation tag for H1 and H3, specific
// to this [BIP-340] ciphersuite. See [FROST] section 6.5 for the generic
// construction; we use the [BIP-340]-specialized name. H4 (message hash)
// and H5 (commitment-list hash) from the generic [FROST] hash suite have no
// counterpart here: this ciphersuite commits to the message and the
// encoded commitment list directly (see aggregator.go's challengeHash and
// encodeCommitmentList) rather than through an extra hash-then-compare
// step, matching the simpler construction in the Python reference this
// module was built from.
var contextString = []byte("FROST-secp256k1-BIP340-v1")

// bip340ChallengeTag is the tagged-hash domain separator [BIP-340] defines
// for the Schnorr challenge.
var bip340ChallengeTag = []byte("BIP0340/challenge")

// Bip340Hashing implements the Hashing interface for the [BIP-340]
// ciphersuite.
type Bip340Hashing struct {
	curve *Bip340Curve
}

// NewBip340Hashing constructs the [BIP-340] hash-function set.
func NewBip340Hashing(curve *Bip340Curve) *Bip340Hashing {
	return &Bip340Hashing{curve: curve}
}

// H1 is used by the aggregator to derive per-signer binding values: DST =
// contextString || "rho".
func (h *Bip340Hashing) H1(m []byte) *big.Int {
	dst := concat(contextString, []byte("rho"))
	return h.hashToScalar(dst, m)
}

// H2 is the [BIP-340] challenge hash. It is the only H* function that MUST
// use the [BIP-340] tag rather than the FROST contextString, because
// verification must match bytes-for-bytes against any other BIP-340
// verifier: e = int(hash_BIP0340/challenge(bytes(R) || bytes(P) || m)) mod n.
func (h *Bip340Hashing) H2(m []byte, ms ...[]byte) *big.Int {
	return h.hashToScalar(bip340ChallengeTag, concat(m, ms...))
}

// H3 is used for nonce generation: DST = contextString || "nonce".
func (h *Bip340Hashing) H3(m []byte, ms ...[]byte) *big.Int {
	dst := concat(contextString, []byte("nonce"))
	return h.hashToScalar(dst, concat(m, ms...))
}

// hashToScalar computes the [BIP-340] tagged hash of msg and reduces it
// modulo the curve order.
//
// Taking a uniformly random 256-bit integer modulo the curve order
// introduces bias in general, but for secp256k1 the order is close enough
// to 2^256 that the bias (around 1.27 * 2^-128) is not observable, per
// [BIP-340].
func (h *Bip340Hashing) hashToScalar(tag, msg []byte) *big.Int {
	hashed := h.taggedHash(tag, msg)
	e := os2ip(hashed[:])
	e.Mod(e, h.curve.Order())
	return e
}

// taggedHash implements the tagged hash construction from [BIP-340]:
// SHA256(SHA256(tag) || SHA256(tag) || msg).
func (h *Bip340Hashing) taggedHash(tag, msg []byte) [32]byte {
	hashedTag := sha256.Sum256(tag)
	return sha256.Sum256(concat(hashedTag[:], hashedTag[:], msg))
}

// plainHash is SHA-256 used as-is, with no domain tag, for proof-of-knowledge
// challenges. The module computes no separate commit-reveal hash of nonce
// commitments.
func plainHash(m []byte) []byte {
	h := sha256.Sum256(m)
	return h[:]
}

// concat safely concatenates byte slices without mutating the first
// argument's backing array, unlike a bare append(a, b...).
func concat(a []byte, bs ...[]byte) []byte {
	c := make([]byte, len(a))
	copy(c, a)
	for _, b := range bs {
		c = append(c, b...)
	}
	return c
}

// os2ip converts a big-endian byte string into a nonnegative integer, per
// [RFC-8017] section 4.2.
func os2ip(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
