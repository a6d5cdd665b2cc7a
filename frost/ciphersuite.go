// Package frost implements the participant-side core of the FROST
// (Flexible Round-Optimized Schnorr Threshold) signature scheme over the
// secp256k1 curve, producing BIP-340-compatible signatures.
//
// The package covers distributed key generation, proactive share refresh,
// share repair, threshold change, and the two-round FROST signing protocol.
// Curve-point arithmetic, modular inversion, the aggregator that assembles
// group commitments and final signatures, and the transport layer are
// treated as external collaborators; this package supplies concrete,
// secp256k1/BIP-340-specific implementations of all of them except the
// transport layer, so the core can be exercised end to end in one process.
// There is no transport: callers pass shares and commitments between
// participants directly.
package frost

import "math/big"

// Ciphersuite abstracts the particular elliptic curve and hash functions
// used for the [FROST] protocol execution. This is a strategy pattern that
// would allow swapping in a different prime-order group; in this module
// only the [BIP-340] (secp256k1) ciphersuite is provided, since interop
// with Bitcoin Schnorr signatures is the goal.
type Ciphersuite interface {
	Hashing
	Curve() Curve
}

// Hashing abstracts the ciphersuite-specific hash functions.
//
// [FROST] requires a cryptographically secure hash function, generically
// written as H. Using H, [FROST] introduces distinct domain-separated
// hashes; this ciphersuite needs three of them — H1 (binding values), H2
// (the [BIP-340] challenge) and H3 (nonce generation) — since the message
// and commitment-list hashes the generic construction calls H4 and H5 are
// folded directly into the challenge and binding-value computations
// instead (see hash.go).
type Hashing interface {
	H1(m []byte) *big.Int
	H2(m []byte, ms ...[]byte) *big.Int
	H3(m []byte, ms ...[]byte) *big.Int
}

// Curve abstracts the elliptic curve group operations a ciphersuite needs:
// addition, negation (via subtraction), scalar multiplication, a
// distinguished identity element, the group order, and serialization.
type Curve interface {
	EcAdd(a, b *Point) *Point
	EcSub(a, b *Point) *Point
	EcMul(p *Point, k *big.Int) *Point
	EcBaseMul(k *big.Int) *Point
	Identity() *Point
	IsIdentity(p *Point) bool
	Order() *big.Int
	IsPointOnCurve(p *Point) bool
	HasEvenY(p *Point) bool
	SerializedPointLength() int
	SerializePoint(p *Point) []byte
	DeserializePoint(b []byte) (*Point, error)
	SerializePointXOnly(p *Point) []byte
}
