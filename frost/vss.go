package frost

import "math/big"

// verifyShare checks a Feldman VSS share against the dealer's published
// coefficient commitments: y*G =?= sum_k(index^k * commitments[k]).
//
// index is the receiving participant's 1-based position.
func verifyShare(curve Curve, index int, share *big.Int, commitments []*Point) bool {
	if len(commitments) == 0 {
		return false
	}

	order := curve.Order()
	lhs := curve.EcBaseMul(share)

	rhs := curve.Identity()
	power := big.NewInt(1)
	bigIndex := big.NewInt(int64(index))
	for _, phi := range commitments {
		term := curve.EcMul(phi, power)
		rhs = curve.EcAdd(rhs, term)
		power = new(big.Int).Mul(power, bigIndex)
		power.Mod(power, order)
	}

	return lhs.Equal(rhs)
}
