package frost

import "math/big"

// lagrangeCoefficient computes the Lagrange basis coefficient for
// participantIndex, evaluated at the given point x, over the set of
// participating indices allIndices, modulo order: λ_i(x) = ∏_{j≠i} (x -
// j)/(i - j).
//
// Signing and secret reconstruction evaluate at x=0 (the polynomial's
// constant term); share repair evaluates at x equal to the
// lost participant's index, since it reconstructs a point on the
// polynomial rather than the secret itself.
//
// The denominator's modular inverse is computed by explicit Fermat
// exponentiation (denominator^(order-2) mod order) rather than
// big.Int.ModInverse, since order is prime.
func lagrangeCoefficient(
	order *big.Int,
	x int,
	participantIndex int,
	allIndices []int,
) (*big.Int, error) {
	seen := make(map[int]bool, len(allIndices))
	for _, idx := range allIndices {
		if seen[idx] {
			return nil, argumentError("duplicate participant index %d in lagrange coefficient set", idx)
		}
		seen[idx] = true
	}
	if !seen[participantIndex] {
		return nil, argumentError("participant index %d not present in its own lagrange coefficient set", participantIndex)
	}

	numerator := big.NewInt(1)
	denominator := big.NewInt(1)
	xi := big.NewInt(int64(participantIndex))
	bigX := big.NewInt(int64(x))

	for _, idx := range allIndices {
		if idx == participantIndex {
			continue
		}
		xj := big.NewInt(int64(idx))

		diffNum := new(big.Int).Sub(bigX, xj)
		diffNum.Mod(diffNum, order)
		numerator.Mul(numerator, diffNum)
		numerator.Mod(numerator, order)

		diffDen := new(big.Int).Sub(xi, xj)
		diffDen.Mod(diffDen, order)
		denominator.Mul(denominator, diffDen)
		denominator.Mod(denominator, order)
	}

	if denominator.Sign() == 0 {
		return nil, degenerateCurveError("lagrange denominator is zero")
	}

	exp := new(big.Int).Sub(order, big.NewInt(2))
	denominatorInv := new(big.Int).Exp(denominator, exp, order)

	coefficient := new(big.Int).Mul(numerator, denominatorInv)
	coefficient.Mod(coefficient, order)

	return coefficient, nil
}
