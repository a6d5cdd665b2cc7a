package frost

import "math/big"

// Polynomial is a degree-(t-1) polynomial over Z_Q, stored as its
// coefficients in ascending order of degree: coefficients[k] is the
// coefficient of x^k.
type Polynomial struct {
	coefficients []*big.Int
}

// generatePolynomial samples a fresh degree-(t-1) polynomial with all t
// coefficients drawn uniformly from Z_Q. The constant term is this
// participant's DKG secret contribution.
func generatePolynomial(threshold int, order *big.Int) (*Polynomial, error) {
	coefficients := make([]*big.Int, threshold)
	for i := range coefficients {
		c, err := sampleScalar(order)
		if err != nil {
			return nil, err
		}
		coefficients[i] = c
	}
	return &Polynomial{coefficients}, nil
}

// generateRefreshPolynomial samples a degree-(t-1) polynomial whose constant
// term is fixed at 0, so that aggregating it into existing shares
// re-randomizes them without changing the joint secret (proactive
// refresh).
func generateRefreshPolynomial(threshold int, order *big.Int) (*Polynomial, error) {
	coefficients := make([]*big.Int, threshold)
	coefficients[0] = big.NewInt(0)
	for i := 1; i < threshold; i++ {
		c, err := sampleScalar(order)
		if err != nil {
			return nil, err
		}
		coefficients[i] = c
	}
	return &Polynomial{coefficients}, nil
}

// generateThresholdIncreasePolynomial samples newThreshold-1 coefficients,
// i.e. a degree-(newThreshold-2) overlay polynomial. IncreaseThreshold
// multiplies the overlay's value by the participant's index before adding
// it, which raises the reconstruction degree to newThreshold-1.
func generateThresholdIncreasePolynomial(newThreshold int, order *big.Int) (*Polynomial, error) {
	coefficients := make([]*big.Int, newThreshold-1)
	for i := range coefficients {
		c, err := sampleScalar(order)
		if err != nil {
			return nil, err
		}
		coefficients[i] = c
	}
	return &Polynomial{coefficients}, nil
}

// Evaluate computes f(x) mod order using Horner's method, iterating from
// the highest-degree coefficient down to the constant term.
func (f *Polynomial) Evaluate(x int64, order *big.Int) *big.Int {
	y := big.NewInt(0)
	bigX := big.NewInt(x)
	for i := len(f.coefficients) - 1; i >= 0; i-- {
		y.Mul(y, bigX)
		y.Add(y, f.coefficients[i])
		y.Mod(y, order)
	}
	return y
}

// generateShares evaluates f at 1..n, returning the ordered sequence
// f(1), ..., f(n). Position j-1 of the result is the share intended for
// participant j.
func (f *Polynomial) generateShares(n int, order *big.Int) []*big.Int {
	shares := make([]*big.Int, n)
	for j := 1; j <= n; j++ {
		shares[j-1] = f.Evaluate(int64(j), order)
	}
	return shares
}

// commit computes the coefficient commitments phi_k = a_k * G for every
// coefficient of f.
func (f *Polynomial) commit(curve Curve) []*Point {
	commitments := make([]*Point, len(f.coefficients))
	for i, a := range f.coefficients {
		commitments[i] = curve.EcBaseMul(a)
	}
	return commitments
}
