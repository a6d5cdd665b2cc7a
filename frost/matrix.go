package frost

import "math/big"

// matrix is a dense matrix of scalars modulo a prime order, used to
// reconstruct coefficient commitments for a changed threshold via a
// Vandermonde system.
type matrix struct {
	rows, cols int
	data       [][]*big.Int
	order      *big.Int
}

// newVandermonde builds the len(indices) x len(indices) Vandermonde matrix
// V[i][j] = indices[i]^j mod order, used to solve for polynomial
// coefficients from evaluations at indices.
func newVandermonde(indices []int, order *big.Int) *matrix {
	n := len(indices)
	data := make([][]*big.Int, n)
	for i, idx := range indices {
		row := make([]*big.Int, n)
		x := big.NewInt(int64(idx))
		power := big.NewInt(1)
		for j := 0; j < n; j++ {
			row[j] = new(big.Int).Set(power)
			power = new(big.Int).Mul(power, x)
			power.Mod(power, order)
		}
		data[i] = row
	}
	return &matrix{rows: n, cols: n, data: data, order: order}
}

// invert computes m's inverse modulo order via Gauss-Jordan elimination. It
// fails if m is singular over Z_order.
func (m *matrix) invert() (*matrix, error) {
	if m.rows != m.cols {
		return nil, argumentError("matrix must be square to invert, got %dx%d", m.rows, m.cols)
	}
	n := m.rows
	order := m.order

	aug := make([][]*big.Int, n)
	for i := 0; i < n; i++ {
		row := make([]*big.Int, 2*n)
		for j := 0; j < n; j++ {
			row[j] = new(big.Int).Mod(m.data[i][j], order)
		}
		for j := 0; j < n; j++ {
			if i == j {
				row[n+j] = big.NewInt(1)
			} else {
				row[n+j] = big.NewInt(0)
			}
		}
		aug[i] = row
	}

	expOrder := new(big.Int).Sub(order, big.NewInt(2))

	for col := 0; col < n; col++ {
		pivotRow := -1
		for r := col; r < n; r++ {
			if aug[r][col].Sign() != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow == -1 {
			return nil, degenerateCurveError("matrix is singular modulo order, no pivot in column %d", col)
		}
		aug[col], aug[pivotRow] = aug[pivotRow], aug[col]

		pivotInv := new(big.Int).Exp(aug[col][col], expOrder, order)
		for j := 0; j < 2*n; j++ {
			aug[col][j].Mul(aug[col][j], pivotInv)
			aug[col][j].Mod(aug[col][j], order)
		}

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := new(big.Int).Set(aug[r][col])
			if factor.Sign() == 0 {
				continue
			}
			for j := 0; j < 2*n; j++ {
				term := new(big.Int).Mul(factor, aug[col][j])
				aug[r][j].Sub(aug[r][j], term)
				aug[r][j].Mod(aug[r][j], order)
			}
		}
	}

	inverse := make([][]*big.Int, n)
	for i := 0; i < n; i++ {
		row := make([]*big.Int, n)
		for j := 0; j < n; j++ {
			row[j] = aug[i][n+j]
		}
		inverse[i] = row
	}

	return &matrix{rows: n, cols: n, data: inverse, order: order}, nil
}

// multiplyPoints computes m * points, treating points as a column vector of
// curve points and m's entries as scalar coefficients, returning the
// resulting column of points.
func (m *matrix) multiplyPoints(curve Curve, points []*Point) ([]*Point, error) {
	if len(points) != m.cols {
		return nil, argumentError(
			"matrix has %d columns but %d points were supplied", m.cols, len(points),
		)
	}

	result := make([]*Point, m.rows)
	for i := 0; i < m.rows; i++ {
		acc := curve.Identity()
		for j := 0; j < m.cols; j++ {
			acc = curve.EcAdd(acc, curve.EcMul(points[j], m.data[i][j]))
		}
		result[i] = acc
	}
	return result, nil
}
