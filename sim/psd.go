package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// eigenFloor is the smallest eigenvalue kept after repair. Strictly
// positive so the Cholesky factorization of the repaired matrix succeeds.
const eigenFloor = 1e-8

// nearestPSD projects a symmetric matrix onto the nearest valid correlation
// matrix: negative eigenvalues are clipped, the matrix is reconstructed,
// and the diagonal is rescaled back to 1. repaired reports whether any
// clipping occurred.
//
// Real calibration data is prone to small numerical inconsistencies, so a
// non-PSD input is treated as a degraded-quality condition, not an error.
func nearestPSD(corr [][]float64) (fixed [][]float64, repaired bool, err error) {
	n := len(corr)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, corr[i][j])
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, false, fmt.Errorf("sim: eigendecomposition of correlation matrix failed")
	}

	vals := eig.Values(nil)
	clipped := false
	for i, v := range vals {
		if v < eigenFloor {
			vals[i] = eigenFloor
			clipped = true
		}
	}
	if !clipped {
		out := make([][]float64, n)
		for i := range out {
			out[i] = append([]float64(nil), corr[i]...)
		}
		return out, false, nil
	}

	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// B = V diag(clipped) V^T
	b := mat.NewDense(n, n, nil)
	scaled := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			scaled.Set(i, j, vecs.At(i, j)*vals[j])
		}
	}
	b.Mul(scaled, vecs.T())

	// Rescale to restore the unit diagonal.
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = b.At(i, j) / sqrtProduct(b.At(i, i), b.At(j, j))
		}
		out[i][i] = 1
	}
	return out, true, nil
}

func sqrtProduct(a, b float64) float64 {
	p := a * b
	if p <= 0 {
		return 1
	}
	return math.Sqrt(p)
}
