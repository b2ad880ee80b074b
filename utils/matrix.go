package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M     *mat.Dense
	DataP []float64
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		M:     m,
		DataP: m.RawMatrix().Data,
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

// Chainable methods (extended)
func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetCol(j int, data []float64) Matrix { // Changes receiver
	m.M.SetCol(j, data)
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix { // Changes receiver
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	for i := range m.DataP {
		m.DataP[i] *= a
	}
	return m
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			R.M.Set(j, i, m.M.At(i, j))
		}
	}
	return
}

func (m Matrix) Row(i int) (r Vector) {
	var (
		_, nc = m.Dims()
	)
	r = NewVector(nc)
	for j := 0; j < nc; j++ {
		r.DataP[j] = m.At(i, j)
	}
	return
}

func (m Matrix) Col(j int) (c Vector) {
	var (
		nr, _ = m.Dims()
	)
	c = NewVector(nr)
	for i := 0; i < nr; i++ {
		c.DataP[i] = m.At(i, j)
	}
	return
}

func (m Matrix) SumRows() (s Vector) {
	// Returns the sum of each row in a column vector
	var (
		nr, nc = m.Dims()
	)
	s = NewVector(nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			s.DataP[i] += m.At(i, j)
		}
	}
	return
}

func (m Matrix) SumCols() (s Vector) {
	// Returns the sum of each column in a row vector
	var (
		nr, nc = m.Dims()
	)
	s = NewVector(nc)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			s.DataP[j] += m.At(i, j)
		}
	}
	return
}

func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	err = R.M.Inverse(m.M)
	return
}

func (m Matrix) InverseWithCheck() (R Matrix) {
	var (
		err error
	)
	if R, err = m.Inverse(); err != nil {
		panic(err)
	}
	return
}

func (m Matrix) Print(msgO ...string) {
	if len(msgO) != 0 {
		fmt.Printf("%s =\n", msgO[0])
	}
	fmt.Printf("%v\n", mat.Formatted(m.M, mat.Squeeze()))
}
