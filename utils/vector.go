package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (V Vector) {
	var (
		data []float64
	)
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in data length: len(data) = %v, n = %v", len(dataO[0]), n)
			panic(err)
		}
		data = dataO[0]
	} else {
		data = make([]float64, n)
	}
	V = Vector{
		mat.NewVecDense(n, data),
	}
	return
}

func NewVectorConstant(n int, val float64) (V Vector) {
	V = NewVector(n, ConstArray(n, val))
	return
}

func (v Vector) Len() int            { return v.V.Len() }
func (v Vector) AtVec(i int) float64 { return v.V.AtVec(i) }

// Data returns the backing slice of a unit-increment vector.
func (v Vector) Data() []float64 { return v.V.RawVector().Data }

func (v Vector) Copy() (R Vector) {
	R = NewVector(v.Len())
	copy(R.Data(), v.Data())
	return
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.Data()
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Min() (min float64) {
	var (
		data = v.Data()
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.Data()
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}
