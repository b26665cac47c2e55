package FD1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/hydrodyn/goswe/utils"
)

func TestGrid1D(t *testing.T) {
	{ // Node placement covers [XMin, XMax) without the right endpoint
		g, err := NewGrid1D(-10, 10, 4)
		assert.NoError(t, err)
		assert.Equal(t, 5., g.Dx)
		assert.Equal(t, 20., g.Length())
		assert.Equal(t, []float64{-10, -5, 0, 5}, g.X.Data())
	}
	{ // Fail fast on bad configuration
		_, err := NewGrid1D(-10, 10, 0)
		assert.Error(t, err)
		_, err = NewGrid1D(-10, 10, -5)
		assert.Error(t, err)
		_, err = NewGrid1D(10, 10, 100)
		assert.Error(t, err)
		_, err = NewGrid1D(10, -10, 100)
		assert.Error(t, err)
	}
	{ // Shift maps wrap both directions and are cached
		g, _ := NewGrid1D(-10, 10, 5)
		assert.Equal(t, utils.Index{4, 0, 1, 2, 3}, g.Shift(-1))
		assert.Equal(t, utils.Index{2, 3, 4, 0, 1}, g.Shift(2))
		I1 := g.Shift(-2)
		I2 := g.Shift(-2)
		assert.Equal(t, utils.Index{3, 4, 0, 1, 2}, I1)
		assert.Equal(t, &I1[0], &I2[0])
	}
}

func TestCentralDiffOp(t *testing.T) {
	{ // Periodic wrap enters the first and last rows exactly
		g, _ := NewGrid1D(-10, 10, 8)
		D := g.CentralDiffOp()
		c := 1. / (2. * g.Dx)
		assert.Equal(t, c, D.At(0, 1))
		assert.Equal(t, -c, D.At(0, 7))
		assert.Equal(t, c, D.At(7, 0))
		assert.Equal(t, -c, D.At(7, 6))
		assert.Equal(t, 0., D.At(0, 0))
	}
	{ // Constants differentiate to zero on the ring
		g, _ := NewGrid1D(-10, 10, 16)
		D := g.CentralDiffOp()
		var y mat.VecDense
		y.MulVec(D, mat.NewVecDense(16, utils.ConstArray(16, 3.7)))
		for i := 0; i < 16; i++ {
			assert.Equal(t, 0., y.AtVec(i))
		}
	}
	{ // Second order accuracy on a smooth periodic profile
		errAt := func(K int) (maxErr float64) {
			g, _ := NewGrid1D(-10, 10, K)
			D := g.CentralDiffOp()
			kw := 2. * math.Pi / g.Length()
			f := g.X.Copy().Apply(func(x float64) float64 { return math.Sin(kw * x) })
			var df mat.VecDense
			df.MulVec(D, mat.NewVecDense(K, f.Data()))
			for i := 0; i < K; i++ {
				exact := kw * math.Cos(kw*g.X.AtVec(i))
				if e := math.Abs(df.AtVec(i) - exact); e > maxErr {
					maxErr = e
				}
			}
			return
		}
		e1, e2 := errAt(64), errAt(128)
		assert.Less(t, e1, 1.e-3)
		ratio := e1 / e2
		assert.Greater(t, ratio, 3.5) // ~4 for a second order scheme
		assert.Less(t, ratio, 4.5)
	}
}
