package SWE1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hydrodyn/goswe/FD1D"
	"github.com/hydrodyn/goswe/utils"
)

func TestWenoWeights(t *testing.T) {
	{ // Weights sum to one for arbitrary stencil values
		stencils := [][5]float64{
			{0, 0, 0, 0, 0},
			{1, 1, 1, 1, 1},
			{1, 2, 3, 4, 5},
			{1, 1, 1, 5, 5}, // discontinuity right of center
			{5, 5, 1, 1, 1}, // discontinuity left of center
			{0.3, -0.1, 0.7, 2.9, -4},
		}
		for _, s := range stencils {
			w0, w1, w2 := WenoWeights(s[0], s[1], s[2], s[3], s[4])
			assert.InDelta(t, 1., w0+w1+w2, 1.e-14)
			assert.GreaterOrEqual(t, w0, 0.)
			assert.GreaterOrEqual(t, w1, 0.)
			assert.GreaterOrEqual(t, w2, 0.)
		}
	}
	{ // Smooth data recovers the linear weights 1/10, 6/10, 3/10
		w0, w1, w2 := WenoWeights(1.0, 1.0000001, 1.0000002, 1.0000003, 1.0000004)
		assert.InDelta(t, 1./10., w0, 1.e-4)
		assert.InDelta(t, 6./10., w1, 1.e-4)
		assert.InDelta(t, 3./10., w2, 1.e-4)
	}
	{ // A jump in the downwind sub-stencil drives its weight toward zero
		w0, _, w2 := WenoWeights(1, 1, 1, 10, 10)
		assert.Greater(t, w0, 0.45)
		assert.Less(t, w2, 1.e-4)
	}
}

func TestFluxKernel(t *testing.T) {
	var (
		grav = 9.80665
	)
	{ // F = [hu, hu^2/h + 0.5*g*h^2] pointwise
		Q := utils.NewMatrix(2, 3, []float64{1, 2, 4, 0, 2, -4})
		F := Flux(Q, grav)
		assert.InDeltaSlice(t, []float64{0, 2, -4}, F.Data()[:3], 1.e-14)
		assert.InDeltaSlice(t, []float64{
			0.5 * grav,
			2 + 0.5*grav*4,
			4 + 0.5*grav*16,
		}, F.Data()[3:], 1.e-12)
		// Input state untouched
		assert.Equal(t, []float64{1, 2, 4, 0, 2, -4}, Q.Data())
	}
	{ // alpha = sqrt(g*max(h)) + max|hu/h|
		Q := utils.NewMatrix(2, 3, []float64{1, 4, 2, 0.5, -8, 1})
		assert.InDelta(t, math.Sqrt(grav*4)+2., MaxSignalSpeed(Q, grav), 1.e-14)
	}
	{ // Split parts recombine to the full flux
		Q := utils.NewMatrix(2, 4, []float64{1, 1.1, 0.9, 1, 0.1, -0.2, 0.3, 0})
		F := Flux(Q, grav)
		Fp, Fm := SplitFlux(Q, grav)
		assert.InDeltaSlice(t, F.Data(), Fp.Copy().Add(Fm).Data(), 1.e-13)
	}
}

func TestFluxDivergence(t *testing.T) {
	var (
		grav  = 9.80665
		g, _  = FD1D.NewGrid1D(-10, 10, 64)
		still = func() utils.Matrix { // constant depth, no motion
			Q := utils.NewMatrix(2, g.K)
			for i := 0; i < g.K; i++ {
				Q.Set(0, i, 1.3)
			}
			return Q
		}
	)
	{ // All three schemes annihilate a constant state
		for _, sd := range []SpaceScheme{
			NewCentral(g, grav),
			NewUpwind(g, grav),
			NewWENO5(g, grav, 1),
		} {
			dFdx := sd.FluxDivergence(still())
			assert.Less(t, dFdx.Copy().Apply(math.Abs).Max(), 1.e-12)
		}
	}
	{ // Central difference approximates the smooth analytic derivative:
		// for hu = 0, dF/dx row 1 is g*h*h'
		Q := utils.NewMatrix(2, g.K)
		kw := 2. * math.Pi / g.Length()
		for i := 0; i < g.K; i++ {
			Q.Set(0, i, 1.+0.1*math.Sin(kw*g.X.AtVec(i)))
		}
		dFdx := NewCentral(g, grav).FluxDivergence(Q)
		var maxErr float64
		for i := 0; i < g.K; i++ {
			x := g.X.AtVec(i)
			h := 1. + 0.1*math.Sin(kw*x)
			exact := grav * h * 0.1 * kw * math.Cos(kw*x)
			if e := math.Abs(dFdx.At(1, i) - exact); e > maxErr {
				maxErr = e
			}
		}
		assert.Less(t, maxErr, 5.e-3)
	}
	{ // The parallel WENO5 path reproduces the serial result exactly
		Q := InitializeCase(g, GAUSSIAN_HUMP)
		serial := NewWENO5(g, grav, 1).FluxDivergence(Q)
		parallel := NewWENO5(g, grav, 4).FluxDivergence(Q)
		assert.Equal(t, serial.Data(), parallel.Data())
	}
	{ // Scheme label mapping
		assert.Equal(t, CENTRAL, NewSchemeType("Central"))
		assert.Equal(t, WENO5, NewSchemeType("weno5"))
		assert.Panics(t, func() { NewSchemeType("spectral") })
	}
}
