package SWE1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hydrodyn/goswe/dam_break"
	"github.com/hydrodyn/goswe/utils"
)

func TestExactOutputHits(t *testing.T) {
	sw, err := NewSWE(0.1, 2.0, 20.0, 9.80665, 50, 20, RK3, UPWIND, GAUSSIAN_HUMP, 1)
	assert.NoError(t, err)
	assert.NoError(t, sw.SetOutputTimes([]float64{0.5, 1.0, 2.0}))
	var stamps []float64
	sw.Solve(func(s Snapshot) {
		stamps = append(stamps, s.Time)
	})
	// The initial state is always emitted at t=0; every scheduled time is
	// hit exactly, never approximately
	assert.Equal(t, 4, len(stamps))
	expect := []float64{0, 0.5, 1.0, 2.0}
	for i, ts := range stamps {
		assert.InDelta(t, expect[i], ts, 1.e-12)
	}
	assert.InDelta(t, 2.0, sw.Time, 1.e-12)
}

func TestMassConservation(t *testing.T) {
	for _, st := range []SchemeType{CENTRAL, WENO5} {
		sw, err := NewSWE(0.05, 0.1, 20.0, 9.80665, 64, 1, RK4, st, TRAVELING_WAVE, 1)
		assert.NoError(t, err)
		mass0 := sw.massIntegral()
		sw.Solve(func(s Snapshot) {})
		// Periodic flux differences telescope: total mass is invariant to
		// rounding, not just truncation error
		assert.InDelta(t, mass0, sw.massIntegral(), 1.e-10)
	}
}

func TestPairingOrthogonality(t *testing.T) {
	// Any integrator composes with any space scheme: all 12 pairings stay
	// finite after one CFL safe step from the Gaussian hump
	for _, it := range []IntegratorType{EULER_FORWARD, RK2, RK3, RK4} {
		for _, st := range []SchemeType{CENTRAL, UPWIND, WENO5} {
			sw, err := NewSWE(0.05, 1.0, 20.0, 9.80665, 32, 100, it, st, GAUSSIAN_HUMP, 1)
			assert.NoError(t, err)
			dt, _ := sw.CalculateDT()
			assert.Greater(t, dt, 0.)
			QNext := sw.TI.Advance(sw.Q, dt, sw.SD)
			assert.False(t, utils.IsNan(QNext))
			h := QNext.Row(0)
			assert.Greater(t, h.Min(), 0.)
		}
	}
}

func TestUpwindMonotone(t *testing.T) {
	// The monotone upwind scheme introduces no new extrema on the dam break
	// step, unlike unfiltered central difference
	sw, err := NewSWE(0.1, 0.2, 20.0, 9.80665, 200, 1, EULER_FORWARD, UPWIND, DAM_BREAK, 1)
	assert.NoError(t, err)
	sw.Solve(func(s Snapshot) {})
	h := sw.Q.Row(0)
	assert.GreaterOrEqual(t, h.Min(), 1.-1.e-3)
	assert.LessOrEqual(t, h.Max(), 1.2+1.e-3)
}

func TestDamBreakPlateau(t *testing.T) {
	// The simulated dam break develops the Stoker star region plateau at
	// the right going interface before the waves interact
	var (
		grav = 9.80665
		tm   = 0.3
	)
	sw, err := NewSWE(0.1, tm, 20.0, grav, 400, 1, RK3, UPWIND, DAM_BREAK, 1)
	assert.NoError(t, err)
	sw.Solve(func(s Snapshot) {})
	_, _, _, _, x2, x3 := dam_break.DamBreakCalc(tm, 1.2, 1.0, grav, 2.5)
	hm := dam_break.StarHeight(1.2, 1.0, grav)
	// Sample mid-plateau, away from the smeared wave fronts
	xMid := 0.5 * (x2 + x3)
	i := int((xMid - sw.Grid.XMin) / sw.Grid.Dx)
	assert.InDelta(t, hm, sw.Q.At(0, i), 0.05)
}

func TestOrderOfAccuracy(t *testing.T) {
	// Refinement ladder on the smooth traveling wave against a fine grid
	// reference; CFL small so the spatial error dominates the RK4 time error
	errAt := func(st SchemeType, K, KRef int) (rms float64) {
		run := func(K int) []float64 {
			sw, err := NewSWE(0.02, 0.02, 20.0, 9.80665, K, 1, RK4, st, TRAVELING_WAVE, 1)
			assert.NoError(t, err)
			sw.Solve(func(s Snapshot) {})
			return sw.Q.Data()[:K]
		}
		var (
			h   = run(K)
			ref = run(KRef)
			r   = KRef / K
		)
		for i := 0; i < K; i++ {
			d := h[i] - ref[i*r]
			rms += d * d
		}
		rms = math.Sqrt(rms / float64(K))
		return
	}
	{ // Central + RK4 is 2nd order: halving dx cuts the error ~4x
		e1 := errAt(CENTRAL, 32, 128)
		e2 := errAt(CENTRAL, 64, 128)
		ratio := e1 / e2
		assert.Greater(t, ratio, 3.)
		assert.Less(t, ratio, 8.)
	}
	{ // WENO5 + RK4 is high order: the reduction is far steeper
		e1 := errAt(WENO5, 32, 128)
		e2 := errAt(WENO5, 64, 128)
		assert.Greater(t, e1/e2, 10.)
	}
}

func TestDriverConfiguration(t *testing.T) {
	{ // Fail fast on bad configuration before any stepping
		_, err := NewSWE(0, 1, 20, 9.80665, 50, 20, RK3, UPWIND, GAUSSIAN_HUMP, 1)
		assert.Error(t, err)
		_, err = NewSWE(0.1, 0, 20, 9.80665, 50, 20, RK3, UPWIND, GAUSSIAN_HUMP, 1)
		assert.Error(t, err)
		_, err = NewSWE(0.1, 1, 20, 9.80665, 50, 0, RK3, UPWIND, GAUSSIAN_HUMP, 1)
		assert.Error(t, err)
		_, err = NewSWE(0.1, 1, -20, 9.80665, 50, 20, RK3, UPWIND, GAUSSIAN_HUMP, 1)
		assert.Error(t, err)
		_, err = NewSWE(0.1, 1, 20, 9.80665, 4, 20, RK3, WENO5, GAUSSIAN_HUMP, 1)
		assert.Error(t, err)
	}
	{ // Externally supplied state replaces the preset case
		sw, err := NewSWE(0.1, 1, 20, 9.80665, 4, 20, RK3, UPWIND, GAUSSIAN_HUMP, 1)
		assert.NoError(t, err)
		assert.NoError(t, sw.SetState([]float64{1, 2, 3, 4}, []float64{0, 0, 0, 0}))
		assert.Equal(t, []float64{1, 2, 3, 4}, sw.Q.Data()[:4])
		assert.Error(t, sw.SetState([]float64{1, 2}, []float64{0, 0}))
	}
	{ // The step size never overshoots the output cadence by more than 2x
		sw, err := NewSWE(0.1, 1, 20, 9.80665, 5, 50, RK3, UPWIND, GAUSSIAN_HUMP, 1)
		assert.NoError(t, err)
		// On this coarse grid the CFL candidate is ~0.11, well above the
		// 0.5/FPS cap of 0.01
		dt, _ := sw.CalculateDT()
		assert.InDelta(t, 0.5/50., dt, 1.e-12)
	}
	{ // Snapshots are copies, immune to later stepping
		sw, err := NewSWE(0.1, 0.1, 20, 9.80665, 32, 10, RK3, UPWIND, GAUSSIAN_HUMP, 1)
		assert.NoError(t, err)
		var first Snapshot
		sw.Solve(func(s Snapshot) {
			if s.Time == 0 {
				first = s
			}
		})
		assert.Equal(t, 0., first.Time)
		assert.InDelta(t, 1.3, first.H[16], 1.e-6) // hump apex at x=0
		assert.NotEqual(t, first.H[16], sw.Q.At(0, 16))
	}
}
