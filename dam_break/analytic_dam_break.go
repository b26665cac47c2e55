package dam_break

import (
	"math"
)

/*
DamBreakCalc evaluates Stoker's wet bed dam break solution at time t for a
dam at x0 separating still water of depth hL on the left from depth hR on
the right, hL > hR > 0. The solution is a left running rarefaction and a
right running shock joined by the star region plateau (hm, um):

	x < x1         undisturbed left state
	x1 <= x <= x2  rarefaction fan
	x2 <= x <= x3  star region plateau
	x3 < x         undisturbed right state

The profile is sampled just inside each wave boundary so a line plot renders
the jumps sharply.
*/
func DamBreakCalc(t, hL, hR, grav, x0 float64) (X, H, U []float64, x1, x2, x3 float64) {
	var (
		cL     = math.Sqrt(grav * hL)
		hm     = fzero(starStateFunc(hL, hR, grav), 0.5*(hL+hR))
		um     = 2. * (cL - math.Sqrt(grav*hm))
		vShock = hm * um / (hm - hR)
	)
	x1 = x0 - cL*t
	x2 = x0 + t*(um-math.Sqrt(grav*hm))
	x3 = x0 + t*vShock
	tol := 0.00000001
	pad := 0.25*(x3-x1) + tol
	X = []float64{
		x1 - pad,
		x1 - tol, x1 + tol,
		x2 - tol, x2 + tol,
		x3 - tol, x3 + tol,
		x3 + pad,
	}
	H = make([]float64, len(X))
	U = make([]float64, len(X))
	for i, x := range X {
		switch {
		case x < x1:
			H[i] = hL
		case x1 <= x && x <= x2:
			c := (2.*cL - (x-x0)/t) / 3.
			H[i] = c * c / grav
			U[i] = (2. / 3.) * ((x-x0)/t + cL)
		case x2 <= x && x <= x3:
			H[i] = hm
			U[i] = um
		case x3 < x:
			H[i] = hR
		}
	}
	return
}

// StarHeight returns the plateau depth of the star region alone, for checks
// against simulated dam break profiles.
func StarHeight(hL, hR, grav float64) (hm float64) {
	hm = fzero(starStateFunc(hL, hR, grav), 0.5*(hL+hR))
	return
}

// starStateFunc equates the rarefaction and shock expressions for the star
// velocity; its root is the plateau depth hm.
func starStateFunc(hL, hR, grav float64) func(hm float64) (y float64) {
	return func(hm float64) (y float64) {
		y = 2.*(math.Sqrt(grav*hL)-math.Sqrt(grav*hm)) -
			(hm-hR)*math.Sqrt(grav*(hm+hR)/(2.*hm*hR))
		return
	}
}

func fzero(f func(h float64) (y float64), start float64) float64 {
	var (
		tol      = 0.0000001
		startOld = start / 2
		resOld   = f(startOld)
	)
	for i := 0; i < 100; i++ {
		res := f(start)
		if math.Abs(res) < tol {
			break
		}
		deriv := (start - startOld) / (res - resOld)
		startOld, resOld = start, res
		start = start - res*deriv
	}
	return start
}
