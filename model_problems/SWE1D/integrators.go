package SWE1D

import (
	"fmt"
	"strings"

	"github.com/hydrodyn/goswe/utils"
)

/*
TimeIntegrator advances the conserved state by one step of size dt using the
flux divergence of the supplied space scheme. Implementations are pure: the
input Q is never mutated, and any space scheme composes with any integrator.
*/
type TimeIntegrator interface {
	Advance(Q utils.Matrix, dt float64, SD SpaceScheme) (QNext utils.Matrix)
}

type IntegratorType uint

const (
	EULER_FORWARD IntegratorType = iota
	RK2
	RK3
	RK4
)

var (
	integrator_names = []string{
		"Euler Forward",
		"2nd Order Runge-Kutta",
		"3rd Order Runge-Kutta (SSP)",
		"4th Order Runge-Kutta",
	}
	IntegratorNames = map[string]IntegratorType{
		"euler": EULER_FORWARD,
		"rk2":   RK2,
		"rk3":   RK3,
		"rk4":   RK4,
	}
)

func (it IntegratorType) String() string { return integrator_names[it] }

func NewIntegratorType(label string) (it IntegratorType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if it, ok = IntegratorNames[label]; !ok {
		err = fmt.Errorf("unable to use time integrator named %s", label)
		panic(err)
	}
	return
}

func NewTimeIntegrator(it IntegratorType) (ti TimeIntegrator) {
	switch it {
	case EULER_FORWARD:
		ti = &EulerForward{}
	case RK2:
		ti = &RungeKutta2{}
	case RK3:
		ti = &RungeKutta3SSP{}
	case RK4:
		ti = &RungeKutta4{}
	}
	return
}

// EulerForward is u_{n+1} = u_n - dt*D(u_n).
type EulerForward struct{}

func (ti *EulerForward) Advance(Q utils.Matrix, dt float64, SD SpaceScheme) (QNext utils.Matrix) {
	update := func(u0, rhs float64) (u1 float64) {
		u1 = u0 - dt*rhs
		return
	}
	QNext = Q.Copy().Apply2(SD.FluxDivergence(Q), update)
	return
}

// RungeKutta2 is the midpoint method: a half step estimate, then a full
// step using the flux divergence at the midpoint state.
type RungeKutta2 struct{}

func (ti *RungeKutta2) Advance(Q utils.Matrix, dt float64, SD SpaceScheme) (QNext utils.Matrix) {
	updateHalf := func(u0, rhs float64) (u1 float64) {
		u1 = u0 - 0.5*dt*rhs
		return
	}
	Q1 := Q.Copy().Apply2(SD.FluxDivergence(Q), updateHalf)
	updateFull := func(u0, rhs float64) (u1 float64) {
		u1 = u0 - dt*rhs
		return
	}
	QNext = Q.Copy().Apply2(SD.FluxDivergence(Q1), updateFull)
	return
}

// RungeKutta3SSP is the three stage strong stability preserving scheme.
type RungeKutta3SSP struct{}

func (ti *RungeKutta3SSP) Advance(Q utils.Matrix, dt float64, SD SpaceScheme) (QNext utils.Matrix) {
	update1 := func(u0, rhs float64) (u1 float64) {
		u1 = u0 - dt*rhs
		return
	}
	Q1 := Q.Copy().Apply2(SD.FluxDivergence(Q), update1)

	update2 := func(u0, u1, rhs float64) (u2 float64) {
		u2 = 0.75*u0 + 0.25*u1 - 0.25*dt*rhs
		return
	}
	Q2 := Q.Copy().Apply3(Q1, SD.FluxDivergence(Q1), update2)

	update3 := func(u0, u2, rhs float64) (u3 float64) {
		u3 = (1./3.)*u0 + (2./3.)*u2 - (2./3.)*dt*rhs
		return
	}
	QNext = Q.Copy().Apply3(Q2, SD.FluxDivergence(Q2), update3)
	return
}

/*
RungeKutta4 is the four stage scheme in incremental form: each intermediate
state mixes the previous stage with the difference of two flux divergence
evaluations, and the final combination weights the four evaluations by
-1, -2, +4, -1 scaled by dt/6. Algebraically this is the classical RK4.
*/
type RungeKutta4 struct{}

func (ti *RungeKutta4) Advance(Q utils.Matrix, dt float64, SD SpaceScheme) (QNext utils.Matrix) {
	K0 := SD.FluxDivergence(Q)
	update1 := func(u0, rhs float64) (u1 float64) {
		u1 = u0 - 0.5*dt*rhs
		return
	}
	Q1 := Q.Copy().Apply2(K0, update1)

	K1 := SD.FluxDivergence(Q1)
	update2 := func(u1, k0, k1 float64) (u2 float64) {
		u2 = u1 + 0.5*dt*(k0-k1)
		return
	}
	Q2 := Q1.Copy().Apply3(K0, K1, update2)

	K2 := SD.FluxDivergence(Q2)
	update3 := func(u2, k1, k2 float64) (u3 float64) {
		u3 = u2 + 0.5*dt*(k1-2.*k2)
		return
	}
	Q3 := Q2.Copy().Apply3(K1, K2, update3)

	K3 := SD.FluxDivergence(Q3)
	update4 := func(u3, k0, k1, k2, k3 float64) (u4 float64) {
		u4 = u3 + (dt/6.)*(-k0-2.*k1+4.*k2-k3)
		return
	}
	QNext = Q3.Copy().Apply5(K0, K1, K2, K3, update4)
	return
}
