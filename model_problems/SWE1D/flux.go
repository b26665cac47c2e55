package SWE1D

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/hydrodyn/goswe/FD1D"
	"github.com/hydrodyn/goswe/utils"
)

/*
SpaceScheme maps a conserved state Q (2 x K matrix, row 0 = h, row 1 = hu)
to the spatial flux divergence dF/dx on the periodic grid. Implementations
never mutate Q.
*/
type SpaceScheme interface {
	FluxDivergence(Q utils.Matrix) (dFdx utils.Matrix)
}

type SchemeType uint

const (
	CENTRAL SchemeType = iota
	UPWIND
	WENO5
)

var (
	scheme_names = []string{
		"2nd Order Central Difference",
		"1st Order Upwind, LF Flux Splitting",
		"5th Order WENO, LF Flux Splitting",
	}
	SchemeNames = map[string]SchemeType{
		"central": CENTRAL,
		"upwind":  UPWIND,
		"weno5":   WENO5,
	}
)

func (st SchemeType) String() string { return scheme_names[st] }

func NewSchemeType(label string) (st SchemeType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if st, ok = SchemeNames[label]; !ok {
		err = fmt.Errorf("unable to use space scheme named %s", label)
		panic(err)
	}
	return
}

func NewSpaceScheme(st SchemeType, g *FD1D.Grid1D, grav float64, parallelDegree int) (sd SpaceScheme) {
	switch st {
	case CENTRAL:
		sd = NewCentral(g, grav)
	case UPWIND:
		sd = NewUpwind(g, grav)
	case WENO5:
		sd = NewWENO5(g, grav, parallelDegree)
	}
	return
}

/*
Flux forms the shallow water flux F = [hu, hu^2/h + 0.5*g*h^2] from the
conserved state. Division by h assumes h > 0 everywhere; a dry bed violates
the model preconditions and is not detected here.
*/
func Flux(Q utils.Matrix, grav float64) (F utils.Matrix) {
	var (
		_, K = Q.Dims()
		qd   = Q.Data()
		h    = qd[:K]
		hu   = qd[K:]
	)
	F = utils.NewMatrix(2, K)
	fd := F.Data()
	for i := 0; i < K; i++ {
		fd[i] = hu[i]
		fd[K+i] = hu[i]*hu[i]/h[i] + 0.5*grav*h[i]*h[i]
	}
	return
}

// MaxSignalSpeed is the global Lax-Friedrichs splitting constant
// alpha = sqrt(g*max(h)) + max|hu/h|.
func MaxSignalSpeed(Q utils.Matrix, grav float64) (alpha float64) {
	var (
		_, K = Q.Dims()
		qd   = Q.Data()
		h    = qd[:K]
		hu   = qd[K:]
	)
	var hMax, uMax float64
	for i := 0; i < K; i++ {
		if h[i] > hMax {
			hMax = h[i]
		}
		if u := math.Abs(hu[i] / h[i]); u > uMax {
			uMax = u
		}
	}
	alpha = math.Sqrt(grav*hMax) + uMax
	return
}

// SplitFlux returns the right and left going parts Fp = 0.5*(F + alpha*Q)
// and Fm = 0.5*(F - alpha*Q) of the Lax-Friedrichs splitting.
func SplitFlux(Q utils.Matrix, grav float64) (Fp, Fm utils.Matrix) {
	var (
		alpha = MaxSignalSpeed(Q, grav)
		F     = Flux(Q, grav)
	)
	Fp = F.Copy().Apply2(Q, func(f, q float64) float64 { return 0.5 * (f + alpha*q) })
	Fm = F.Apply2(Q, func(f, q float64) float64 { return 0.5 * (f - alpha*q) })
	return
}

/*
Central is the 2nd order centered difference scheme: dF/dx at node i is
(F[i+1] - F[i-1]) / (2*dx) with periodic wrap, applied as a sparse circulant
operator assembled once per grid.
*/
type Central struct {
	grid *FD1D.Grid1D
	Grav float64
	D    mat.Matrix // K x K periodic centered difference, CSR form
}

func NewCentral(g *FD1D.Grid1D, grav float64) (c *Central) {
	c = &Central{
		grid: g,
		Grav: grav,
		D:    g.CentralDiffOp(),
	}
	return
}

func (c *Central) FluxDivergence(Q utils.Matrix) (dFdx utils.Matrix) {
	var (
		K = c.grid.K
		F = Flux(Q, c.Grav)
	)
	dFdx = utils.NewMatrix(2, K)
	for n := 0; n < 2; n++ {
		var y mat.VecDense
		y.MulVec(c.D, mat.NewVecDense(K, F.Data()[n*K:(n+1)*K]))
		copy(dFdx.Data()[n*K:(n+1)*K], y.RawVector().Data)
	}
	return
}

/*
Upwind is the 1st order flux splitting scheme. The right face value of the
right-going part is the cell's own value; the right face value of the
left-going part is the next node's value. The derivative is the face to face
difference over dx, summed over both parts.
*/
type Upwind struct {
	grid *FD1D.Grid1D
	Grav float64
}

func NewUpwind(g *FD1D.Grid1D, grav float64) (u *Upwind) {
	u = &Upwind{
		grid: g,
		Grav: grav,
	}
	return
}

func (u *Upwind) FluxDivergence(Q utils.Matrix) (dFdx utils.Matrix) {
	var (
		g      = u.grid
		K      = g.K
		Fp, Fm = SplitFlux(Q, u.Grav)
		ip1    = g.Shift(1)
		im1    = g.Shift(-1)
	)
	dFdx = utils.NewMatrix(2, K)
	dd := dFdx.Data()
	for n := 0; n < 2; n++ {
		var (
			fp = Fp.Data()[n*K : (n+1)*K]
			fm = Fm.Data()[n*K : (n+1)*K]
		)
		for i := 0; i < K; i++ {
			// fp face values are fp[i], fm face values are fm[i+1]
			dd[n*K+i] = (fp[i]-fp[im1[i]])/g.Dx + (fm[ip1[i]]-fm[i])/g.Dx
		}
	}
	return
}

/*
Weno5 is the 5th order WENO flux splitting scheme per Jiang and Shu, see
doi:10.1016/j.jcp.2005.02.006. Face values are reconstructed from three
candidate 3 point sub-stencils blended by smoothness weighted nonlinear
weights; the splitting and face difference steps are shared with Upwind.

A ParallelDegree above 1 partitions the per-node reconstruction across
goroutines without changing the result.
*/
type Weno5 struct {
	grid           *FD1D.Grid1D
	Grav           float64
	ParallelDegree int
	pm             *utils.PartitionMap
	up, down       [5]utils.Index // stencil shift maps, built once per grid
}

func NewWENO5(g *FD1D.Grid1D, grav float64, parallelDegree int) (w *Weno5) {
	if parallelDegree < 1 {
		parallelDegree = 1
	}
	w = &Weno5{
		grid:           g,
		Grav:           grav,
		ParallelDegree: parallelDegree,
		pm:             utils.NewPartitionMap(parallelDegree, g.K),
	}
	for n, d := range [5]int{-2, -1, 0, 1, 2} {
		w.up[n] = g.Shift(d)
	}
	for n, d := range [5]int{3, 2, 1, 0, -1} { // mirrored for the left-going part
		w.down[n] = g.Shift(d)
	}
	return
}

const wenoEpsilon = 1e-6

/*
WenoWeights computes the normalized nonlinear weights for the three
candidate sub-stencils from the five stencil values. The linear weights are
d = [1/10, 6/10, 3/10]; in smooth regions the nonlinear weights converge to
them, and they always sum to one.
*/
func WenoWeights(fm2, fm1, f0, fp1, fp2 float64) (w0, w1, w2 float64) {
	var (
		is0 = 13./12.*pow2(fm2-2.*fm1+f0) + 1./4.*pow2(fm2-4.*fm1+3.*f0)
		is1 = 13./12.*pow2(fm1-2.*f0+fp1) + 1./4.*pow2(fm1-fp1)
		is2 = 13./12.*pow2(f0-2.*fp1+fp2) + 1./4.*pow2(3.*f0-4.*fp1+fp2)
		al0 = 1. / 10. * pow2(1./(wenoEpsilon+is0))
		al1 = 6. / 10. * pow2(1./(wenoEpsilon+is1))
		al2 = 3. / 10. * pow2(1./(wenoEpsilon+is2))
		sum = al0 + al1 + al2
	)
	w0, w1, w2 = al0/sum, al1/sum, al2/sum
	return
}

func pow2(x float64) float64 { return x * x }

// wenoFace reconstructs face values of f over nodes [kmin, kmax) using the
// five shift maps S, writing into face.
func wenoFace(f, face []float64, S [5]utils.Index, kmin, kmax int) {
	for i := kmin; i < kmax; i++ {
		var (
			fm2, fm1 = f[S[0][i]], f[S[1][i]]
			f0       = f[S[2][i]]
			fp1, fp2 = f[S[3][i]], f[S[4][i]]
		)
		w0, w1, w2 := WenoWeights(fm2, fm1, f0, fp1, fp2)
		face[i] = w0*(2./6.*fm2-7./6.*fm1+11./6.*f0) +
			w1*(-1./6.*fm1+5./6.*f0+2./6.*fp1) +
			w2*(2./6.*f0+5./6.*fp1-1./6.*fp2)
	}
}

func (w *Weno5) FluxDivergence(Q utils.Matrix) (dFdx utils.Matrix) {
	var (
		g      = w.grid
		K      = g.K
		Fp, Fm = SplitFlux(Q, w.Grav)
		im1    = g.Shift(-1)
	)
	fpFace := utils.NewMatrix(2, K)
	fmFace := utils.NewMatrix(2, K)
	reconstruct := func(kmin, kmax int) {
		for n := 0; n < 2; n++ {
			wenoFace(Fp.Data()[n*K:(n+1)*K], fpFace.Data()[n*K:(n+1)*K], w.up, kmin, kmax)
			wenoFace(Fm.Data()[n*K:(n+1)*K], fmFace.Data()[n*K:(n+1)*K], w.down, kmin, kmax)
		}
	}
	if w.ParallelDegree > 1 {
		wg := sync.WaitGroup{}
		for np := 0; np < w.pm.ParallelDegree; np++ {
			wg.Add(1)
			go func(np int) {
				kmin, kmax := w.pm.GetBucketRange(np)
				reconstruct(kmin, kmax)
				wg.Done()
			}(np)
		}
		wg.Wait()
	} else {
		reconstruct(0, K)
	}
	dFdx = utils.NewMatrix(2, K)
	dd := dFdx.Data()
	for n := 0; n < 2; n++ {
		var (
			fp = fpFace.Data()[n*K : (n+1)*K]
			fm = fmFace.Data()[n*K : (n+1)*K]
		)
		for i := 0; i < K; i++ {
			dd[n*K+i] = (fp[i]-fp[im1[i]])/g.Dx + (fm[i]-fm[im1[i]])/g.Dx
		}
	}
	return
}
