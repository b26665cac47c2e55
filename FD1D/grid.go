package FD1D

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/hydrodyn/goswe/utils"
)

/*
Grid1D is a uniform periodic finite difference grid: K nodes covering
[XMin, XMax) with X[i] = XMin + i*Dx and Dx = (XMax-XMin)/K. The node to the
right of X[K-1] is X[0]; all neighbor lookups go through the wrap-around
Shift maps.
*/
type Grid1D struct {
	K          int     // Number of nodes
	XMin, XMax float64 // Periodic domain [XMin, XMax)
	Dx         float64
	X          utils.Vector // Node coordinates
	shifts     map[int]utils.Index
}

func NewGrid1D(xMin, xMax float64, K int) (g *Grid1D, err error) {
	if K <= 0 {
		err = fmt.Errorf("node count must be positive, have K = %d", K)
		return
	}
	if xMax <= xMin {
		err = fmt.Errorf("domain length must be positive, have [%v, %v)", xMin, xMax)
		return
	}
	g = &Grid1D{
		K:      K,
		XMin:   xMin,
		XMax:   xMax,
		Dx:     (xMax - xMin) / float64(K),
		shifts: make(map[int]utils.Index),
	}
	data := make([]float64, K)
	for i := range data {
		data[i] = xMin + float64(i)*g.Dx
	}
	g.X = utils.NewVector(K, data)
	return
}

func (g *Grid1D) Length() float64 { return g.XMax - g.XMin }

// Shift returns the periodic index map idx[i] = (i+d) mod K for neighbor
// offset d, cached per offset. Built once like element connectivity maps;
// not safe for construction from concurrent goroutines.
func (g *Grid1D) Shift(d int) (I utils.Index) {
	var (
		ok bool
	)
	if I, ok = g.shifts[d]; !ok {
		I = utils.NewPeriodicShift(g.K, d)
		g.shifts[d] = I
	}
	return
}

/*
CentralDiffOp assembles the K x K periodic centered first derivative in
sparse form: row i holds +1/(2 Dx) at column (i+1) mod K and -1/(2 Dx) at
column (i-1) mod K, so node 0 reads nodes K-1 and 1, and node K-1 reads
nodes K-2 and 0.
*/
func (g *Grid1D) CentralDiffOp() (D *sparse.CSR) {
	var (
		c   = 1. / (2. * g.Dx)
		dok = utils.NewDOK(g.K, g.K)
		ip1 = g.Shift(1)
		im1 = g.Shift(-1)
	)
	for i := 0; i < g.K; i++ {
		dok.Set(i, ip1[i], c)
		dok.Set(i, im1[i], -c)
	}
	D = dok.ToCSR()
	return
}
