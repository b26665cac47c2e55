package SWE1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/hydrodyn/goswe/FD1D"
	"github.com/hydrodyn/goswe/utils"
)

type CaseType uint

const (
	GAUSSIAN_HUMP CaseType = iota
	DAM_BREAK
	TRAVELING_WAVE
	HITTING_ROCKS
)

var (
	case_names = []string{
		"Gaussian Hump",
		"Dam Break",
		"Traveling Wave",
		"Hitting Rocks",
	}
	CaseNames = map[string]CaseType{
		"gaussian": GAUSSIAN_HUMP,
		"dambreak": DAM_BREAK,
		"wave":     TRAVELING_WAVE,
		"rocks":    HITTING_ROCKS,
	}
)

func (ct CaseType) String() string { return case_names[ct] }

func NewCaseType(label string) (ct CaseType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if ct, ok = CaseNames[label]; !ok {
		err = fmt.Errorf("unable to use initial condition case named %s", label)
		panic(err)
	}
	return
}

/*
InitializeCase builds the initial conserved state for one of the four canonical
cases on the grid. All cases keep the height variation small against the unit
base depth, per the shallow water preconditions:

	GAUSSIAN_HUMP  - h = 1 + 0.3*exp(-x^2), still water
	DAM_BREAK      - h = 1 + 0.2 inside |x| < L/8, still water
	TRAVELING_WAVE - h = 1 + 0.1*sin(2*pi*x/L), moving at constant speed 3
	HITTING_ROCKS  - flat h = 1, outward velocity perturbation in the middle
*/
func InitializeCase(g *FD1D.Grid1D, ct CaseType) (Q utils.Matrix) {
	var (
		K  = g.K
		L  = g.Length()
		kw = 2. * math.Pi / L
	)
	Q = utils.NewMatrix(2, K)
	var (
		qd = Q.Data()
		h  = qd[:K]
		hu = qd[K:]
	)
	for i := 0; i < K; i++ {
		x := g.X.AtVec(i)
		switch ct {
		case GAUSSIAN_HUMP:
			h[i] = 1. + 0.3*math.Exp(-x*x)
		case DAM_BREAK:
			h[i] = 1.
			if math.Abs(x) < L/8. {
				h[i] = 1.2
			}
		case TRAVELING_WAVE:
			h[i] = 1. + 0.1*math.Sin(kw*x)
			hu[i] = 3. * h[i]
		case HITTING_ROCKS:
			h[i] = 1.
			hu[i] = 0.5 * math.Sin(kw*x)
		}
	}
	return
}
