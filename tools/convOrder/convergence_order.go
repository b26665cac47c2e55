package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/hydrodyn/goswe/model_problems/SWE1D"
)

var (
	csvFile    string
	scheme     string
	integrator string
	numNodes   int
	finalTime  float64
	cfl        float64
)

/*
Runs a grid refinement ladder (K, 2K, 4K) on the smooth traveling wave case
and reports the observed order of accuracy of the chosen scheme. An 8K grid
is the reference; each coarser solution is compared on its own nodes, which
are an exact subset of the finer grids since K doubles.
*/
func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "write the study entries to this CSV file")
	schemePtr := flag.String("scheme", "central", "space scheme: central, upwind or weno5")
	integratorPtr := flag.String("integrator", "rk4", "time integrator: euler, rk2, rk3 or rk4")
	numNodesPtr := flag.Int("k", 50, "coarsest node count of the ladder")
	finalTimePtr := flag.Float64("finalTime", 0.02, "end time, short enough to stay in the smooth regime")
	cflPtr := flag.Float64("CFL", 0.02, "CFL constant, small so spatial error dominates")
	flag.Parse()
	csvFile = *csvFilePtr
	scheme = *schemePtr
	integrator = *integratorPtr
	numNodes = *numNodesPtr
	finalTime = *finalTimePtr
	cfl = *cflPtr

	cs := NewConvergenceStudy(scheme+"+"+integrator, cfl)
	ladder := []int{numNodes, 2 * numNodes, 4 * numNodes}
	ref := runCase(8 * numNodes)
	for _, K := range ladder {
		h := runCase(K)
		rms, max := restrictError(h, ref)
		cs.Add(K, rms, max)
	}
	fmt.Printf("Title = %s, CFL = %5.2f\n", cs.title, cs.CFL)
	for i := range cs.numPTS {
		fmt.Printf("%d, %v, %v\n", cs.numPTS[i], cs.hRMS[i], cs.hMAX[i])
		if i > 0 {
			order := math.Log2(cs.hRMS[i-1] / cs.hRMS[i])
			fmt.Printf("observed order (RMS) = %5.2f\n", order)
		}
	}
	if len(csvFile) != 0 {
		writeCSV(csvFile, cs)
	}
}

func runCase(K int) (h []float64) {
	sw, err := SWE1D.NewSWE(cfl, finalTime, 20.0, 9.80665, K, 1,
		SWE1D.NewIntegratorType(integrator), SWE1D.NewSchemeType(scheme), SWE1D.TRAVELING_WAVE, 1)
	if err != nil {
		panic(err)
	}
	sw.Solve(func(s SWE1D.Snapshot) {})
	h = append(h, sw.Q.Data()[:K]...)
	return
}

// restrictError compares a coarse solution against the reference on the
// coarse nodes, which coincide with every (len(ref)/len(h))-th fine node.
func restrictError(h, ref []float64) (rms, max float64) {
	var (
		K    = len(h)
		r    = len(ref) / K
		diff = make([]float64, K)
	)
	for i := 0; i < K; i++ {
		diff[i] = math.Abs(h[i] - ref[i*r])
	}
	rms = floats.Norm(diff, 2) / math.Sqrt(float64(K))
	max = floats.Max(diff)
	return
}

type ConvergenceStudy struct {
	title      string
	CFL        float64
	numPTS     []int
	hRMS, hMAX []float64
}

func NewConvergenceStudy(title string, CFL float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
		CFL:   CFL,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, hRMS, hMAX float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.hRMS = append(cs.hRMS, hRMS)
	cs.hMAX = append(cs.hMAX, hMAX)
}

func writeCSV(csvFile string, cs *ConvergenceStudy) {
	var (
		f   *os.File
		err error
	)
	if f, err = os.Create(csvFile); err != nil {
		panic(err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err = w.Write([]string{"Title", "NumNodes", "CFL", "hRMS", "hMAX"}); err != nil {
		panic(err)
	}
	for i := range cs.numPTS {
		rec := []string{
			cs.title,
			strconv.Itoa(cs.numPTS[i]),
			fmt.Sprintf("%v", cs.CFL),
			fmt.Sprintf("%v", cs.hRMS[i]),
			fmt.Sprintf("%v", cs.hMAX[i]),
		}
		if err = w.Write(rec); err != nil {
			panic(err)
		}
	}
	w.Flush()
	fmt.Printf("Output file: %v\n", csvFile)
}
