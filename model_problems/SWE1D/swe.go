package SWE1D

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/hydrodyn/goswe/FD1D"
	"github.com/hydrodyn/goswe/dam_break"
	"github.com/hydrodyn/goswe/utils"
)

/*
SWE owns the time stepping loop for the 1D shallow water equations on a
periodic grid. Each iteration computes a CFL governed step size capped at
0.5/FPS, shrinks it to land exactly on the next scheduled output time when
one falls inside the step, advances the state through the selected time
integrator and space scheme pairing, and emits a Snapshot when a scheduled
time was hit. The state matrix Q is owned exclusively by the driver; the
integrators and schemes return fresh matrices.
*/
type SWE struct {
	// Input parameters
	CFL, FinalTime float64
	Grav           float64
	FPS            int
	Grid           *FD1D.Grid1D
	Q              utils.Matrix
	Time           float64
	TI             TimeIntegrator
	SD             SpaceScheme
	Writer         *SolutionWriter // optional, wired by the caller
	Case           CaseType
	cursor         *scheduleCursor
	mass0          float64
	plotOnce       sync.Once
	chart          *chart2d.Chart2D
	colorMap       *utils2.ColorMap
	frameCount     int
}

func NewSWE(CFL, FinalTime, xLength, grav float64, K, FPS int,
	it IntegratorType, st SchemeType, ct CaseType, parallelDegree int) (sw *SWE, err error) {
	var (
		g *FD1D.Grid1D
	)
	if CFL <= 0 {
		err = fmt.Errorf("CFL must be positive, have %v", CFL)
		return
	}
	if FinalTime <= 0 {
		err = fmt.Errorf("final time must be positive, have %v", FinalTime)
		return
	}
	if FPS <= 0 {
		err = fmt.Errorf("FPS must be positive, have %d", FPS)
		return
	}
	if st == WENO5 && K < 5 {
		err = fmt.Errorf("WENO5 needs at least 5 nodes, have K = %d", K)
		return
	}
	if g, err = FD1D.NewGrid1D(-xLength/2, xLength/2, K); err != nil {
		return
	}
	sw = &SWE{
		CFL:       CFL,
		FinalTime: FinalTime,
		Grav:      grav,
		FPS:       FPS,
		Grid:      g,
		TI:        NewTimeIntegrator(it),
		SD:        NewSpaceScheme(st, g, grav, parallelDegree),
		Case:      ct,
	}
	sw.Q = InitializeCase(g, ct)
	sw.mass0 = sw.massIntegral()
	if sw.cursor, err = newScheduleCursor(NewOutputSchedule(FPS, FinalTime)); err != nil {
		return
	}
	fmt.Printf("Shallow Water Equations in 1 Dimension\nSolving %s\n", case_names[ct])
	fmt.Printf("Space Scheme: %s, Time Integrator: %s\n", scheme_names[st], integrator_names[it])
	fmt.Printf("CFL = %8.4f, FPS = %d, Num Nodes K = %d\n\n\n", CFL, FPS, K)
	return
}

// SetState replaces the initial condition with externally supplied height
// and momentum arrays. Only valid before stepping begins.
func (sw *SWE) SetState(h, hu []float64) (err error) {
	var (
		K = sw.Grid.K
	)
	if sw.Time != 0 {
		err = fmt.Errorf("state can only be replaced at t = 0")
		return
	}
	if len(h) != K || len(hu) != K {
		err = fmt.Errorf("state arrays must have length %d, have %d and %d", K, len(h), len(hu))
		return
	}
	sw.Q = utils.NewMatrix(2, K)
	copy(sw.Q.Data()[:K], h)
	copy(sw.Q.Data()[K:], hu)
	sw.mass0 = sw.massIntegral()
	return
}

// SetOutputTimes replaces the FPS derived schedule with an explicit strictly
// increasing list of output times.
func (sw *SWE) SetOutputTimes(times []float64) (err error) {
	if sw.Time != 0 {
		err = fmt.Errorf("output schedule can only be replaced at t = 0")
		return
	}
	sw.cursor, err = newScheduleCursor(times)
	return
}

/*
CalculateDT computes the stability governed candidate step
CFL*dx/sqrt(g*max(h)), capped at half the output cadence, then clamped so
the step lands exactly on the final time and on the next scheduled output
time when either falls inside the step. The output flag reports a scheduled
hit; exact hits are mandatory, downstream consumers key off the timestamps.
*/
func (sw *SWE) CalculateDT() (dt float64, output bool) {
	var (
		hMax = sw.Q.Row(0).Max()
	)
	dt = math.Min(sw.CFL*sw.Grid.Dx/math.Sqrt(sw.Grav*hMax), 0.5/float64(sw.FPS))
	if sw.Time+dt > sw.FinalTime {
		dt = sw.FinalTime - sw.Time
	}
	if head := sw.cursor.Head(); sw.Time < head && head <= sw.Time+dt {
		dt = head - sw.Time
		sw.cursor.Advance()
		output = true
	}
	return
}

/*
Solve runs the loop from t = 0 to the final time, handing snapshots to emit
as they are produced. The initial state is always emitted at t = 0. The
sequence is finite and not restartable; a second call on the same SWE
returns immediately.
*/
func (sw *SWE) Solve(emit func(Snapshot)) {
	var (
		logFrequency = 50
		tstep        int
	)
	if sw.Time == 0 {
		emit(sw.snapshot())
	}
	for sw.Time < sw.FinalTime {
		dt, output := sw.CalculateDT()
		sw.Q = sw.TI.Advance(sw.Q, dt, sw.SD)
		sw.Time += dt
		tstep++
		if output {
			emit(sw.snapshot())
		}
		isDone := sw.Time >= sw.FinalTime
		if tstep%logFrequency == 0 || isDone {
			h := sw.Q.Row(0)
			fmt.Printf("Time = %8.4f, tstep = %d, hmin = %8.6f, hmax = %8.6f\n",
				sw.Time, tstep, h.Min(), h.Max())
			if isDone {
				mass := sw.massIntegral()
				logErr := math.Log10(math.Abs(mass - sw.mass0))
				fmt.Printf("Mass Integration Check: Initial = %5.4f, Final = %5.4f, Log10 Error = %5.4f\n",
					sw.mass0, mass, logErr)
			}
		}
	}
}

// Run drives Solve with the plot and writer collaborators attached.
func (sw *SWE) Run(showGraph bool, graphDelay ...time.Duration) {
	sw.Solve(func(s Snapshot) {
		if sw.Writer != nil {
			if err := sw.Writer.Write(s); err != nil {
				panic(err)
			}
		}
		sw.Plot(showGraph, graphDelay, s)
	})
	if showGraph {
		for {
			time.Sleep(time.Second)
		}
	}
}

func (sw *SWE) snapshot() (s Snapshot) {
	var (
		K  = sw.Grid.K
		qd = sw.Q.Data()
	)
	s = Snapshot{
		Time: sw.Time,
		H:    append([]float64{}, qd[:K]...),
		HU:   append([]float64{}, qd[K:]...),
		X:    append([]float64{}, sw.Grid.X.Data()...),
	}
	return
}

// massIntegral is the discrete total mass sum(h)*dx, invariant on the
// periodic ring up to scheme truncation error.
func (sw *SWE) massIntegral() (mass float64) {
	var (
		K = sw.Grid.K
		h = sw.Q.Data()[:K]
	)
	for i := 0; i < K; i++ {
		mass += h[i]
	}
	mass *= sw.Grid.Dx
	return
}

func (sw *SWE) Plot(showGraph bool, graphDelay []time.Duration, s Snapshot) {
	var (
		g          = sw.Grid
		fmin, fmax = float32(-0.5), float32(3.6)
	)
	if !showGraph {
		return
	}
	sw.plotOnce.Do(func() {
		sw.chart = chart2d.NewChart2D(1920, 1280, float32(g.XMin), float32(g.XMax), fmin, fmax)
		sw.colorMap = utils2.NewColorMap(-1, 1, 1)
		go sw.chart.Plot()
	})
	pSeries := func(field []float64, name string, color float32) {
		if err := sw.chart.AddSeries(name, s.X, field,
			chart2d.NoGlyph, chart2d.Solid, sw.colorMap.GetRGB(color)); err != nil {
			panic("unable to add graph series")
		}
	}
	pSeries(s.H, "H", -0.7)
	pSeries(s.HU, "HU", 0.7)
	sw.frameCount++
	if sw.Case == DAM_BREAK && s.Time > 0 {
		AddAnalyticDamBreak(sw.chart, sw.colorMap, s.Time, sw.Grav, g.Length())
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}

// AddAnalyticDamBreak overlays the Stoker wet bed solution for the right
// going interface of the DAM_BREAK case, valid before the waves interact
// with their periodic images.
func AddAnalyticDamBreak(chart *chart2d.Chart2D, colorMap *utils2.ColorMap, timeT, grav, xLength float64) {
	X, H, _, _, _, _ := dam_break.DamBreakCalc(timeT, 1.2, 1.0, grav, xLength/8.)
	if err := chart.AddSeries("ExactH", X, H, chart2d.XGlyph, chart2d.NoLine, colorMap.GetRGB(0.0)); err != nil {
		panic("unable to add exact solution H")
	}
}
