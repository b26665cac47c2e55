package SWE1D

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// Snapshot is the solver output at one scheduled time: copies of the height
// and momentum fields with the node coordinates, immutable once produced.
type Snapshot struct {
	Time     float64
	H, HU, X []float64
}

/*
scheduleCursor walks an ordered, strictly increasing list of output times.
Head returns +Inf once the list is exhausted, so the time loop can always
compare against Head without running off the end of the schedule.
*/
type scheduleCursor struct {
	times []float64
	pos   int
}

func newScheduleCursor(times []float64) (sc *scheduleCursor, err error) {
	last := 0.
	for i, t := range times {
		if t <= last {
			err = fmt.Errorf("output times must be positive and strictly increasing, have %v at position %d", t, i)
			return
		}
		last = t
	}
	sc = &scheduleCursor{times: times}
	return
}

func (sc *scheduleCursor) Head() (t float64) {
	if sc.pos >= len(sc.times) {
		return math.Inf(1)
	}
	return sc.times[sc.pos]
}

func (sc *scheduleCursor) Advance() { sc.pos++ }

// NewOutputSchedule generates the fixed cadence schedule 1/FPS, 2/FPS, ...
// up to and including finalTime.
func NewOutputSchedule(FPS int, finalTime float64) (times []float64) {
	var (
		dt = 1. / float64(FPS)
	)
	for k := 1; float64(k)*dt < finalTime+0.5*dt; k++ {
		t := float64(k) * dt
		if t > finalTime { // rounding can push the last rung past the end
			t = finalTime
		}
		times = append(times, t)
	}
	return
}

/*
SolutionWriter serializes snapshots as plain text, one row per node in the
fixed three column layout "h x t", for later comparison and playback.
*/
type SolutionWriter struct {
	w *bufio.Writer
}

func NewSolutionWriter(w io.Writer) *SolutionWriter {
	return &SolutionWriter{w: bufio.NewWriter(w)}
}

func (sw *SolutionWriter) Write(s Snapshot) (err error) {
	for i := range s.H {
		if _, err = fmt.Fprintf(sw.w, "%.18e %.18e %.18e\n", s.H[i], s.X[i], s.Time); err != nil {
			return
		}
	}
	err = sw.w.Flush()
	return
}
