package utils

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

/*
NewPeriodicShift builds the index map idx[i] = (i+d) mod N over a periodic
ring of N nodes, using the mathematical (always non-negative) modulo so that
negative offsets wrap to the high end:

	N=5, d=-1 -> [4 0 1 2 3]
	N=5, d=+2 -> [2 3 4 0 1]

Any |d| >= N is a caller contract violation and is not validated.
*/
func NewPeriodicShift(N, d int) (r Index) {
	r = NewIndex(N)
	for i := range r {
		r[i] = ((i+d)%N + N) % N
	}
	return
}

func (I Index) Add(val int) (r Index) {
	r = make(Index, len(I))
	for i, ival := range I {
		r[i] = val + ival
	}
	return r
}

func (I Index) Apply(f func(val int) int) (r Index) {
	r = make(Index, len(I))
	for i, val := range I {
		r[i] = f(val)
	}
	return
}
