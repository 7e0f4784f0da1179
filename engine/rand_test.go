package engine

// scriptedRand replays vals in order, wrapping around, reduced modulo n.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// fixedRand always answers the same position relative to n.
type fixedRand struct {
	top bool
}

func (r fixedRand) IntN(n int) int {
	if r.top {
		return n - 1
	}
	return 0
}
