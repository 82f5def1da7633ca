package lbm

// Collide relaxes the populations toward equilibrium by the BGK rule
// fout_i = f_i − ω·(f_i − feq_i), elementwise over the whole grid. fout must
// be distinct storage from f: the obstacle bounce-back that follows reads the
// pre-collision f while overwriting fout.
func Collide(f, feq, fout *Populations, omega float64, workers int) {
	n := len(f.Data)
	sweep(workers, n, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			fout.Data[k] = f.Data[k] - omega*(f.Data[k]-feq.Data[k])
		}
	})
}
