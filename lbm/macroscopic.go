package lbm

// Macroscopic recovers the density and velocity fields from the populations:
// rho = Σ_i f_i and u_c = Σ_i v[i,c]·f_i / rho per cell. The sweep is a full
// phase barrier; rho and u are completely rewritten.
//
// Density is not range-checked here: the bulk of the domain cannot produce a
// non-positive density from finite populations, and the one place that can
// (the analytically reconstructed inlet column) is checked by the inflow
// correction. Full-field divergence scans run at the reporting cadence.
func Macroscopic(lat *Lattice, f *Populations, rho *ScalarField, u *VectorField, workers int) {
	nx, ny := f.NX, f.NY
	sweep(workers, nx, func(lo, hi int) {
		for x := lo; x < hi; x++ {
			base := x * ny
			for y := 0; y < ny; y++ {
				cell := base + y
				var r, mx, my float64
				for i := 0; i < 9; i++ {
					fi := f.Data[i*nx*ny+cell]
					r += fi
					mx += float64(lat.Velocities[i][0]) * fi
					my += float64(lat.Velocities[i][1]) * fi
				}
				rho.Data[cell] = r
				u.X.Data[cell] = mx / r
				u.Y.Data[cell] = my / r
			}
		}
	})
}
