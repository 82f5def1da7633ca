package lbm

// Equilibrium fills feq with the second-order truncated Maxwellian for the
// given density and velocity fields:
//
//	feq_i = rho·w_i·(1 + 3(v_i·u) + 4.5(v_i·u)² − 1.5|u|²)
//
// By construction Σ feq_i = rho and Σ v_i·feq_i = rho·u for every cell, which
// the collision step relies on to conserve mass and momentum exactly.
//
// Velocities approaching the lattice speed limit |u| → 1 degrade the
// truncation; callers keep inlet speeds well below that (Validate enforces it
// for the configured profile), and the solver deliberately does not clamp.
func Equilibrium(lat *Lattice, rho *ScalarField, u *VectorField, feq *Populations, workers int) {
	nx, ny := feq.NX, feq.NY
	sweep(workers, nx, func(lo, hi int) {
		for x := lo; x < hi; x++ {
			base := x * ny
			for y := 0; y < ny; y++ {
				cell := base + y
				r := rho.Data[cell]
				ux := u.X.Data[cell]
				uy := u.Y.Data[cell]
				usqr := 1.5 * (ux*ux + uy*uy)
				for i := 0; i < 9; i++ {
					cu := 3 * (float64(lat.Velocities[i][0])*ux + float64(lat.Velocities[i][1])*uy)
					feq.Data[i*nx*ny+cell] = r * lat.Weights[i] * (1 + cu + 0.5*cu*cu - usqr)
				}
			}
		}
	})
}
