package lbm

// Stream propagates each directional slice one lattice step along its
// velocity, writing into fnext. Both axes wrap toroidally: a population
// leaving one edge reenters at the opposite edge. The left/right wrap is then
// partially overridden by the inflow/outflow corrections at the start of the
// next iteration; that wrap-then-overwrite sequencing is part of the reference
// behavior and must not be reordered.
//
// fnext must be distinct storage from fpost, since shifted source and
// destination cells overlap within a slice.
func Stream(lat *Lattice, fpost, fnext *Populations, workers int) {
	nx, ny := fpost.NX, fpost.NY
	sweep(workers, nx, func(lo, hi int) {
		for i := 0; i < 9; i++ {
			vx := lat.Velocities[i][0]
			vy := lat.Velocities[i][1]
			plane := i * nx * ny
			for x := lo; x < hi; x++ {
				dstX := x + vx
				if dstX < 0 {
					dstX += nx
				} else if dstX >= nx {
					dstX -= nx
				}
				src := plane + x*ny
				dst := plane + dstX*ny
				for y := 0; y < ny; y++ {
					dstY := y + vy
					if dstY < 0 {
						dstY += ny
					} else if dstY >= ny {
						dstY -= ny
					}
					fnext.Data[dst+dstY] = fpost.Data[src+y]
				}
			}
		}
	})
}
