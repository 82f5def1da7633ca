package lbm

// Lattice holds the D2Q9 discrete velocity set: nine directions with integer
// components in {-1,0,1}² and their quadrature weights. Direction ordering
// follows the convention where index i and index 8-i are opposite, which the
// bounce-back and inflow corrections rely on.
type Lattice struct {
	// Velocities[i] is the (vx, vy) displacement of direction i per step.
	Velocities [9][2]int
	// Weights[i] is the quadrature weight of direction i; the nine sum to 1.
	Weights [9]float64

	// Direction groups by the sign of the horizontal velocity component.
	// Rightward directions carry fluid toward +x (into the domain at the
	// inlet), Leftward toward -x (out of the domain at the inlet).
	Rightward [3]int
	Vertical  [3]int
	Leftward  [3]int
}

// D2Q9 is the standard two-dimensional nine-velocity lattice. It is immutable;
// components receive it by pointer from the solver rather than reaching for a
// package global so independent solvers stay self-contained.
var D2Q9 = &Lattice{
	Velocities: [9][2]int{
		{1, 1}, {1, 0}, {1, -1},
		{0, 1}, {0, 0}, {0, -1},
		{-1, 1}, {-1, 0}, {-1, -1},
	},
	Weights: [9]float64{
		1.0 / 36, 1.0 / 9, 1.0 / 36,
		1.0 / 9, 4.0 / 9, 1.0 / 9,
		1.0 / 36, 1.0 / 9, 1.0 / 36,
	},
	Rightward: [3]int{0, 1, 2},
	Vertical:  [3]int{3, 4, 5},
	Leftward:  [3]int{6, 7, 8},
}

// Opposite returns the index of the direction with reversed velocity.
// The ordering above makes this the involution i ↦ 8-i.
func Opposite(i int) int {
	return 8 - i
}
