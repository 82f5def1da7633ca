package lbm

// ScalarField is an NX×NY grid of real values in a single flat allocation,
// indexed column-major: cell (x, y) lives at Data[x*NY+y]. Column-major keeps
// a full column contiguous, which the inlet and outlet corrections sweep.
type ScalarField struct {
	NX, NY int
	Data   []float64
}

// NewScalarField allocates a zeroed NX×NY field.
func NewScalarField(nx, ny int) *ScalarField {
	return &ScalarField{NX: nx, NY: ny, Data: make([]float64, nx*ny)}
}

// At returns the value at cell (x, y).
func (f *ScalarField) At(x, y int) float64 {
	return f.Data[x*f.NY+y]
}

// Set stores v at cell (x, y).
func (f *ScalarField) Set(x, y int, v float64) {
	f.Data[x*f.NY+y] = v
}

// Fill sets every cell to v.
func (f *ScalarField) Fill(v float64) {
	for i := range f.Data {
		f.Data[i] = v
	}
}

// VectorField is a two-component grid: X and Y hold the horizontal and
// vertical components of a per-cell vector (here, the flow velocity).
type VectorField struct {
	X, Y *ScalarField
}

// NewVectorField allocates a zeroed NX×NY vector field.
func NewVectorField(nx, ny int) *VectorField {
	return &VectorField{X: NewScalarField(nx, ny), Y: NewScalarField(nx, ny)}
}

// Populations holds the nine directional population values per cell:
// f[i, x, y] is at Data[(i*NX+x)*NY+y], so each direction's slice of the grid
// is one contiguous block that streaming can shift as a unit.
type Populations struct {
	NX, NY int
	Data   []float64
}

// NewPopulations allocates a zeroed 9×NX×NY population field.
func NewPopulations(nx, ny int) *Populations {
	return &Populations{NX: nx, NY: ny, Data: make([]float64, 9*nx*ny)}
}

// Idx returns the flat offset of f[i, x, y].
func (p *Populations) Idx(i, x, y int) int {
	return (i*p.NX+x)*p.NY + y
}

// At returns f[i, x, y].
func (p *Populations) At(i, x, y int) float64 {
	return p.Data[(i*p.NX+x)*p.NY+y]
}

// Set stores v into f[i, x, y].
func (p *Populations) Set(i, x, y int, v float64) {
	p.Data[(i*p.NX+x)*p.NY+y] = v
}
