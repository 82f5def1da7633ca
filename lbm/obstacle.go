package lbm

import "fmt"

// Shape names accepted in ObstacleConfig.
const (
	ShapeEllipse  = "ellipse"
	ShapeCylinder = "cylinder"
	ShapeNone     = "none"
)

// Shape tests whether a lattice cell lies inside a solid obstacle.
type Shape interface {
	Contains(x, y int) bool
}

// ShapeFunc adapts a plain predicate into a Shape.
type ShapeFunc func(x, y int) bool

func (f ShapeFunc) Contains(x, y int) bool { return f(x, y) }

// Cylinder is a circular obstacle: (x-cx)² + (cy-y)² < R².
type Cylinder struct {
	CX, CY, R float64
}

func (c Cylinder) Contains(x, y int) bool {
	dx := float64(x) - c.CX
	dy := c.CY - float64(y)
	return dx*dx+dy*dy < c.R*c.R
}

// Ellipse is the reference elongated obstacle:
// (x-cx)²/8 + (cy-y)²/3 < R·11/2.
type Ellipse struct {
	CX, CY, R float64
}

func (e Ellipse) Contains(x, y int) bool {
	dx := float64(x) - e.CX
	dy := e.CY - float64(y)
	return dx*dx/8+dy*dy/3 < e.R*11/2
}

// shape resolves the configured obstacle geometry.
func (c Config) shape() (Shape, error) {
	if c.CustomShape != nil {
		return c.CustomShape, nil
	}
	o := c.Obstacle
	switch o.Shape {
	case ShapeEllipse:
		return Ellipse{CX: o.CenterX, CY: o.CenterY, R: o.Radius}, nil
	case ShapeCylinder:
		return Cylinder{CX: o.CenterX, CY: o.CenterY, R: o.Radius}, nil
	case ShapeNone, "":
		return ShapeFunc(func(x, y int) bool { return false }), nil
	default:
		return nil, fmt.Errorf("unknown obstacle shape %q", o.Shape)
	}
}

// Mask is the precomputed solid-cell field: Solid[x*NY+y] marks cell (x, y)
// as obstacle. Built once at initialization, immutable afterwards.
type Mask struct {
	NX, NY int
	Solid  []bool
}

// BuildMask evaluates the shape predicate at every grid coordinate.
func BuildMask(s Shape, nx, ny int) (*Mask, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("mask extents must be positive, got %dx%d", nx, ny)
	}
	m := &Mask{NX: nx, NY: ny, Solid: make([]bool, nx*ny)}
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			m.Solid[x*ny+y] = s.Contains(x, y)
		}
	}
	return m, nil
}

// At reports whether cell (x, y) is solid.
func (m *Mask) At(x, y int) bool {
	return m.Solid[x*m.NY+y]
}
