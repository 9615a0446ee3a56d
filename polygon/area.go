package polygon

import "math"

// AreaNormal sums the fan triangles from vertex 0. The result points along the
// right hand normal of the traversal direction, so reversing the ring negates
// it. For a self cancelling ring (a bowtie) it may be near zero.
func (w *Workspace) AreaNormal(c Collection) Vector {
	n := c.Length()
	if n == 3 {
		cross, _ := c.CrossProductOfTargets(0, 1, 2)
		return cross.Mul(0.5)
	}
	// A closing duplicate of vertex 0 adds a zero cross product.
	w.normal = Vector{}
	for i := 2; i < n; i++ {
		c.AccumulateCrossProductOfTargets(0, i-1, i, &w.normal)
	}
	return w.normal.Mul(0.5)
}

// AreaXY is the signed area of the ring projected to xy: positive for
// counterclockwise rings.
func AreaXY(c Collection) float64 {
	n := c.Length()
	if n < 3 {
		return 0
	}
	origin, _ := c.PointAt(0)
	u, _ := c.VectorFromOrigin(origin, 1)
	var sum float64
	for i := 2; i < n; i++ {
		v, _ := c.VectorFromOrigin(origin, i)
		sum += u.X*v.Y - u.Y*v.X
		u = v
	}
	return 0.5 * sum
}

// SumTriangleAreasXY is the sum of the unsigned xy areas of the fan triangles.
// It equals |AreaXY| only for rings whose fan has no reversed triangles.
func SumTriangleAreasXY(c Collection) float64 {
	n := c.Length()
	if n < 3 {
		return 0
	}
	origin, _ := c.PointAt(0)
	u, _ := c.VectorFromOrigin(origin, 1)
	var sum float64
	for i := 2; i < n; i++ {
		v, _ := c.VectorFromOrigin(origin, i)
		sum += math.Abs(u.X*v.Y - u.Y*v.X)
		u = v
	}
	return 0.5 * sum
}
