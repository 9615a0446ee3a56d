package polygon

import "github.com/osuushi/polyops/geometry"

// Integrals of the products of (u, v, w, 1) over the unit right triangle
// (0,0), (1,0), (0,1) in the w = 0 plane: ∫u² = 1/12, ∫uv = 1/24, ∫u = 1/6,
// ∫1 = 1/2, and everything involving w vanishes.
var triangleMomentWeights = geometry.Matrix4dFromRows(
	2.0/24, 1.0/24, 0, 4.0/24,
	1.0/24, 2.0/24, 0, 4.0/24,
	0, 0, 0, 0,
	4.0/24, 4.0/24, 0, 12.0/24,
)

// AccumulateSecondMomentProducts integrates the products of (x, y, z, 1),
// measured from origin, over the ring's area and adds them into moments:
//
//	| ∫xx ∫xy ∫xz ∫x |
//	| ∫xy ∫yy ∫yz ∫y |
//	| ∫xz ∫yz ∫zz ∫z |
//	| ∫x  ∫y  ∫z  ∫1 |
//
// Each fan triangle from vertex 0 is the image of the unit triangle under the
// placement [U V N P] (two edges from vertex 0, the ring's unit normal and
// vertex 0 itself). Its contribution is scaled by the signed Jacobian N·(U×V),
// so fan triangles that run against the ring's orientation subtract. Rings with
// no usable normal contribute nothing.
func (w *Workspace) AccumulateSecondMomentProducts(c Collection, origin Point, moments *geometry.Matrix4d) {
	n := c.Length()
	if n < 3 {
		return
	}
	unitNormal, ok := geometry.TryNormalize(w.AreaNormal(c))
	if !ok {
		return
	}
	p0, _ := c.PointAt(0)
	offset := p0.Minus(origin)
	for i := 2; i < n; i++ {
		u, _ := c.VectorBetween(0, i-1)
		v, _ := c.VectorBetween(0, i)
		detJ := unitNormal.Dot(u.Cross(v))
		if detJ == 0 {
			continue
		}
		w.placement = geometry.Matrix4dFromColumns(u, v, unitNormal, offset)
		w.weighted = w.placement.Multiply(&triangleMomentWeights)
		w.local = w.weighted.MultiplyTranspose(&w.placement)
		moments.AddScaled(&w.local, detJ)
	}
}
