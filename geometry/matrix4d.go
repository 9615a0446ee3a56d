package geometry

// Matrix4d is a 4x4 matrix in row-major order. It is used as an accumulator
// for products of homogeneous coordinates (x, y, z, 1), such as second moments
// of area.
type Matrix4d [16]float64

// Matrix4dFromRows builds a matrix from its 16 entries, row by row.
func Matrix4dFromRows(values ...float64) Matrix4d {
	var m Matrix4d
	copy(m[:], values)
	return m
}

// Identity4d returns the identity matrix.
func Identity4d() Matrix4d {
	return Matrix4d{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4dFromColumns builds the placement matrix whose first three columns
// are u, v, w and whose last column is the homogeneous point (o, 1).
func Matrix4dFromColumns(u, v, w, o Vector) Matrix4d {
	return Matrix4d{
		u.X, v.X, w.X, o.X,
		u.Y, v.Y, w.Y, o.Y,
		u.Z, v.Z, w.Z, o.Z,
		0, 0, 0, 1,
	}
}

func (m *Matrix4d) At(row, col int) float64 {
	return m[4*row+col]
}

func (m *Matrix4d) Set(row, col int, value float64) {
	m[4*row+col] = value
}

// Multiply returns m * other.
func (m *Matrix4d) Multiply(other *Matrix4d) Matrix4d {
	var result Matrix4d
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[4*row+k] * other[4*k+col]
			}
			result[4*row+col] = sum
		}
	}
	return result
}

// MultiplyTranspose returns m * otherᵀ.
func (m *Matrix4d) MultiplyTranspose(other *Matrix4d) Matrix4d {
	var result Matrix4d
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[4*row+k] * other[4*col+k]
			}
			result[4*row+col] = sum
		}
	}
	return result
}

// AddScaled adds scale * other into m.
func (m *Matrix4d) AddScaled(other *Matrix4d, scale float64) {
	for i := range m {
		m[i] += scale * other[i]
	}
}

func (m *Matrix4d) SetZero() {
	*m = Matrix4d{}
}

// MaxAbsDiff is the largest absolute difference between corresponding entries.
func (m *Matrix4d) MaxAbsDiff(other *Matrix4d) float64 {
	var result float64
	for i := range m {
		d := m[i] - other[i]
		if d < 0 {
			d = -d
		}
		if d > result {
			result = d
		}
	}
	return result
}
