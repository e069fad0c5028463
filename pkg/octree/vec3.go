package octree

// Scalar is the numeric type an octree's geometry is expressed in.
// Defaults to float32 in documentation; float64 is commonly used and is
// what the test suite exercises by default.
type Scalar interface {
	~float32 | ~float64
}

// Vec3 is a minimal three-component vector over a Scalar type. It carries
// only the arithmetic the octree core itself needs and is deliberately
// not a general purpose 3D math library. A consumer with a richer vector
// type of its own is expected to convert at the boundary rather than
// have this package depend on one.
type Vec3[S Scalar] struct {
	X, Y, Z S
}

// Add returns the componentwise sum of v and o.
func (v Vec3[S]) Add(o Vec3[S]) Vec3[S] {
	return Vec3[S]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the componentwise difference of v and o.
func (v Vec3[S]) Sub(o Vec3[S]) Vec3[S] {
	return Vec3[S]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v with every component multiplied by s.
func (v Vec3[S]) Scale(s S) Vec3[S] {
	return Vec3[S]{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v with every component divided by s.
func (v Vec3[S]) Div(s S) Vec3[S] {
	return Vec3[S]{v.X / s, v.Y / s, v.Z / s}
}

// AddScalar adds s to every component of v.
func (v Vec3[S]) AddScalar(s S) Vec3[S] {
	return Vec3[S]{v.X + s, v.Y + s, v.Z + s}
}

// SubScalar subtracts s from every component of v.
func (v Vec3[S]) SubScalar(s S) Vec3[S] {
	return Vec3[S]{v.X - s, v.Y - s, v.Z - s}
}

// Abs returns the componentwise absolute value of v.
func (v Vec3[S]) Abs() Vec3[S] {
	return Vec3[S]{absS(v.X), absS(v.Y), absS(v.Z)}
}

// Max returns the componentwise maximum of v and o.
func (v Vec3[S]) Max(o Vec3[S]) Vec3[S] {
	return Vec3[S]{maxS(v.X, o.X), maxS(v.Y, o.Y), maxS(v.Z, o.Z)}
}

// Min returns the componentwise minimum of v and o.
func (v Vec3[S]) Min(o Vec3[S]) Vec3[S] {
	return Vec3[S]{minS(v.X, o.X), minS(v.Y, o.Y), minS(v.Z, o.Z)}
}

// MaxComponent returns the largest of v's three components.
func (v Vec3[S]) MaxComponent() S {
	return maxS(maxS(v.X, v.Y), v.Z)
}

func absS[S Scalar](s S) S {
	if s < 0 {
		return -s
	}
	return s
}

func maxS[S Scalar](a, b S) S {
	if a > b {
		return a
	}
	return b
}

func minS[S Scalar](a, b S) S {
	if a < b {
		return a
	}
	return b
}
