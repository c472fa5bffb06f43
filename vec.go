package vec3

// Vec is an owning three-component vector. It is the only type in the
// package that stores components; everything else references them.
//
// All methods are declared on the pointer receiver, so expression nodes
// built from a Vec alias it rather than copying it. Mutate the vector and
// every expression over it sees the new components on the next read.
type Vec[S Scalar] struct {
	x, y, z S
}

// New returns the vector (x, y, z).
func New[S Scalar](x, y, z S) Vec[S] {
	return Vec[S]{x: x, y: y, z: z}
}

// Zero returns the vector (0, 0, 0).
func Zero[S Scalar]() Vec[S] {
	return Vec[S]{}
}

// Uniform returns the vector (s, s, s).
func Uniform[S Scalar](s S) Vec[S] {
	return Vec[S]{x: s, y: s, z: s}
}

// X returns the first component.
func (v *Vec[S]) X() S { return v.x }

// Y returns the second component.
func (v *Vec[S]) Y() S { return v.y }

// Z returns the third component.
func (v *Vec[S]) Z() S { return v.z }

// SetX replaces the first component.
func (v *Vec[S]) SetX(s S) { v.x = s }

// SetY replaces the second component.
func (v *Vec[S]) SetY(s S) { v.y = s }

// SetZ replaces the third component.
func (v *Vec[S]) SetZ(s S) { v.z = s }

// Set replaces all three components.
func (v *Vec[S]) Set(x, y, z S) {
	v.x, v.y, v.z = x, y, z
}

// SetConstant sets every component to s and returns v for chaining.
func (v *Vec[S]) SetConstant(s S) *Vec[S] {
	v.x, v.y, v.z = s, s, s
	return v
}

// Equal reports whether v and o hold the same components.
func (v *Vec[S]) Equal(o *Vec[S]) bool {
	return v.x == o.x && v.y == o.y && v.z == o.z
}

// AddAssign adds e to v component by component, x first, and returns v.
// If e references v the components it reads reflect the ones already
// written.
func (v *Vec[S]) AddAssign(e Expr[S]) *Vec[S] {
	v.x += e.X()
	v.y += e.Y()
	v.z += e.Z()
	return v
}

// SubAssign subtracts e from v component by component, x first, and
// returns v.
func (v *Vec[S]) SubAssign(e Expr[S]) *Vec[S] {
	v.x -= e.X()
	v.y -= e.Y()
	v.z -= e.Z()
	return v
}

// MulAssign multiplies every component of v by s and returns v.
func (v *Vec[S]) MulAssign(s S) *Vec[S] {
	v.x *= s
	v.y *= s
	v.z *= s
	return v
}

// DivAssign divides every component of v by s and returns v. A zero s
// yields infinities for float scalars and a run-time panic for integer
// ones, the same as dividing the components directly.
func (v *Vec[S]) DivAssign(s S) *Vec[S] {
	v.x /= s
	v.y /= s
	v.z /= s
	return v
}

// Normalized returns a unit-length copy of v. The zero vector has no
// direction; normalizing it divides by zero with the usual consequences
// for the scalar type.
func (v *Vec[S]) Normalized() Vec[S] {
	n := norm[S](v)
	return Vec[S]{x: v.x / n, y: v.y / n, z: v.z / n}
}

// Add returns a node for v + o.
func (v *Vec[S]) Add(o Expr[S]) Sum[S] {
	return Sum[S]{l: v, r: o}
}

// Sub returns a node for v - o.
func (v *Vec[S]) Sub(o Expr[S]) Difference[S] {
	return Difference[S]{l: v, r: o}
}

// Neg returns a node for -v.
func (v *Vec[S]) Neg() Negation[S] {
	return Negation[S]{e: v}
}

// Scale returns a node for v * s.
func (v *Vec[S]) Scale(s S) Scaled[S] {
	return Scaled[S]{e: v, s: s}
}

// Div returns a node for v / s.
func (v *Vec[S]) Div(s S) Divided[S] {
	return Divided[S]{e: v, s: s}
}

// Cross returns a node for v x o.
func (v *Vec[S]) Cross(o Expr[S]) CrossProduct[S] {
	return CrossProduct[S]{a: v, b: o}
}

// Dot computes the dot product of v and o.
func (v *Vec[S]) Dot(o Expr[S]) S {
	return dot[S](v, o)
}

// SquaredNorm computes the dot product of v with itself.
func (v *Vec[S]) SquaredNorm() S {
	return sqnorm[S](v)
}

// Norm computes the Euclidean length of v.
func (v *Vec[S]) Norm() S {
	return norm[S](v)
}

// Eval returns a copy of v.
func (v *Vec[S]) Eval() Vec[S] {
	return *v
}

// String formats the components as "x y z".
func (v *Vec[S]) String() string {
	return format[S](v)
}
