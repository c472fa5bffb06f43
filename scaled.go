package vec3

// Scaled is the deferred multiplication of an expression by a scalar.
// The scalar is captured by value when the node is built.
type Scaled[S Scalar] struct {
	e Expr[S]
	s S
}

// X returns e.X() * s.
func (m Scaled[S]) X() S { return m.e.X() * m.s }

// Y returns e.Y() * s.
func (m Scaled[S]) Y() S { return m.e.Y() * m.s }

// Z returns e.Z() * s.
func (m Scaled[S]) Z() S { return m.e.Z() * m.s }

// Add returns a node for m + o.
func (m Scaled[S]) Add(o Expr[S]) Sum[S] {
	return Sum[S]{l: m, r: o}
}

// Sub returns a node for m - o.
func (m Scaled[S]) Sub(o Expr[S]) Difference[S] {
	return Difference[S]{l: m, r: o}
}

// Neg returns a node for -m.
func (m Scaled[S]) Neg() Negation[S] {
	return Negation[S]{e: m}
}

// Scale returns a node for m * s.
func (m Scaled[S]) Scale(s S) Scaled[S] {
	return Scaled[S]{e: m, s: s}
}

// Div returns a node for m / s.
func (m Scaled[S]) Div(s S) Divided[S] {
	return Divided[S]{e: m, s: s}
}

// Cross returns a node for m x o.
func (m Scaled[S]) Cross(o Expr[S]) CrossProduct[S] {
	return CrossProduct[S]{a: m, b: o}
}

// Dot computes the dot product of m and o.
func (m Scaled[S]) Dot(o Expr[S]) S { return dot[S](m, o) }

// SquaredNorm computes the dot product of m with itself.
func (m Scaled[S]) SquaredNorm() S { return sqnorm[S](m) }

// Norm computes the Euclidean length of m.
func (m Scaled[S]) Norm() S { return norm[S](m) }

// Eval reads the components once and returns them as a vector.
func (m Scaled[S]) Eval() Vec[S] { return eval[S](m) }

// String formats the components as "x y z".
func (m Scaled[S]) String() string { return format[S](m) }
