package vec3

// Divided is the deferred division of an expression by a scalar. The
// scalar is captured by value and the division happens on every component
// read; a zero divisor surfaces as infinities or NaN for float scalars
// and as a run-time panic for integer ones.
type Divided[S Scalar] struct {
	e Expr[S]
	s S
}

// X returns e.X() / s.
func (d Divided[S]) X() S { return d.e.X() / d.s }

// Y returns e.Y() / s.
func (d Divided[S]) Y() S { return d.e.Y() / d.s }

// Z returns e.Z() / s.
func (d Divided[S]) Z() S { return d.e.Z() / d.s }

// Add returns a node for d + o.
func (d Divided[S]) Add(o Expr[S]) Sum[S] {
	return Sum[S]{l: d, r: o}
}

// Sub returns a node for d - o.
func (d Divided[S]) Sub(o Expr[S]) Difference[S] {
	return Difference[S]{l: d, r: o}
}

// Neg returns a node for -d.
func (d Divided[S]) Neg() Negation[S] {
	return Negation[S]{e: d}
}

// Scale returns a node for d * s.
func (d Divided[S]) Scale(s S) Scaled[S] {
	return Scaled[S]{e: d, s: s}
}

// Div returns a node for d / s.
func (d Divided[S]) Div(s S) Divided[S] {
	return Divided[S]{e: d, s: s}
}

// Cross returns a node for d x o.
func (d Divided[S]) Cross(o Expr[S]) CrossProduct[S] {
	return CrossProduct[S]{a: d, b: o}
}

// Dot computes the dot product of d and o.
func (d Divided[S]) Dot(o Expr[S]) S { return dot[S](d, o) }

// SquaredNorm computes the dot product of d with itself.
func (d Divided[S]) SquaredNorm() S { return sqnorm[S](d) }

// Norm computes the Euclidean length of d.
func (d Divided[S]) Norm() S { return norm[S](d) }

// Eval reads the components once and returns them as a vector.
func (d Divided[S]) Eval() Vec[S] { return eval[S](d) }

// String formats the components as "x y z".
func (d Divided[S]) String() string { return format[S](d) }
