package vec3

// Negation is the deferred element-wise negation of an expression.
type Negation[S Scalar] struct {
	e Expr[S]
}

// X returns -e.X().
func (n Negation[S]) X() S { return -n.e.X() }

// Y returns -e.Y().
func (n Negation[S]) Y() S { return -n.e.Y() }

// Z returns -e.Z().
func (n Negation[S]) Z() S { return -n.e.Z() }

// Add returns a node for n + o.
func (n Negation[S]) Add(o Expr[S]) Sum[S] {
	return Sum[S]{l: n, r: o}
}

// Sub returns a node for n - o.
func (n Negation[S]) Sub(o Expr[S]) Difference[S] {
	return Difference[S]{l: n, r: o}
}

// Neg returns a node for -n.
func (n Negation[S]) Neg() Negation[S] {
	return Negation[S]{e: n}
}

// Scale returns a node for n * s.
func (n Negation[S]) Scale(s S) Scaled[S] {
	return Scaled[S]{e: n, s: s}
}

// Div returns a node for n / s.
func (n Negation[S]) Div(s S) Divided[S] {
	return Divided[S]{e: n, s: s}
}

// Cross returns a node for n x o.
func (n Negation[S]) Cross(o Expr[S]) CrossProduct[S] {
	return CrossProduct[S]{a: n, b: o}
}

// Dot computes the dot product of n and o.
func (n Negation[S]) Dot(o Expr[S]) S { return dot[S](n, o) }

// SquaredNorm computes the dot product of n with itself.
func (n Negation[S]) SquaredNorm() S { return sqnorm[S](n) }

// Norm computes the Euclidean length of n.
func (n Negation[S]) Norm() S { return norm[S](n) }

// Eval reads the components once and returns them as a vector.
func (n Negation[S]) Eval() Vec[S] { return eval[S](n) }

// String formats the components as "x y z".
func (n Negation[S]) String() string { return format[S](n) }
