package vec3

// Difference is the deferred element-wise subtraction of two expressions.
type Difference[S Scalar] struct {
	l, r Expr[S]
}

// X returns l.X() - r.X().
func (e Difference[S]) X() S { return e.l.X() - e.r.X() }

// Y returns l.Y() - r.Y().
func (e Difference[S]) Y() S { return e.l.Y() - e.r.Y() }

// Z returns l.Z() - r.Z().
func (e Difference[S]) Z() S { return e.l.Z() - e.r.Z() }

// Add returns a node for e + o.
func (e Difference[S]) Add(o Expr[S]) Sum[S] {
	return Sum[S]{l: e, r: o}
}

// Sub returns a node for e - o.
func (e Difference[S]) Sub(o Expr[S]) Difference[S] {
	return Difference[S]{l: e, r: o}
}

// Neg returns a node for -e.
func (e Difference[S]) Neg() Negation[S] {
	return Negation[S]{e: e}
}

// Scale returns a node for e * s.
func (e Difference[S]) Scale(s S) Scaled[S] {
	return Scaled[S]{e: e, s: s}
}

// Div returns a node for e / s.
func (e Difference[S]) Div(s S) Divided[S] {
	return Divided[S]{e: e, s: s}
}

// Cross returns a node for e x o.
func (e Difference[S]) Cross(o Expr[S]) CrossProduct[S] {
	return CrossProduct[S]{a: e, b: o}
}

// Dot computes the dot product of e and o.
func (e Difference[S]) Dot(o Expr[S]) S { return dot[S](e, o) }

// SquaredNorm computes the dot product of e with itself.
func (e Difference[S]) SquaredNorm() S { return sqnorm[S](e) }

// Norm computes the Euclidean length of e.
func (e Difference[S]) Norm() S { return norm[S](e) }

// Eval reads the components once and returns them as a vector.
func (e Difference[S]) Eval() Vec[S] { return eval[S](e) }

// String formats the components as "x y z".
func (e Difference[S]) String() string { return format[S](e) }
