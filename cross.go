package vec3

// CrossProduct is the deferred cross product of two expressions. Each
// component read pulls the four operand components it needs, so reading
// all of X, Y and Z revisits the operands rather than caching them.
type CrossProduct[S Scalar] struct {
	a, b Expr[S]
}

// X returns a.Y()*b.Z() - b.Y()*a.Z().
func (c CrossProduct[S]) X() S {
	return c.a.Y()*c.b.Z() - c.b.Y()*c.a.Z()
}

// Y returns a.Z()*b.X() - b.Z()*a.X().
func (c CrossProduct[S]) Y() S {
	return c.a.Z()*c.b.X() - c.b.Z()*c.a.X()
}

// Z returns a.X()*b.Y() - b.X()*a.Y().
func (c CrossProduct[S]) Z() S {
	return c.a.X()*c.b.Y() - c.b.X()*c.a.Y()
}

// Add returns a node for c + o.
func (c CrossProduct[S]) Add(o Expr[S]) Sum[S] {
	return Sum[S]{l: c, r: o}
}

// Sub returns a node for c - o.
func (c CrossProduct[S]) Sub(o Expr[S]) Difference[S] {
	return Difference[S]{l: c, r: o}
}

// Neg returns a node for -c.
func (c CrossProduct[S]) Neg() Negation[S] {
	return Negation[S]{e: c}
}

// Scale returns a node for c * s.
func (c CrossProduct[S]) Scale(s S) Scaled[S] {
	return Scaled[S]{e: c, s: s}
}

// Div returns a node for c / s.
func (c CrossProduct[S]) Div(s S) Divided[S] {
	return Divided[S]{e: c, s: s}
}

// Cross returns a node for c x o.
func (c CrossProduct[S]) Cross(o Expr[S]) CrossProduct[S] {
	return CrossProduct[S]{a: c, b: o}
}

// Dot computes the dot product of c and o.
func (c CrossProduct[S]) Dot(o Expr[S]) S { return dot[S](c, o) }

// SquaredNorm computes the dot product of c with itself.
func (c CrossProduct[S]) SquaredNorm() S { return sqnorm[S](c) }

// Norm computes the Euclidean length of c.
func (c CrossProduct[S]) Norm() S { return norm[S](c) }

// Eval reads the components once and returns them as a vector.
func (c CrossProduct[S]) Eval() Vec[S] { return eval[S](c) }

// String formats the components as "x y z".
func (c CrossProduct[S]) String() string { return format[S](c) }
