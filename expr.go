// Package vec3 provides three-component vectors whose arithmetic composes
// lazily. Operators such as Add, Scale and Cross do not compute anything;
// they return small expression nodes that remember their operands. The
// element-wise work happens only when a component, a reduction such as Dot
// or Norm, or Eval is pulled from the tree, so chained arithmetic never
// materialises intermediate vectors.
//
// Vec is the only owning type. Expression nodes hold references to the
// vectors they were built from, so mutating a vector and re-reading an
// expression over it yields the updated result.
package vec3

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of component types a vector can carry.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Expr is a node in a vector expression tree. Both vectors and the nodes
// returned by arithmetic methods satisfy it, so any mix of the two can be
// composed further. Reading a component walks the tree; nothing is cached
// between reads.
type Expr[S Scalar] interface {
	// X returns the first component of the expression.
	X() S
	// Y returns the second component of the expression.
	Y() S
	// Z returns the third component of the expression.
	Z() S

	// Add returns a node for the element-wise sum of e and o.
	Add(o Expr[S]) Sum[S]
	// Sub returns a node for the element-wise difference of e and o.
	Sub(o Expr[S]) Difference[S]
	// Neg returns a node for the element-wise negation of e.
	Neg() Negation[S]
	// Scale returns a node for e with every component multiplied by s.
	Scale(s S) Scaled[S]
	// Div returns a node for e with every component divided by s.
	Div(s S) Divided[S]
	// Cross returns a node for the cross product of e and o.
	Cross(o Expr[S]) CrossProduct[S]

	// Dot computes the dot product of e and o.
	Dot(o Expr[S]) S
	// SquaredNorm computes the dot product of e with itself.
	SquaredNorm() S
	// Norm computes the Euclidean length of e.
	Norm() S

	// Eval reads all three components once and returns them as a vector.
	Eval() Vec[S]

	// String formats the components as "x y z".
	String() string
}

func dot[S Scalar](a, b Expr[S]) S {
	return a.X()*b.X() + a.Y()*b.Y() + a.Z()*b.Z()
}

func sqnorm[S Scalar](e Expr[S]) S {
	return dot[S](e, e)
}

func norm[S Scalar](e Expr[S]) S {
	return S(math.Sqrt(float64(sqnorm[S](e))))
}

func eval[S Scalar](e Expr[S]) Vec[S] {
	x := e.X()
	y := e.Y()
	z := e.Z()
	return Vec[S]{x: x, y: y, z: z}
}

func format[S Scalar](e Expr[S]) string {
	return fmt.Sprintf("%v %v %v", e.X(), e.Y(), e.Z())
}
