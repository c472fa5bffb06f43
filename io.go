package vec3

import (
	"fmt"
	"io"
)

// Fprint writes the components of e to w as "x y z" with no trailing
// newline. Any expression can be written, not just vectors.
func Fprint[S Scalar](w io.Writer, e Expr[S]) error {
	_, err := fmt.Fprintf(w, "%v %v %v", e.X(), e.Y(), e.Z())
	return err
}

// Fscan reads three whitespace-separated scalars from r into v. On error
// v holds the components parsed so far; the rest keep their previous
// values.
func Fscan[S Scalar](r io.Reader, v *Vec[S]) error {
	_, err := fmt.Fscan(r, &v.x, &v.y, &v.z)
	return err
}
