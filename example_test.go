package vec3_test

import (
	"fmt"
	"os"

	"github.com/echoflaresat/vec3"
)

func Example() {
	a := vec3.New(1.0, 2, 3)
	b := vec3.New(4.0, 5, 6)

	// Composing arithmetic builds a tree; nothing is computed yet.
	e := a.Add(&b).Scale(2)

	v := e.Eval()
	fmt.Println(&v)

	// The tree references a, so mutating a changes later reads.
	a.SetConstant(0)
	w := e.Eval()
	fmt.Println(&w)

	// Output:
	// 10 14 18
	// 8 10 12
}

func ExampleVec_Cross() {
	x := vec3.New(1.0, 0, 0)
	y := vec3.New(0.0, 1, 0)
	fmt.Println(x.Cross(&y).String())
	// Output: 0 0 1
}

func ExampleVec_Dot() {
	a := vec3.New(1.0, 2, 3)
	b := vec3.New(4.0, 5, 6)
	fmt.Println(a.Dot(&b))
	// Output: 32
}

func ExampleVec_Normalized() {
	v := vec3.New(3.0, 4, 0)
	n := v.Normalized()
	fmt.Println(&n)
	// Output: 0.6 0.8 0
}

func ExampleFprint() {
	v := vec3.New(0.5, -1.25, 3.0)
	vec3.Fprint(os.Stdout, &v)
	// Output: 0.5 -1.25 3
}
