package smooth_test

import (
	"fmt"

	"github.com/cwbudde/algo-curve/parse"
	"github.com/cwbudde/algo-curve/smooth"
)

func ExampleSeries() {
	s, err := parse.Series("0 0\n1 1\n2 4\n3 9")
	if err != nil {
		panic(err)
	}

	c, err := smooth.Series(s, "cubic", smooth.WithNumPoints(7))
	if err != nil {
		panic(err)
	}

	fmt.Printf("method=%s samples=%d span=[%g, %g]\n", c.Method, c.Len(), c.X[0], c.X[c.Len()-1])

	// Output:
	// method=cubic samples=7 span=[0, 3]
}

func ExampleSeries_fallback() {
	s, err := parse.Series("0 0\n1 2")
	if err != nil {
		panic(err)
	}

	// Akima needs more points than this; the smoother substitutes
	// linear interpolation and reports it.
	c, err := smooth.Series(s, "akima", smooth.WithNumPoints(3))
	if err != nil {
		panic(err)
	}

	fmt.Printf("method=%s fellBack=%t y=%v\n", c.Method, c.FellBack, c.Y)

	// Output:
	// method=linear fellBack=true y=[0 1 2]
}
