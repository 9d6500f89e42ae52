package encode_test

import (
	"fmt"

	"github.com/katalvlaran/probspace/encode"
)

// Scenario:
//
//	Map 3-vectors to ordinal-pattern symbols in [0, 3!). The symbol is
//	the Lehmer code of the argsort permutation, so the ascending vector
//	is symbol 0 and the descending one is symbol m!−1.
//
// ExampleOrdinalPattern_Encode demonstrates the pattern → symbol → pattern
// round trip with stable tie-breaking.
func ExampleOrdinalPattern_Encode() {
	enc, err := encode.NewOrdinalPattern(3, encode.TieBreakStable, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, v := range [][]float64{{1, 2, 3}, {2, 3, 1}, {3, 2, 1}} {
		sym, err := enc.Encode(v)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		perm, _ := enc.Decode(sym)
		fmt.Printf("%v -> symbol %d (argsort %v)\n", v, sym, perm)
	}
	// Output:
	// [1 2 3] -> symbol 0 (argsort [0 1 2])
	// [2 3 1] -> symbol 4 (argsort [2 0 1])
	// [3 2 1] -> symbol 5 (argsort [2 1 0])
}

// Scenario:
//
//	Histogram 2-D points into a fitted rectangular grid. Points feed in
//	as (x, y); each lands in one cell symbol, with points outside the
//	fitted ranges reported as OutOfBounds.
//
// ExampleRectBinning demonstrates fitting a 2×2 grid to data and encoding
// a point into its cell.
func ExampleRectBinning() {
	points := [][]float64{{0, 0}, {1, 3}, {4, 1}, {5, 4}}
	bins, err := encode.FitRectBinning(points, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sym, _ := bins.Encode([]float64{4.5, 0.5})
	coord, _ := bins.Coord(sym)
	fmt.Printf("cell symbol %d, grid coordinate %v\n", sym, coord)
	fmt.Println("outside:", encode.OutOfBounds == mustEncode(bins, []float64{99, 99}))
	// Output:
	// cell symbol 2, grid coordinate [1 0]
	// outside: true
}

func mustEncode(b *encode.RectBinning, p []float64) int {
	sym, _ := b.Encode(p)

	return sym
}
