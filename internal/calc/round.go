package calc

import (
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"
)

// RoundTo rounds v to the given number of decimal places.
// Ties on the scaled value go away from zero (math.Round).
func RoundTo(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}

// Round rounds every element of inputMat into outputMat
func Round(inputMat *mat64.Dense, outputMat *mat64.Dense, places int) error {
	inputRows, inputCols := inputMat.Dims()
	outputRows, outputCols := outputMat.Dims()

	if inputRows != outputRows || inputCols != outputCols {
		return fmt.Errorf("[Round] input dims: %d by %d when output dims: %d by %d", inputRows, inputCols, outputRows, outputCols)
	}

	outputMat.Apply(func(_, _ int, v float64) float64 {
		return RoundTo(v, places)
	}, inputMat)

	return nil
}
