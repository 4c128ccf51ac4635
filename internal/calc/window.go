package calc

import (
	"errors"
	"fmt"

	"github.com/gonum/matrix/mat64"
)

// ErrShape is returned when the source matrix does not cover the window
var ErrShape = errors.New("matrix smaller than window")

// Window is a square block of a matrix starting at (Offset, Offset)
type Window struct {
	Offset int
	Size   int
}

// End returns the exclusive upper row/column index of the window
func (w Window) End() int {
	return w.Offset + w.Size
}

// Extract copies the window out of rows into a new Size by Size matrix
// indexed from 0. Rows outside the window are never read.
func Extract(rows [][]float64, w Window) (*mat64.Dense, error) {
	if w.Offset < 0 || w.Size <= 0 {
		return nil, fmt.Errorf("[Extract] invalid window: offset %d, size %d", w.Offset, w.Size)
	}

	end := w.End()
	if len(rows) < end {
		return nil, fmt.Errorf("[Extract] %w: %d rows, need %d", ErrShape, len(rows), end)
	}

	outputMat := mat64.NewDense(w.Size, w.Size, nil)
	for i := 0; i < w.Size; i++ {
		row := rows[w.Offset+i]
		if len(row) < end {
			return nil, fmt.Errorf("[Extract] %w: row %d has %d columns, need %d", ErrShape, w.Offset+i, len(row), end)
		}

		copy(outputMat.RawRowView(i), row[w.Offset:end])
	}

	return outputMat, nil
}
