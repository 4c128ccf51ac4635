package io

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
	"github.com/kshedden/gonpy"
)

// Mat64toNpy writes mat64 matrix to Python numpy npy binary file
func Mat64toNpy(path string, matrix *mat64.Dense) error {
	rows, cols := matrix.Dims()

	// RawMatrix data is only contiguous when stride == cols
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		data = append(data, matrix.RawRowView(i)...)
	}

	w, err := gonpy.NewFileWriter(path)
	if err != nil {
		return fmt.Errorf("[Mat64toNpy] failed to open file: %w", err)
	}
	w.Shape = []int{rows, cols}
	w.Version = 2
	if err := w.WriteFloat64(data); err != nil {
		return fmt.Errorf("[Mat64toNpy] failed to write file: %w", err)
	}

	return nil
}

// NpytoMat64 reads Python numpy npy binary file as mat64 matrix
func NpytoMat64(path string) (*mat64.Dense, error) {
	r, err := gonpy.NewFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("[NpytoMat64] failed to open file: %w", err)
	}
	if len(r.Shape) != 2 {
		return nil, fmt.Errorf("[NpytoMat64] expected 2 dimensions, got %d", len(r.Shape))
	}
	if r.ColumnMajor {
		return nil, fmt.Errorf("[NpytoMat64] column-major arrays are not supported: %s", path)
	}

	data, err := r.GetFloat64()
	if err != nil {
		return nil, fmt.Errorf("[NpytoMat64] failed to read file: %w", err)
	}

	return mat64.NewDense(r.Shape[0], r.Shape[1], data), nil
}
