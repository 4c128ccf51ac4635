package io

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gonum/matrix/mat64"
)

// JSONtoRows reads a JSON array of number arrays. Rows may differ in length.
func JSONtoRows(path string) ([][]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("[JSONtoRows] failed to read file: %w", err)
	}

	var rows [][]float64
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("[JSONtoRows] failed to parse %s: %w", path, err)
	}

	return rows, nil
}

// JSONtoMat64 reads a rectangular JSON matrix as mat64 matrix
func JSONtoMat64(path string) (*mat64.Dense, error) {
	rows, err := JSONtoRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("[JSONtoMat64] empty matrix in %s", path)
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("[JSONtoMat64] row %d has %d columns, want %d", i, len(row), cols)
		}
		data = append(data, row...)
	}

	return mat64.NewDense(len(rows), cols, data), nil
}

// Mat64toJSON writes mat64 matrix as a JSON array of rows, replacing any existing file
func Mat64toJSON(path string, matrix *mat64.Dense) error {
	rows, _ := matrix.Dims()

	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = matrix.RawRowView(i)
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("[Mat64toJSON] failed to encode: %w", err)
	}

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("[Mat64toJSON] failed to write file: %w", err)
	}

	return nil
}
