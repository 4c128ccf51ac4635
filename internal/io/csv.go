package io

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/gonum/matrix/mat64"
	"golang.org/x/sync/errgroup"
)

// Mat64toCSV saves Mat64 as a csv file
func Mat64toCSV(path string, matrix *mat64.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("[Mat64toCSV] failed to create file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	rows, _ := matrix.Dims()

	stride := runtime.NumCPU()
	parsed := make([]string, stride)

	// Format a batch of rows in parallel, then flush them in order.
	for row := 0; row < rows; row += stride {
		jobMark := stride
		if row+stride >= rows {
			jobMark = rows - row
		}

		var g errgroup.Group
		for offset := 0; offset < jobMark; offset++ {
			offset := offset
			g.Go(func() error {
				parsed[offset] = parseLine(matrix, row+offset)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for i := 0; i < jobMark; i++ {
			if _, err := fmt.Fprintf(w, "%s\n", parsed[i]); err != nil {
				return fmt.Errorf("[Mat64toCSV] failed to write row %d: %w", row+i, err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("[Mat64toCSV] failed to flush: %w", err)
	}

	return f.Close()
}

func parseLine(matrix *mat64.Dense, row int) string {
	_, cols := matrix.Dims()

	nums := make([]string, cols)
	for i := 0; i < cols; i++ {
		nums[i] = strconv.FormatFloat(matrix.At(row, i), 'g', -1, 64)
	}

	return strings.Join(nums, ", ")
}
