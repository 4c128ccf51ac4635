package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gonum/matrix/mat64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestJSONtoRows(t *testing.T) {
	path := writeFile(t, "m.json", `[[0, 1.5, 2], [3], []]`)

	rows, err := JSONtoRows(path)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1.5, 2}, {3}, {}}, rows)
}

func TestJSONtoRowsErrors(t *testing.T) {
	_, err := JSONtoRows(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	for _, content := range []string{``, `{"a": 1}`, `[[1, "x"]]`, `[[1, 2]`} {
		_, err := JSONtoRows(writeFile(t, "bad.json", content))
		assert.Error(t, err, "content %q", content)
	}
}

func TestJSONtoMat64(t *testing.T) {
	m, err := JSONtoMat64(writeFile(t, "m.json", `[[1, 2, 3], [4, 5, 6]]`))
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, m.At(1, 2))
}

func TestJSONtoMat64Ragged(t *testing.T) {
	_, err := JSONtoMat64(writeFile(t, "m.json", `[[1, 2], [3]]`))
	require.Error(t, err)

	_, err = JSONtoMat64(writeFile(t, "m.json", `[]`))
	require.Error(t, err)
}

func TestMat64toJSON(t *testing.T) {
	path := writeFile(t, "out.json", `this file is longer than the matrix written over it`)
	m := mat64.NewDense(2, 2, []float64{1, 0.5, 301, 0.13})

	require.NoError(t, Mat64toJSON(path, m))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[[1,0.5],[301,0.13]]`, string(raw))
}

func TestMat64toJSONBadPath(t *testing.T) {
	m := mat64.NewDense(1, 1, nil)
	err := Mat64toJSON(filepath.Join(t.TempDir(), "no", "such", "dir.json"), m)
	require.Error(t, err)
}
