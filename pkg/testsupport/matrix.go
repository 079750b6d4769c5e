package testsupport

import (
	"fmt"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// LoadMatrix loads a dense matrix from a JSON fixture holding an array of
// rows. It fails the test when the fixture is empty or the rows are ragged.
func LoadMatrix(t *testing.T, path string) *mat.Dense {
	t.Helper()

	var rows [][]float64
	LoadFixtureJSON(t, path, &rows)

	if len(rows) == 0 || len(rows[0]) == 0 {
		t.Fatalf("matrix fixture %s holds no values", path)
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			t.Fatalf("matrix fixture %s row %d has %d values, want %d", path, i, len(row), cols)
		}
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), cols, data)
}

// FormatMatrix renders a matrix as plain text with one space separated row
// per line. The %g rendering is stable across runs, which makes the output
// suitable for golden file comparisons.
func FormatMatrix(m mat.Matrix) string {
	r, c := m.Dims()

	var sb strings.Builder
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.At(i, j))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
