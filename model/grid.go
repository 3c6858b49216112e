package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// CellState is the binary state of a single cell
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

const (
	cellAliveText = "alive"
	cellDeadText  = "dead"
)

// String returns "alive" or "dead"
func (c CellState) String() string {
	if c == Alive {
		return cellAliveText
	}
	return cellDeadText
}

// MarshalText implements encoding.TextMarshaler
func (c CellState) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *CellState) UnmarshalText(text []byte) error {
	switch string(text) {
	case cellAliveText:
		*c = Alive
	case cellDeadText:
		*c = Dead
	default:
		return errors.Errorf("[CellState.UnmarshalText] unknown cell state %q", text)
	}
	return nil
}

// Coords addresses a cell by zero-based row and column
type Coords struct {
	Row int
	Col int
}

// Matrix is a grid of cell states indexed [row][col].
//
// A Matrix returned by BuildMatrix is owned by the caller and should be
// treated as immutable; every transition allocates a new one.
type Matrix [][]CellState

// NewMatrix allocates an all-dead rows x cols matrix
func NewMatrix(rows, cols int) Matrix {
	rows, cols = max(rows, 0), max(cols, 0)
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]CellState, cols)
	}
	return m
}

// Rows returns the number of rows
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the length of the first row, or 0 for an empty matrix
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// InBounds reports whether (row, col) addresses a cell of m
func (m Matrix) InBounds(row, col int) bool {
	return row >= 0 && row < len(m) && col >= 0 && col < len(m[row])
}

// Clone returns a deep copy of m
func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for i, row := range m {
		c[i] = append([]CellState(nil), row...)
	}
	return c
}

// CountLivingCells returns the total number of living cells
func (m Matrix) CountLivingCells() (count int) {
	for _, row := range m {
		for _, cell := range row {
			if cell == Alive {
				count++
			}
		}
	}
	return
}

// Summary recomputes the liveness summary of m
func (m Matrix) Summary() CellState {
	for _, row := range m {
		for _, cell := range row {
			if cell == Alive {
				return Alive
			}
		}
	}
	return Dead
}

// Hash returns an MD5 hash of the matrix contents
func (m Matrix) Hash() string {
	h := md5.New()
	for _, row := range m {
		for _, cell := range row {
			h.Write([]byte{byte(cell)})
		}
		h.Write([]byte{0xff})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// decideFunc returns the new state of cell (i, j), given the working matrix
type decideFunc func(i, j int, matrix Matrix) CellState

// instantiate builds a size x size matrix from scratch. decide receives the
// partially built output so far.
func instantiate(size int, decide decideFunc) (Matrix, CellState) {
	var (
		matrix  = make(Matrix, 0, max(size, 0))
		summary = Dead
	)
	for i := 0; i < size; i++ {
		row := make([]CellState, 0, size)
		matrix = append(matrix, row)
		for j := 0; j < size; j++ {
			state := decide(i, j, matrix)
			if state == Alive {
				summary = Alive
			}
			row = append(row, state)
			matrix[i] = row
		}
	}
	return matrix, summary
}

// buildNext builds a fresh matrix shaped like src, asking decide for every
// cell in row-major order. src is passed to decide unchanged.
func buildNext(src Matrix, decide decideFunc) (Matrix, CellState) {
	var (
		next    = make(Matrix, len(src))
		summary = Dead
	)
	for i := range src {
		row := make([]CellState, len(src[i]))
		for j := range row {
			state := decide(i, j, src)
			if state == Alive {
				summary = Alive
			}
			row[j] = state
		}
		next[i] = row
	}
	return next, summary
}
