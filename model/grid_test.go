package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid builds a matrix from 'O'/'.' rows
func grid(t *testing.T, rows ...string) Matrix {
	t.Helper()
	m, err := ParsePattern(rows...)
	require.NoError(t, err)
	return m
}

func TestCellStateText(t *testing.T) {
	assert.Equal(t, "alive", Alive.String())
	assert.Equal(t, "dead", Dead.String())

	var states []CellState
	require.NoError(t, json.Unmarshal([]byte(`["alive","dead"]`), &states))
	assert.Equal(t, []CellState{Alive, Dead}, states)

	var c CellState
	assert.Error(t, c.UnmarshalText([]byte("zombie")))
}

func TestMatrixAccessors(t *testing.T) {
	m := grid(t,
		"O..",
		".O.",
	)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.True(t, m.InBounds(1, 2))
	assert.False(t, m.InBounds(2, 0))
	assert.False(t, m.InBounds(0, -1))
	assert.Equal(t, 2, m.CountLivingCells())
	assert.Equal(t, Alive, m.Summary())
	assert.Equal(t, Dead, NewMatrix(3, 3).Summary())
	assert.Equal(t, 0, Matrix(nil).Cols())
}

func TestCloneIsDeep(t *testing.T) {
	m := grid(t, "O.", ".O")
	c := m.Clone()
	require.Empty(t, cmp.Diff(m, c))

	c[0][0] = Dead
	assert.Equal(t, Alive, m[0][0])
	assert.NotEmpty(t, cmp.Diff(m, c))
}

func TestHashDistinguishesShape(t *testing.T) {
	a := NewMatrix(2, 3)
	b := NewMatrix(3, 2)
	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), NewMatrix(2, 3).Hash())

	c := NewMatrix(2, 3)
	c[1][2] = Alive
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestInstantiateRowMajor(t *testing.T) {
	var order []Coords
	m, summary := instantiate(3, func(i, j int, working Matrix) CellState {
		order = append(order, Coords{Row: i, Col: j})
		// the working matrix already holds the current row
		require.Len(t, working, i+1)
		if i == 1 && j == 2 {
			return Alive
		}
		return Dead
	})

	want := []Coords{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Fatalf("visit order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Alive, summary)
	assert.Equal(t, Alive, m[1][2])
	assert.Equal(t, 1, m.CountLivingCells())
}

func TestBuildNextAllocatesFreshRows(t *testing.T) {
	src := grid(t, "O.", ".O")
	next, summary := buildNext(src, func(i, j int, m Matrix) CellState { return m[i][j] })

	require.Equal(t, src, next)
	assert.Equal(t, Alive, summary)
	next[0][0] = Dead
	assert.Equal(t, Alive, src[0][0])
}
