package model

import "github.com/pkg/errors"

// BorderMode selects how neighbors are counted at the edge of the grid
type BorderMode uint8

const (
	// BordersOff wraps both axes, so every cell has 8 neighbor slots
	BordersOff BorderMode = iota
	// BordersOn clips the neighborhood to the grid
	BordersOn
)

const (
	bordersOnText  = "borders:on"
	bordersOffText = "borders:off"
)

// String returns "borders:on" or "borders:off"
func (b BorderMode) String() string {
	if b == BordersOn {
		return bordersOnText
	}
	return bordersOffText
}

// MarshalText implements encoding.TextMarshaler
func (b BorderMode) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *BorderMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case bordersOnText:
		*b = BordersOn
	case bordersOffText:
		*b = BordersOff
	default:
		return errors.Errorf("[BorderMode.UnmarshalText] unknown border mode %q", text)
	}
	return nil
}

// axisIndices returns the candidate neighbor indices for index i on an axis
// of length l
func axisIndices(i, l int, mode BorderMode) []int {
	if mode == BordersOn {
		indices := make([]int, 0, 3)
		for _, n := range [3]int{i - 1, i, i + 1} {
			if n >= 0 && n < l {
				indices = append(indices, n)
			}
		}
		return indices
	}

	prev := i - 1
	if i == 0 {
		prev = l - 1
	}
	return []int{prev, i, (i + 1) % l}
}

// countNeighbors counts the living cells in the neighborhood of (i, j),
// excluding the cell itself
func countNeighbors(i, j int, matrix Matrix, mode BorderMode) int {
	var (
		rows  = axisIndices(i, len(matrix), mode)
		cols  = axisIndices(j, len(matrix[i]), mode)
		count = 0
	)
	for _, y := range rows {
		for _, x := range cols {
			if y == i && x == j {
				continue
			}
			if matrix[y][x] == Alive {
				count++
			}
		}
	}
	return count
}
