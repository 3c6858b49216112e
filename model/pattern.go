package model

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by LookupPattern for unregistered names
var ErrUnknownPattern = errors.New("unknown pattern")

const (
	patternAlive = 'O'
	patternDead  = '.'
)

// DefaultPatternName is the single-cell stencil used for freehand drawing
const DefaultPatternName = "cell"

var patterns = map[string][]string{
	DefaultPatternName: {"O"},
	"block": {
		"OO",
		"OO",
	},
	"blinker": {"OOO"},
	"glider": {
		".O.",
		"..O",
		"OOO",
	},
	"beehive": {
		".OO.",
		"O..O",
		".OO.",
	},
	"clear": {
		"...",
		"...",
		"...",
	},
}

// ParsePattern parses rows of 'O' (alive) and '.' (dead). All rows must have
// the same length.
func ParsePattern(rows ...string) (Matrix, error) {
	if len(rows) == 0 {
		return nil, errors.New("[ParsePattern] empty pattern")
	}
	width := len(rows[0])
	pattern := make(Matrix, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, errors.Errorf("[ParsePattern] row %d has length %d, want %d", i, len(row), width)
		}
		pattern[i] = make([]CellState, width)
		for j, c := range []byte(row) {
			switch c {
			case patternAlive:
				pattern[i][j] = Alive
			case patternDead:
				pattern[i][j] = Dead
			default:
				return nil, errors.Errorf("[ParsePattern] unexpected %q at row %d col %d", c, i, j)
			}
		}
	}
	return pattern, nil
}

// LookupPattern returns a fresh copy of a named pattern
func LookupPattern(name string) (Matrix, error) {
	rows, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q", name)
	}
	return ParsePattern(rows...)
}

// PatternNames lists the registered pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Footprint returns the in-bounds cells of matrix that pattern covers when
// anchored at location, in row-major order of the pattern
func Footprint(matrix Matrix, location Coords, pattern Matrix) []Coords {
	var cells []Coords
	for pi, row := range pattern {
		for pj := range row {
			i, j := location.Row+pi, location.Col+pj
			if matrix.InBounds(i, j) {
				cells = append(cells, Coords{Row: i, Col: j})
			}
		}
	}
	return cells
}
