package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/rules"
)

// ErrInvalidReducer is returned by BuildMatrix for an unrecognized request
var ErrInvalidReducer = errors.New("reducer type is incorrect")

// Reducer describes one grid-building operation. The set of implementations
// is closed: EmptyReducer, RandomReducer, StepwiseReducer and EditReducer.
type Reducer interface {
	reducer()
}

// EmptyReducer builds an all-dead Size x Size matrix
type EmptyReducer struct {
	Size int
}

// RandomReducer builds a Size x Size matrix where a cell is alive when a
// uniform draw in [0,1) is strictly greater than Threshold. A nil Source
// draws from the process-wide generator.
type RandomReducer struct {
	Size      int
	Threshold float64
	Source    RandomSource
}

// StepwiseReducer applies one generation of Rule to Matrix. A nil Rule
// means rules.Conway.
type StepwiseReducer struct {
	Matrix     Matrix
	BorderMode BorderMode
	Rule       *rules.Rule
}

// EditReducer stamps Pattern onto Matrix with its top-left cell at Location
type EditReducer struct {
	Matrix   Matrix
	Location Coords
	Pattern  Matrix
}

func (EmptyReducer) reducer()    {}
func (RandomReducer) reducer()   {}
func (StepwiseReducer) reducer() {}
func (EditReducer) reducer()     {}

// BuildMatrix runs reducer and returns the new matrix with its liveness
// summary. The input matrix of a Stepwise or Edit reducer is never modified.
func BuildMatrix(reducer Reducer) (Matrix, CellState, error) {
	switch r := reducer.(type) {
	case StepwiseReducer:
		next, summary := buildNext(r.Matrix, nextCellState(r))
		return next, summary, nil
	case EditReducer:
		next, summary := addPatternToLocation(r)
		return next, summary, nil
	case EmptyReducer:
		next, summary := buildEmptyMatrix(r)
		return next, summary, nil
	case RandomReducer:
		next, summary := buildRandomMatrix(r)
		return next, summary, nil
	default:
		return nil, Dead, errors.Wrapf(ErrInvalidReducer, "[BuildMatrix] %T", reducer)
	}
}

func buildEmptyMatrix(r EmptyReducer) (Matrix, CellState) {
	return instantiate(r.Size, func(int, int, Matrix) CellState { return Dead })
}

func buildRandomMatrix(r RandomReducer) (Matrix, CellState) {
	src := r.Source
	if src == nil {
		src = defaultSource{}
	}
	return instantiate(r.Size, func(int, int, Matrix) CellState {
		if src.Float64() > r.Threshold {
			return Alive
		}
		return Dead
	})
}

func nextCellState(r StepwiseReducer) decideFunc {
	rule := rules.Conway
	if r.Rule != nil {
		rule = *r.Rule
	}
	return func(i, j int, matrix Matrix) CellState {
		alive := matrix[i][j] == Alive
		if rule.Next(alive, countNeighbors(i, j, matrix, r.BorderMode)) {
			return Alive
		}
		return Dead
	}
}

// addPatternToLocation copies the matrix and overlays the pattern. Pattern
// cells that fall outside the matrix are dropped.
func addPatternToLocation(r EditReducer) (Matrix, CellState) {
	stamped := r.Matrix.Clone()
	for pi, row := range r.Pattern {
		for pj, state := range row {
			i, j := r.Location.Row+pi, r.Location.Col+pj
			if stamped.InBounds(i, j) {
				stamped[i][j] = state
			}
		}
	}
	return buildNext(stamped, func(i, j int, matrix Matrix) CellState {
		return matrix[i][j]
	})
}
