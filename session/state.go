// Package session holds the interactive game around the matrix engine:
// the observable game state, the pointer-driven editor, the control panel
// actions and the generation scheduler.
package session

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/model"
	"github.com/sheikhrachel/go-gol-editor/rules"
	"github.com/sheikhrachel/go-gol-editor/utils"
)

// GameState tells the scheduler whether to advance generations
type GameState string

const (
	Running GameState = "running"
	Stopped GameState = "stopped"
)

// DrawMode tells the pointer editor whether to stamp patterns
type DrawMode string

const (
	DrawOn  DrawMode = "draw:on"
	DrawOff DrawMode = "draw:off"
)

// State is a snapshot of everything the views and controls observe
type State struct {
	MatrixState model.CellState
	GameState   GameState
	BorderMode  model.BorderMode
	DrawMode    DrawMode
	StepCount   int
	Matrix      model.Matrix
	Pattern     model.Matrix // nil disables drawing
	Rule        rules.Rule
	Threshold   float64
	Size        int
	CellSize    int
	Speed       time.Duration
}

// Paused reports whether the scheduler should skip the current tick
func (s State) Paused() bool {
	return s.GameState == Stopped || s.MatrixState == model.Dead
}

// NewInitialState seeds a running game with a random matrix built from cfg
func NewInitialState(cfg utils.Config, src model.RandomSource) (State, error) {
	pattern, err := model.LookupPattern(cfg.Pattern)
	if err != nil {
		return State{}, errors.Wrap(err, "[NewInitialState] pattern")
	}
	rule, err := cfg.ParsedRule()
	if err != nil {
		return State{}, errors.Wrap(err, "[NewInitialState] rule")
	}
	matrix, summary, err := model.BuildMatrix(model.RandomReducer{
		Size:      cfg.Size,
		Threshold: cfg.Threshold,
		Source:    src,
	})
	if err != nil {
		return State{}, errors.Wrap(err, "[NewInitialState] matrix")
	}

	drawMode := DrawOff
	if cfg.DrawMode {
		drawMode = DrawOn
	}

	return State{
		MatrixState: summary,
		GameState:   Running,
		BorderMode:  cfg.BorderMode,
		DrawMode:    drawMode,
		StepCount:   1,
		Matrix:      matrix,
		Pattern:     pattern,
		Rule:        rule,
		Threshold:   cfg.Threshold,
		Size:        cfg.Size,
		CellSize:    cfg.CellSize,
		Speed:       cfg.StepInterval,
	}, nil
}
