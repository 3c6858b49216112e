package session

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/model"
)

// Panel holds the control panel actions. Source feeds Randomize; nil uses
// the process generator.
type Panel struct {
	Emitter Emitter
	Source  model.RandomSource
}

// NewPanel returns a Panel emitting through e
func NewPanel(e Emitter, src model.RandomSource) *Panel {
	return &Panel{Emitter: e, Source: src}
}

// ToggleGameState flips between running and stopped
func (p *Panel) ToggleGameState() error {
	_, err := p.Emitter.Emit(GameStateChange, func(s *State) error {
		if s.GameState == Stopped {
			s.GameState = Running
		} else {
			s.GameState = Stopped
		}
		return nil
	})
	return err
}

// Clear replaces the matrix with an empty one and resets the step count
func (p *Panel) Clear() error {
	return p.replace(func(s State) model.Reducer {
		return model.EmptyReducer{Size: s.Size}
	})
}

// Randomize replaces the matrix with a random one and resets the step count
func (p *Panel) Randomize() error {
	return p.replace(func(s State) model.Reducer {
		return model.RandomReducer{Size: s.Size, Threshold: s.Threshold, Source: p.Source}
	})
}

func (p *Panel) replace(reducer func(State) model.Reducer) error {
	_, err := p.Emitter.Emit(MatrixChange, func(s *State) error {
		matrix, summary, err := model.BuildMatrix(reducer(*s))
		if err != nil {
			return errors.Wrap(err, "[Panel.replace]")
		}
		s.Matrix, s.MatrixState, s.StepCount = matrix, summary, 1
		return nil
	})
	return err
}

// SetBorderMode switches the neighbor counting policy
func (p *Panel) SetBorderMode(mode model.BorderMode) error {
	_, err := p.Emitter.Emit(BorderModeChange, func(s *State) error {
		s.BorderMode = mode
		return nil
	})
	return err
}

// SetDrawMode enables or disables pointer editing
func (p *Panel) SetDrawMode(on bool) error {
	_, err := p.Emitter.Emit(DrawModeChange, func(s *State) error {
		s.DrawMode = DrawOff
		if on {
			s.DrawMode = DrawOn
		}
		return nil
	})
	return err
}

// SetPattern selects the stencil used for editing; nil disables drawing
func (p *Panel) SetPattern(pattern model.Matrix) error {
	_, err := p.Emitter.Emit(PatternChange, func(s *State) error {
		s.Pattern = pattern.Clone()
		if pattern == nil {
			s.Pattern = nil
		}
		return nil
	})
	return err
}
