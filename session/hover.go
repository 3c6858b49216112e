package session

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/model"
)

// Emitter is the part of Dispatcher the controls need
type Emitter interface {
	Emit(kind UpdateType, patch Patch) (bool, error)
	State() State
}

// noCell marks a Hover that is not over the grid
var noCell = model.Coords{Row: -1, Col: -1}

// Hover is the pointer interaction context. The input layer owns it and
// threads each returned value into the next event.
type Hover struct {
	XY       model.Coords
	Clicking bool
	// Outside is set while the pointer is off the grid. XY keeps the last
	// hovered cell so re-entering it does not stamp again.
	Outside  bool
}

// NewHover returns a context with the pointer off the grid
func NewHover() Hover {
	return Hover{XY: noCell}
}

// CellAt maps pixel offsets to the cell under the pointer
func CellAt(offsetX, offsetY, cellSize int) model.Coords {
	if cellSize <= 0 {
		return noCell
	}
	return model.Coords{Row: offsetY / cellSize, Col: offsetX / cellSize}
}

func drawing(s State) bool {
	return s.Pattern != nil && s.DrawMode == DrawOn
}

// MouseDown starts a drag and stamps the pattern under the pointer
func MouseDown(e Emitter, h Hover, offsetX, offsetY int) (Hover, error) {
	s := e.State()
	if !drawing(s) {
		return h, nil
	}
	xy := CellAt(offsetX, offsetY, s.CellSize)
	if xy == noCell {
		return h, nil
	}
	h.XY, h.Clicking, h.Outside = xy, true, false
	return h, PlacePattern(e, xy)
}

// MouseMove tracks the hovered cell and, while dragging, stamps the pattern
// each time the pointer enters a new cell
func MouseMove(e Emitter, h Hover, offsetX, offsetY int) (Hover, error) {
	s := e.State()
	if !drawing(s) {
		return h, nil
	}
	xy := CellAt(offsetX, offsetY, s.CellSize)
	if xy == noCell {
		return h, nil
	}
	h.Outside = false
	if xy == h.XY {
		return h, nil
	}
	h.XY = xy
	if h.Clicking {
		return h, PlacePattern(e, xy)
	}
	return h, nil
}

// MouseUp ends a drag
func MouseUp(Hover) Hover {
	return NewHover()
}

// MouseOut hides the preview. The drag flag and last cell are kept.
func MouseOut(h Hover) Hover {
	h.Outside = true
	return h
}

// Preview returns the cells the pattern would cover at the hovered cell
func Preview(s State, h Hover) []model.Coords {
	if !drawing(s) || h.Outside || h.XY == noCell {
		return nil
	}
	return model.Footprint(s.Matrix, h.XY, s.Pattern)
}

// PlacePattern stamps the current pattern at location
func PlacePattern(e Emitter, location model.Coords) error {
	_, err := e.Emit(MatrixChange, func(s *State) error {
		if s.Pattern == nil {
			return ErrNoChange
		}
		matrix, summary, err := model.BuildMatrix(model.EditReducer{
			Matrix:   s.Matrix,
			Location: location,
			Pattern:  s.Pattern,
		})
		if err != nil {
			return errors.Wrap(err, "[PlacePattern]")
		}
		s.Matrix, s.MatrixState = matrix, summary
		return nil
	})
	return err
}
