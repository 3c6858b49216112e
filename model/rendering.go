package model

import (
	"bufio"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
	gridPosHover = "░░"
	gridPosBoth  = "▓▓"

	// ANSI clear screen and cursor home
	ansiClear = "\033[2J\033[H"
)

// TerminalRenderer draws matrices as text blocks, one matrix row per line
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{Out: out}
}

// Display renders the matrix, shading the hover cells
func (r *TerminalRenderer) Display(m Matrix, hover []Coords) error {
	shaded := make(map[Coords]struct{}, len(hover))
	for _, c := range hover {
		shaded[c] = struct{}{}
	}

	w := bufio.NewWriter(r.Out)
	for i, row := range m {
		for j, cell := range row {
			_, onHover := shaded[Coords{Row: i, Col: j}]
			switch {
			case cell == Alive && onHover:
				w.WriteString(gridPosBoth)
			case cell == Alive:
				w.WriteString(gridPosBlock)
			case onHover:
				w.WriteString(gridPosHover)
			default:
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, ansiClear)
	return err
}
