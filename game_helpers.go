package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-editor/model"
	"github.com/sheikhrachel/go-gol-editor/session"
	"github.com/sheikhrachel/go-gol-editor/utils"
)

var errQuit = errors.New("quit requested")

const helpText = `commands:
  p                 stop/start
  n                 advance one generation
  c                 clear
  r                 randomize
  b on|off          borders
  d on|off          draw mode
  pattern NAME      select stencil (%s)
  down X Y          pointer down at pixel offset
  move X Y          pointer move to pixel offset
  up                pointer up
  out               pointer leaves the grid
  click ROW COL     stamp the stencil at a cell
  q                 quit
`

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, state session.State) {
	fmt.Fprintf(out, "Grid: %dx%d | Borders: %s | Rule: %s | Initial living cells: %d\n",
		state.Size, state.Size, state.BorderMode, state.Rule, state.Matrix.CountLivingCells())
	if config.Interactive {
		fmt.Fprintf(out, helpText, strings.Join(model.PatternNames(), ", "))
	}
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// cycleTracker detects still lifes and period-2 oscillators from the hashes
// of the last two generations
type cycleTracker struct {
	hashes [2]string // most recent first
	period int       // 0 when no short cycle was seen
}

// observe records the next generation
func (c *cycleTracker) observe(m model.Matrix) {
	h := m.Hash()
	switch h {
	case c.hashes[0]:
		c.period = 1
	case c.hashes[1]:
		c.period = 2
	default:
		c.period = 0
	}
	c.hashes[1], c.hashes[0] = c.hashes[0], h
}

// reset forgets the history after an edit, keeping m as the latest matrix
func (c *cycleTracker) reset(m model.Matrix) {
	*c = cycleTracker{hashes: [2]string{m.Hash()}}
}

// track updates the tracker for one published update
func (c *cycleTracker) track(kind session.UpdateType, next, prev session.State) {
	if kind != session.MatrixChange {
		return
	}
	if next.StepCount <= prev.StepCount {
		c.reset(next.Matrix)
		return
	}
	if c.hashes[0] == "" {
		c.reset(prev.Matrix)
	}
	c.observe(next.Matrix)
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, state session.State, stats *utils.Stats, period int) {
	status := "Active"
	switch {
	case state.MatrixState == model.Dead:
		status = "Extinct"
	case state.GameState == session.Stopped:
		status = "Stopped"
	case period == 1:
		status = "Still life"
	case period == 2:
		status = "Oscillating (period 2)"
	}

	population := state.Matrix.CountLivingCells()
	density := 0.0
	if cells := state.Matrix.Rows() * state.Matrix.Cols(); cells > 0 {
		density = float64(population) / float64(cells) * 100
	}

	fmt.Fprintf(out, "Step: %d | Living: %d | Density: %.1f%% | Status: %s | %s | %s\n",
		state.StepCount, population, density, status, state.BorderMode, state.DrawMode)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Edits: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation, stats.Edits,
		time.Since(stats.StartTime).Seconds())
}

// statsSubscriber keeps stats in step with published matrices
func statsSubscriber(stats *utils.Stats) session.Subscriber {
	return session.SubscriberFunc(func(kind session.UpdateType, next, prev session.State) {
		if kind != session.MatrixChange {
			return
		}
		population := next.Matrix.CountLivingCells()
		if next.StepCount > prev.StepCount {
			stats.Update(next.StepCount, population, time.Now())
			return
		}
		stats.RecordEdit(population)
	})
}

// viewSubscriber redraws the terminal after every update
func viewSubscriber(renderer *model.TerminalRenderer, stats *utils.Stats, logger *slog.Logger) session.Subscriber {
	var cycles cycleTracker
	return session.SubscriberFunc(func(kind session.UpdateType, next, prev session.State) {
		cycles.track(kind, next, prev)
		if err := renderer.Clear(); err != nil {
			logger.Warn("clear terminal", "err", err)
		}
		displayGameStatus(renderer.Out, next, stats, cycles.period)
		if err := renderer.Display(next.Matrix, nil); err != nil {
			logger.Warn("render", "update", kind, "err", err)
		}
		if next.MatrixState == model.Dead && prev.MatrixState == model.Alive {
			logger.Info("grid is dead", "step", next.StepCount)
		}
	})
}

// controller turns text commands into panel and pointer actions
type controller struct {
	dispatcher *session.Dispatcher
	panel      *session.Panel
	scheduler  *session.Scheduler
	renderer   *model.TerminalRenderer
	hover      session.Hover
}

func newController(
	d *session.Dispatcher,
	p *session.Panel,
	s *session.Scheduler,
	r *model.TerminalRenderer,
) *controller {
	return &controller{dispatcher: d, panel: p, scheduler: s, renderer: r, hover: session.NewHover()}
}

// handle runs a single command line
func (c *controller) handle(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch cmd, args := fields[0], fields[1:]; cmd {
	case "q", "quit":
		return errQuit
	case "p":
		return c.panel.ToggleGameState()
	case "n":
		return c.scheduler.Step()
	case "c":
		return c.panel.Clear()
	case "r":
		return c.panel.Randomize()
	case "b":
		on, err := parseSwitch(args)
		if err != nil {
			return err
		}
		mode := model.BordersOff
		if on {
			mode = model.BordersOn
		}
		return c.panel.SetBorderMode(mode)
	case "d":
		on, err := parseSwitch(args)
		if err != nil {
			return err
		}
		return c.panel.SetDrawMode(on)
	case "pattern":
		if len(args) != 1 {
			return errors.New("usage: pattern NAME")
		}
		pattern, err := model.LookupPattern(args[0])
		if err != nil {
			return err
		}
		return c.panel.SetPattern(pattern)
	case "down", "move":
		x, y, err := parsePair(args)
		if err != nil {
			return err
		}
		if cmd == "down" {
			c.hover, err = session.MouseDown(c.dispatcher, c.hover, x, y)
		} else {
			c.hover, err = session.MouseMove(c.dispatcher, c.hover, x, y)
		}
		if err != nil {
			return err
		}
		return c.showPreview()
	case "up":
		c.hover = session.MouseUp(c.hover)
		return nil
	case "out":
		c.hover = session.MouseOut(c.hover)
		return nil
	case "click":
		row, col, err := parsePair(args)
		if err != nil {
			return err
		}
		return session.PlacePattern(c.dispatcher, model.Coords{Row: row, Col: col})
	default:
		return errors.Errorf("unknown command %q", cmd)
	}
}

// showPreview redraws the grid with the stencil shaded under the pointer
func (c *controller) showPreview() error {
	state := c.dispatcher.State()
	preview := session.Preview(state, c.hover)
	if preview == nil {
		return nil
	}
	return c.renderer.Display(state.Matrix, preview)
}

func parseSwitch(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("expected on or off")
	}
	switch args[0] {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, errors.Errorf("expected on or off, got %q", args[0])
}

func parsePair(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, errors.New("expected two integers")
	}
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "[parsePair] %q", args[0])
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "[parsePair] %q", args[1])
	}
	return a, b, nil
}
