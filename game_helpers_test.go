package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol-editor/model"
	"github.com/sheikhrachel/go-gol-editor/session"
	"github.com/sheikhrachel/go-gol-editor/utils"
)

func mustGrid(t *testing.T, rows ...string) model.Matrix {
	t.Helper()
	m, err := model.ParsePattern(rows...)
	require.NoError(t, err)
	return m
}

func stepState(m model.Matrix, step int) session.State {
	return session.State{Matrix: m, MatrixState: m.Summary(), StepCount: step, GameState: session.Running}
}

func TestCycleTrackerStillLife(t *testing.T) {
	block := mustGrid(t, "....", ".OO.", ".OO.", "....")
	var c cycleTracker
	c.track(session.MatrixChange, stepState(block, 2), stepState(block, 1))
	assert.Equal(t, 1, c.period)
}

func TestCycleTrackerBlinker(t *testing.T) {
	row := mustGrid(t, ".....", ".....", ".OOO.", ".....", ".....")
	col := mustGrid(t, ".....", "..O..", "..O..", "..O..", ".....")

	var c cycleTracker
	c.track(session.MatrixChange, stepState(col, 2), stepState(row, 1))
	assert.Zero(t, c.period, "one generation is not enough")
	c.track(session.MatrixChange, stepState(row, 3), stepState(col, 2))
	assert.Equal(t, 2, c.period)

	// other updates leave the history alone
	c.track(session.BorderModeChange, stepState(row, 3), stepState(row, 3))
	assert.Equal(t, 2, c.period)

	// an edit starts over
	c.track(session.MatrixChange, stepState(col, 3), stepState(row, 3))
	assert.Zero(t, c.period)
}

func TestDisplayGameStatus(t *testing.T) {
	block := mustGrid(t, "OO", "OO")
	stats := utils.NewStats()
	for _, tt := range []struct {
		name   string
		state  session.State
		period int
		want   string
	}{
		{name: "active", state: stepState(block, 1), want: "Status: Active"},
		{name: "still", state: stepState(block, 1), period: 1, want: "Status: Still life"},
		{name: "oscillating", state: stepState(block, 1), period: 2, want: "Status: Oscillating (period 2)"},
		{name: "extinct", state: stepState(model.NewMatrix(2, 2), 1), period: 1, want: "Status: Extinct"},
		{
			name:   "stopped",
			state:  session.State{Matrix: block, MatrixState: model.Alive, GameState: session.Stopped},
			period: 1,
			want:   "Status: Stopped",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			displayGameStatus(&out, tt.state, stats, tt.period)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}
