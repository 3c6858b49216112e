package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalRendererDisplay(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)

	m := grid(t, "O.", ".O")
	require.NoError(t, r.Display(m, []Coords{{Row: 0, Col: 0}, {Row: 0, Col: 1}}))

	assert.Equal(t, gridPosBoth+gridPosHover+"\n"+gridPosEmpty+gridPosBlock+"\n", buf.String())
}

func TestTerminalRendererClear(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTerminalRenderer(&buf).Clear())
	assert.Equal(t, ansiClear, buf.String())
}
