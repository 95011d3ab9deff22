package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/st3p-dev/engine/pkg/engine"
)

func TestParseCommandVersion(t *testing.T) {
	cmd, err := engine.ParseCommand("st3p version 1")
	require.NoError(t, err)
	assert.Equal(t, engine.Version, cmd.Kind)
	assert.Equal(t, 1, cmd.Version)
}

func TestParseCommandVersionMalformed(t *testing.T) {
	_, err := engine.ParseCommand("st3p version")
	assert.Error(t, err)

	_, err = engine.ParseCommand("st3p version two")
	assert.Error(t, err)
}

func TestParseCommandIdentify(t *testing.T) {
	cmd, err := engine.ParseCommand("identify")
	require.NoError(t, err)
	assert.Equal(t, engine.Identify, cmd.Kind)
}

func TestParseCommandQuit(t *testing.T) {
	cmd, err := engine.ParseCommand("quit")
	require.NoError(t, err)
	assert.Equal(t, engine.Quit, cmd.Kind)
}

func TestParseCommandMove(t *testing.T) {
	cmd, err := engine.ParseCommand("move xox/_o_/3_ x")
	require.NoError(t, err)
	assert.Equal(t, engine.Move, cmd.Kind)
	assert.Equal(t, "xox/_o_/3_ x", cmd.Board)
	assert.Zero(t, cmd.WinLength)
	assert.Zero(t, cmd.PerMove)
	assert.Zero(t, cmd.Remaining)
}

func TestParseCommandMoveWithTags(t *testing.T) {
	cmd, err := engine.ParseCommand("move xox/_o_/3_ x time ms:500 time-remaining ms:60000 win-length 4")
	require.NoError(t, err)
	assert.Equal(t, "xox/_o_/3_ x", cmd.Board)
	assert.Equal(t, 500*time.Millisecond, cmd.PerMove)
	assert.Equal(t, 60000*time.Millisecond, cmd.Remaining)
	assert.Equal(t, 4, cmd.WinLength)
}

func TestParseCommandMoveMissingBoard(t *testing.T) {
	_, err := engine.ParseCommand("move xox/_o_/3_")
	assert.Error(t, err)
}

func TestParseCommandMoveInvalidDuration(t *testing.T) {
	_, err := engine.ParseCommand("move xox/_o_/3_ x time 500")
	assert.Error(t, err)
}

func TestParseCommandMoveInvalidWinLength(t *testing.T) {
	_, err := engine.ParseCommand("move xox/_o_/3_ x win-length 0")
	assert.Error(t, err)
}

func TestParseCommandMoveUnrecognizedTag(t *testing.T) {
	_, err := engine.ParseCommand("move xox/_o_/3_ x bogus tag")
	assert.Error(t, err)
}

func TestParseCommandUnrecognized(t *testing.T) {
	_, err := engine.ParseCommand("frobnicate")
	assert.Error(t, err)
}

func TestParseCommandQuoting(t *testing.T) {
	// shellquote should split a quoted board token as one field.
	cmd, err := engine.ParseCommand(`move "xox/_o_/3_" "x"`)
	require.NoError(t, err)
	assert.Equal(t, "xox/_o_/3_ x", cmd.Board)
}
