package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/st3p-dev/engine/pkg/board"
	"github.com/st3p-dev/engine/pkg/eval"
	"github.com/st3p-dev/engine/pkg/search"
)

func TestIterativeRespectsDepthLimit(t *testing.T) {
	g, _, err := board.ParseGame("3_/3_/3_ x")
	require.NoError(t, err)

	stack := eval.NewWin(eval.NewAssurer(eval.Chance{}))
	thinker := search.NewThinker(stack, allLooker{}, 1)
	launcher := search.NewIterative(thinker)

	_, pvs := launcher.Launch(context.Background(), g, search.Options{DepthLimit: lang.Some(3)})

	var last search.PV
	var depths []int
	for pv := range pvs {
		depths = append(depths, pv.Depth)
		last = pv
	}

	require.NotEmpty(t, depths)
	assert.Equal(t, []int{1, 2, 3}, depths)
	assert.Equal(t, 3, last.Depth)
}

func TestIterativeHaltReturnsLatestPV(t *testing.T) {
	g, _, err := board.ParseGame("5_/5_/5_/5_/5_ x")
	require.NoError(t, err)

	stack := eval.NewWin(eval.NewAssurer(eval.Chance{}))
	thinker := search.NewThinker(stack, allLooker{}, 1)
	launcher := search.NewIterative(thinker)

	handle, pvs := launcher.Launch(context.Background(), g, search.Options{})

	select {
	case <-pvs:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for first PV")
	}

	pv := handle.Halt()
	assert.GreaterOrEqual(t, pv.Depth, 1)

	// Halt is idempotent.
	assert.Equal(t, pv, handle.Halt())
}

func TestTimeControlLimits(t *testing.T) {
	tc := search.TimeControl{PerMove: 100 * time.Millisecond}
	soft, hard := tc.Limits()
	assert.Equal(t, 100*time.Millisecond, soft)
	assert.Equal(t, 300*time.Millisecond, hard)
}

func TestTimeControlLimitsFromRemaining(t *testing.T) {
	tc := search.TimeControl{Remaining: 8 * time.Second}
	soft, hard := tc.Limits()
	assert.Equal(t, 100*time.Millisecond, soft)
	assert.Equal(t, 300*time.Millisecond, hard)
}

func TestTimeControlLimitsUnset(t *testing.T) {
	var tc search.TimeControl
	soft, hard := tc.Limits()
	assert.Zero(t, soft)
	assert.Zero(t, hard)
}
