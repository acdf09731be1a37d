package statuschart_test

import (
	"testing"

	"winetrade/internal/core/domain/model/statuschart"
	"winetrade/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState string

const (
	stateDraft  testState = "DRAFT"
	stateActive testState = "ACTIVE"
	stateDone   testState = "DONE"
)

func newTestChart() statuschart.Chart[testState] {
	return statuschart.New("widget", map[testState][]testState{
		stateDraft:  {stateActive},
		stateActive: {stateDone, stateDraft},
		stateDone:   {},
	})
}

func TestChart_AllowedNext(t *testing.T) {
	chart := newTestChart()

	t.Run("returns outgoing transitions", func(t *testing.T) {
		assert.Equal(t, []testState{stateDone, stateDraft}, chart.AllowedNext(stateActive))
	})

	t.Run("terminal state returns empty set", func(t *testing.T) {
		assert.Empty(t, chart.AllowedNext(stateDone))
	})

	t.Run("unknown state returns empty set", func(t *testing.T) {
		assert.Empty(t, chart.AllowedNext("NOPE"))
	})

	t.Run("every target is a state of the chart", func(t *testing.T) {
		for _, from := range chart.States() {
			for _, to := range chart.AllowedNext(from) {
				assert.True(t, chart.Contains(to), "transition %s -> %s leaves the chart", from, to)
			}
		}
	})
}

func TestChart_IsTerminal(t *testing.T) {
	chart := newTestChart()

	assert.True(t, chart.IsTerminal(stateDone))
	assert.False(t, chart.IsTerminal(stateDraft))
	assert.False(t, chart.IsTerminal("NOPE"), "unknown states are not terminal")
}

func TestChart_Validate(t *testing.T) {
	chart := newTestChart()

	t.Run("allows a legal transition", func(t *testing.T) {
		require.NoError(t, chart.Validate(stateDraft, stateActive))
	})

	t.Run("rejects a disallowed transition with the allowed set", func(t *testing.T) {
		err := chart.Validate(stateDraft, stateDone)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "widget", transitionErr.EntityKind)
		assert.Equal(t, []string{"ACTIVE"}, transitionErr.Allowed)
	})

	t.Run("rejects any move out of a terminal state", func(t *testing.T) {
		err := chart.Validate(stateDone, stateDraft)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("rejects unknown states", func(t *testing.T) {
		require.ErrorIs(t, chart.Validate("NOPE", stateActive), errs.ErrValueIsInvalid)
		require.ErrorIs(t, chart.Validate(stateDraft, "NOPE"), errs.ErrValueIsInvalid)
	})
}

func TestChart_StatesIsSorted(t *testing.T) {
	chart := newTestChart()

	assert.Equal(t, []testState{stateActive, stateDone, stateDraft}, chart.States())
}
