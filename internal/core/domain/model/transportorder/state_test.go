package transportorder_test

import (
	"fmt"
	"testing"

	"transportation/internal/core/domain/model/transportorder"
	"transportation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Constants(t *testing.T) {
	t.Run("declared order follows the lifecycle", func(t *testing.T) {
		assert.Equal(t, 0, int(transportorder.Unknown))
		assert.Equal(t, 1, int(transportorder.Created))
		assert.Equal(t, 2, int(transportorder.Initialized))
		assert.Equal(t, 3, int(transportorder.Started))
		assert.Equal(t, 4, int(transportorder.Finished))
		assert.Equal(t, 5, int(transportorder.OnFailure))
		assert.Equal(t, 6, int(transportorder.Canceled))
	})
}

func TestState_Validate(t *testing.T) {
	t.Run("accepts lifecycle states", func(t *testing.T) {
		for _, s := range []transportorder.State{
			transportorder.Created,
			transportorder.Initialized,
			transportorder.Started,
			transportorder.Finished,
			transportorder.OnFailure,
			transportorder.Canceled,
		} {
			require.NoError(t, s.Validate(), "state %s", s)
		}
	})

	t.Run("rejects Unknown and out-of-range values", func(t *testing.T) {
		for _, s := range []transportorder.State{
			transportorder.Unknown,
			transportorder.State(-1),
			transportorder.State(7),
			transportorder.State(99),
		} {
			err := s.Validate()

			require.Error(t, err, "state value %d", int(s))
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid transport order state", int(s)))
		}
	})
}

func TestState_String(t *testing.T) {
	testCases := []struct {
		state    transportorder.State
		expected string
	}{
		{transportorder.Unknown, "Unknown"},
		{transportorder.Created, "Created"},
		{transportorder.Initialized, "Initialized"},
		{transportorder.Started, "Started"},
		{transportorder.Finished, "Finished"},
		{transportorder.OnFailure, "OnFailure"},
		{transportorder.Canceled, "Canceled"},
		{transportorder.State(42), "Unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.state.String())
	}
}

func TestState_IsTerminal(t *testing.T) {
	terminal := []transportorder.State{
		transportorder.Finished,
		transportorder.OnFailure,
		transportorder.Canceled,
	}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), "state %s", s)
	}

	nonTerminal := []transportorder.State{
		transportorder.Unknown,
		transportorder.Created,
		transportorder.Initialized,
		transportorder.Started,
	}
	for _, s := range nonTerminal {
		assert.False(t, s.IsTerminal(), "state %s", s)
	}
}

func TestState_CanTransitionTo(t *testing.T) {
	t.Run("transition table", func(t *testing.T) {
		allowed := map[transportorder.State][]transportorder.State{
			transportorder.Created:     {transportorder.Initialized, transportorder.Canceled},
			transportorder.Initialized: {transportorder.Started, transportorder.Canceled, transportorder.OnFailure},
			transportorder.Started:     {transportorder.Finished, transportorder.OnFailure, transportorder.Canceled},
			transportorder.Finished:    {},
			transportorder.OnFailure:   {},
			transportorder.Canceled:    {},
		}

		all := []transportorder.State{
			transportorder.Created,
			transportorder.Initialized,
			transportorder.Started,
			transportorder.Finished,
			transportorder.OnFailure,
			transportorder.Canceled,
		}

		for from, targets := range allowed {
			permitted := make(map[transportorder.State]bool, len(targets))
			for _, to := range targets {
				permitted[to] = true
			}
			for _, to := range all {
				assert.Equal(t, permitted[to], from.CanTransitionTo(to),
					"transition %s -> %s", from, to)
			}
		}
	})

	t.Run("started may reach every terminal state and nothing else", func(t *testing.T) {
		assert.True(t, transportorder.Started.CanTransitionTo(transportorder.Finished))
		assert.True(t, transportorder.Started.CanTransitionTo(transportorder.OnFailure))
		assert.True(t, transportorder.Started.CanTransitionTo(transportorder.Canceled))
		assert.False(t, transportorder.Started.CanTransitionTo(transportorder.Started))
		assert.False(t, transportorder.Started.CanTransitionTo(transportorder.Initialized))
	})
}

func TestPriorityLevel(t *testing.T) {
	t.Run("validates defined levels", func(t *testing.T) {
		for _, p := range []transportorder.PriorityLevel{
			transportorder.PriorityLowest,
			transportorder.PriorityLow,
			transportorder.PriorityNormal,
			transportorder.PriorityHigh,
			transportorder.PriorityHighest,
		} {
			require.NoError(t, p.Validate())
		}
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		for _, p := range []transportorder.PriorityLevel{
			transportorder.PriorityUnknown,
			transportorder.PriorityLevel(-1),
			transportorder.PriorityLevel(6),
		} {
			require.Error(t, p.Validate(), "priority value %d", int(p))
		}
	})

	t.Run("string representation", func(t *testing.T) {
		assert.Equal(t, "Normal", transportorder.PriorityNormal.String())
		assert.Equal(t, "Highest", transportorder.PriorityHighest.String())
		assert.Equal(t, "Unknown", transportorder.PriorityLevel(99).String())
	})
}

func TestMessage(t *testing.T) {
	t.Run("creates message with occurrence time", func(t *testing.T) {
		m, err := transportorder.NewMessage("location blocked", "MSG-0042")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "location blocked", m.Text())
		assert.Equal(t, "MSG-0042", m.MessageNo())
		assert.False(t, m.OccurredAt().IsZero())
	})

	t.Run("requires text", func(t *testing.T) {
		_, err := transportorder.NewMessage("", "MSG-0042")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m transportorder.Message

		require.ErrorIs(t, m.Validate(), errs.ErrValueIsRequired)
	})
}
