package game_test

import (
	"context"
	"testing"

	"ipdetective/internal/game"
	"ipdetective/internal/models"

	"github.com/stretchr/testify/require"
)

func TestMachine_ToggleResponse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	machine, _ := newTestMachine(t)

	s := game.NewSession()
	require.NoError(t, machine.SelectCase(ctx, s, "alice-vs-bob"))

	require.NoError(t, machine.ToggleResponse(ctx, s, "alice-interview", "start", "ask-registration"))
	require.True(t, s.ResponseRevealed("start", "ask-registration"))
	require.Equal(t, []string{"copyright-statement"}, s.ReviewedEvidence)

	// Toggling again hides the continuation and appends the evidence again.
	require.NoError(t, machine.ToggleResponse(ctx, s, "alice-interview", "start", "ask-registration"))
	require.False(t, s.ResponseRevealed("start", "ask-registration"))
	require.Equal(t, []string{"copyright-statement", "copyright-statement"}, s.ReviewedEvidence)
	require.Equal(t, []string{"copyright-statement"}, s.ReviewedEvidenceSet())
}

func TestMachine_ToggleResponse_involution(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	machine, _ := newTestMachine(t)

	s := game.NewSession()
	require.NoError(t, machine.SelectCase(ctx, s, "alice-vs-bob"))

	before := s.ResponseRevealed("start", "ask-permission")
	require.NoError(t, machine.ToggleResponse(ctx, s, "alice-interview", "start", "ask-permission"))
	require.NoError(t, machine.ToggleResponse(ctx, s, "alice-interview", "start", "ask-permission"))
	require.Equal(t, before, s.ResponseRevealed("start", "ask-permission"))
}

func TestMachine_ToggleResponse_independentResponses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	machine, _ := newTestMachine(t)

	s := game.NewSession()
	require.NoError(t, machine.SelectCase(ctx, s, "alice-vs-bob"))

	require.NoError(t, machine.ToggleResponse(ctx, s, "alice-interview", "start", "ask-registration"))
	require.NoError(t, machine.ToggleResponse(ctx, s, "alice-interview", "start", "ask-permission"))
	require.True(t, s.ResponseRevealed("start", "ask-registration"))
	require.True(t, s.ResponseRevealed("start", "ask-permission"))

	require.NoError(t, machine.ToggleResponse(ctx, s, "alice-interview", "start", "ask-registration"))
	require.False(t, s.ResponseRevealed("start", "ask-registration"))
	require.True(t, s.ResponseRevealed("start", "ask-permission"), "other reveals stay untouched")
}

func TestMachine_ToggleResponse_unknownIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	machine, _ := newTestMachine(t)

	s := game.NewSession()
	require.NoError(t, machine.SelectCase(ctx, s, "alice-vs-bob"))

	tests := []struct {
		name                            string
		interviewID, lineID, responseID string
	}{
		{"unknown interview", "nonexistent", "start", "ask-registration"},
		{"unknown line", "alice-interview", "nonexistent", "ask-registration"},
		{"unknown response", "alice-interview", "start", "nonexistent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, machine.ToggleResponse(ctx, s, tt.interviewID, tt.lineID, tt.responseID))
			require.Empty(t, s.Revealed)
			require.Empty(t, s.ReviewedEvidence)
		})
	}
}

func TestMachine_ToggleResponse_outsideInvestigation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	machine, _ := newTestMachine(t)

	s := game.NewSession()
	require.NoError(t, machine.ToggleResponse(ctx, s, "alice-interview", "start", "ask-registration"))
	require.Empty(t, s.Revealed)
	require.Empty(t, s.ReviewedEvidence)
}

func TestMachine_Continuation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	machine, _ := newTestMachine(t)

	response := models.DialogueResponse{ID: "ask-registration", Next: "registration"}
	line, ok, err := machine.Continuation(ctx, "alice-vs-bob", "alice-interview", response)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Yes, last spring.", line.Text)

	// A dangling next id is a display gap, not an error.
	dangling := models.DialogueResponse{ID: "dead-end", Next: "no-such-line"}
	_, ok, err = machine.Continuation(ctx, "alice-vs-bob", "alice-interview", dangling)
	require.NoError(t, err)
	require.False(t, ok)
}
