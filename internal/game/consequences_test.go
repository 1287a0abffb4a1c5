package game_test

import (
	"testing"

	"ipdetective/internal/game"
	"ipdetective/internal/models"

	"github.com/stretchr/testify/require"
)

func TestApplyConsequences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		startScore     int
		startRep       int
		consequences   models.Consequences
		wantScore      int
		wantReputation int
	}{
		{
			name:           "positive deltas",
			startRep:       50,
			consequences:   models.Consequences{Score: 100, Reputation: 10},
			wantScore:      100,
			wantReputation: 60,
		},
		{
			name:           "reputation clamps at ceiling",
			startRep:       95,
			consequences:   models.Consequences{Reputation: 10},
			wantReputation: 100,
		},
		{
			name:           "reputation clamps at floor",
			startRep:       5,
			consequences:   models.Consequences{Score: -50, Reputation: -20},
			wantScore:      -50,
			wantReputation: 0,
		},
		{
			name:           "score is unclamped",
			startScore:     -200,
			startRep:       0,
			consequences:   models.Consequences{Score: -100, Reputation: -100},
			wantScore:      -300,
			wantReputation: 0,
		},
		{
			name:           "huge positive reputation delta",
			startRep:       100,
			consequences:   models.Consequences{Reputation: 1000},
			wantReputation: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := game.NewSession()
			s.Score = tt.startScore
			s.Reputation = tt.startRep

			feedback := game.ApplyConsequences(s, tt.consequences)

			require.Equal(t, tt.wantScore, s.Score)
			require.Equal(t, tt.wantReputation, s.Reputation)
			require.Equal(t, tt.consequences.Feedback, feedback)
		})
	}
}
