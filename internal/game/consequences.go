package game

import (
	"ipdetective/internal/models"
)

// Reputation is always clamped into this range after every change.
const (
	ReputationFloor   = 0
	ReputationCeiling = 100
)

// ApplyConsequences applies a decision option's consequences to the session:
// score moves by the full delta, reputation is re-clamped to [0, 100]. The
// feedback text is returned for display and never stored. The state machine
// guarantees at most one call per submitted verdict.
func ApplyConsequences(s *Session, c models.Consequences) string {
	s.Score += c.Score
	s.Reputation = clampReputation(s.Reputation + c.Reputation)
	return c.Feedback
}

func clampReputation(v int) int {
	if v < ReputationFloor {
		return ReputationFloor
	}
	if v > ReputationCeiling {
		return ReputationCeiling
	}
	return v
}
