package game

import (
	"ipdetective/internal/models"
)

// Phase is the overall state of the case investigation loop.
type Phase string

const (
	PhaseSelection     Phase = "selection"
	PhaseInvestigation Phase = "investigation"
	PhaseDecision      Phase = "decision"
)

// Tab is the investigation sub-view the player has open.
type Tab string

const (
	TabNone       Tab = "none"
	TabEvidence   Tab = "evidence"
	TabFairUse    Tab = "fairUse"
	TabInterviews Tab = "interviews"
)

// Session is the mutable, single-owner record of one player's progress.
// It is passed explicitly to every operation; there is no ambient state.
// Transitions run to completion synchronously before the next intent.
type Session struct {
	Score      int
	Reputation int

	Phase Phase
	Tab   Tab

	CurrentCase    string
	SelectedOption string
	SelectedReason string

	// CompletedCases lists submitted verdicts, in order, one entry per verdict.
	CompletedCases []string
	// ReviewedEvidence is an append-only log. Duplicates are intentional;
	// use ReviewedEvidenceSet for a deduplicated view.
	ReviewedEvidence []string
	// Highlights maps evidence id to placed annotations. Append-only.
	Highlights map[string][]models.Highlight
	// Revealed holds dialogue reveal flags keyed by line and response id.
	Revealed map[string]bool

	Highlighting bool
	StagedNote   string
}

// NewSession returns a fresh session: score 0, reputation 100, case selection.
func NewSession() *Session {
	return &Session{
		Reputation: ReputationCeiling,
		Phase:      PhaseSelection,
		Tab:        TabNone,
		Highlights: map[string][]models.Highlight{},
		Revealed:   map[string]bool{},
	}
}

// Snapshot returns a deep copy of the session for the presentation layer.
// Mutating the snapshot does not affect the session.
func (s *Session) Snapshot() Session {
	snapshot := *s
	snapshot.CompletedCases = append([]string(nil), s.CompletedCases...)
	snapshot.ReviewedEvidence = append([]string(nil), s.ReviewedEvidence...)
	snapshot.Highlights = make(map[string][]models.Highlight, len(s.Highlights))
	for id, highlights := range s.Highlights {
		snapshot.Highlights[id] = append([]models.Highlight(nil), highlights...)
	}
	snapshot.Revealed = make(map[string]bool, len(s.Revealed))
	for key, revealed := range s.Revealed {
		snapshot.Revealed[key] = revealed
	}
	return snapshot
}

// ReviewedEvidenceSet is a deduplicated view of the reviewed-evidence log in
// first-seen order. The underlying log keeps its duplicates.
func (s *Session) ReviewedEvidenceSet() []string {
	seen := make(map[string]struct{}, len(s.ReviewedEvidence))
	var set []string
	for _, id := range s.ReviewedEvidence {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		set = append(set, id)
	}
	return set
}

// ToggleHighlighting flips highlighting mode. The staged note is kept so the
// player can type the note before or after arming the highlighter.
func (s *Session) ToggleHighlighting() {
	s.Highlighting = !s.Highlighting
}

// StageNote stores the note text attached to the next placed highlight.
func (s *Session) StageNote(note string) {
	s.StagedNote = note
}

func revealKey(lineID, responseID string) string {
	return lineID + "/" + responseID
}

// ResponseRevealed reports whether the continuation for the given response is
// currently shown.
func (s *Session) ResponseRevealed(lineID, responseID string) bool {
	return s.Revealed[revealKey(lineID, responseID)]
}
