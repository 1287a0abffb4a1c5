package game

import (
	"context"
	"ipdetective/internal/errors"
	"ipdetective/internal/models"
	"log/slog"
)

// ToggleResponse handles the player picking a dialogue response during an
// interview. The reveal flag for the (line, response) pair is toggled, not
// set: picking the same response again hides the continuation. Every pick
// appends the response's impact evidence to the reviewed-evidence log, with
// no deduplication. Trust impact is carried by content but has no destination
// here.
//
// Unknown interview, line or response ids are silent no-ops.
func (m *Machine) ToggleResponse(ctx context.Context, s *Session, interviewID, lineID, responseID string) error {
	if s.Phase != PhaseInvestigation || s.CurrentCase == "" {
		return nil
	}
	index, err := m.index(ctx, s.CurrentCase)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil
		}
		return err
	}
	response, ok := index.response(interviewID, lineID, responseID)
	if !ok {
		m.logger.DebugContext(ctx, "toggle unknown response",
			slog.String("interview_id", interviewID),
			slog.String("line_id", lineID),
			slog.String("response_id", responseID))
		return nil
	}

	key := revealKey(lineID, responseID)
	s.Revealed[key] = !s.Revealed[key]

	if len(response.Impact.Evidence) > 0 {
		s.ReviewedEvidence = append(s.ReviewedEvidence, response.Impact.Evidence...)
	}
	return nil
}

// Continuation resolves a response's next line. A next id that names no line
// in the interview yields ok=false: a silent display gap, not an error.
func (m *Machine) Continuation(
	ctx context.Context,
	caseID, interviewID string,
	response models.DialogueResponse,
) (models.DialogueLine, bool, error) {
	index, err := m.index(ctx, caseID)
	if err != nil {
		return models.DialogueLine{}, false, err
	}
	line, ok := index.line(interviewID, response.Next)
	return line, ok, nil
}
