package game

import (
	"ipdetective/internal/models"

	"github.com/google/uuid"
)

// Highlights currently have a fixed size and color. The size constants are a
// design decision, not an engine constraint.
const (
	HighlightWidth  = 20.0
	HighlightHeight = 20.0
	HighlightColor  = "#ffeb3b"
)

// Box is the rendered bounding box of an evidence image, in the pointer's
// coordinate space.
type Box struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// PlaceHighlight converts a pointer position inside an evidence image into a
// highlight with percentage coordinates and appends it to the evidence's
// annotation log. Only callable while highlighting mode is armed; placing a
// highlight disarms the mode and clears the staged note, so each annotation
// needs a fresh activation.
//
// Percentages are clamped to [0, 100] in case the pointer event was captured
// outside the image bounds. Highlights are never deleted in-session.
func PlaceHighlight(s *Session, evidenceID string, pointerX, pointerY float64, box Box) (models.Highlight, bool) {
	if !s.Highlighting {
		return models.Highlight{}, false
	}
	if box.Width <= 0 || box.Height <= 0 {
		return models.Highlight{}, false
	}

	highlight := models.Highlight{
		ID:     uuid.NewString(),
		X:      clampPercent(100 * (pointerX - box.Left) / box.Width),
		Y:      clampPercent(100 * (pointerY - box.Top) / box.Height),
		Width:  HighlightWidth,
		Height: HighlightHeight,
		Color:  HighlightColor,
		Note:   s.StagedNote,
	}
	s.Highlights[evidenceID] = append(s.Highlights[evidenceID], highlight)

	s.Highlighting = false
	s.StagedNote = ""
	return highlight, true
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
