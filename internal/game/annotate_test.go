package game_test

import (
	"testing"

	"ipdetective/internal/game"

	"github.com/stretchr/testify/require"
)

func TestPlaceHighlight(t *testing.T) {
	t.Parallel()

	box := game.Box{Left: 100, Top: 50, Width: 400, Height: 200}

	t.Run("requires highlighting mode", func(t *testing.T) {
		s := game.NewSession()
		_, ok := game.PlaceHighlight(s, "website-content", 300, 150, box)
		require.False(t, ok)
		require.Empty(t, s.Highlights["website-content"])
	})

	t.Run("places percentage coordinates and disarms", func(t *testing.T) {
		s := game.NewSession()
		s.StageNote("suspicious watermark")
		s.ToggleHighlighting()

		highlight, ok := game.PlaceHighlight(s, "website-content", 300, 150, box)
		require.True(t, ok)
		require.InDelta(t, 50, highlight.X, 1e-9)
		require.InDelta(t, 50, highlight.Y, 1e-9)
		require.Equal(t, game.HighlightWidth, highlight.Width)
		require.Equal(t, game.HighlightHeight, highlight.Height)
		require.Equal(t, game.HighlightColor, highlight.Color)
		require.Equal(t, "suspicious watermark", highlight.Note)
		require.NotEmpty(t, highlight.ID)

		require.False(t, s.Highlighting, "placing a highlight disarms the mode")
		require.Empty(t, s.StagedNote)
		require.Len(t, s.Highlights["website-content"], 1)

		_, ok = game.PlaceHighlight(s, "website-content", 300, 150, box)
		require.False(t, ok, "a second placement needs re-arming")
	})

	t.Run("clamps out-of-bounds pointers", func(t *testing.T) {
		s := game.NewSession()
		s.ToggleHighlighting()
		highlight, ok := game.PlaceHighlight(s, "website-content", 0, 1000, box)
		require.True(t, ok)
		require.Equal(t, 0.0, highlight.X)
		require.Equal(t, 100.0, highlight.Y)
	})

	t.Run("rejects a degenerate box", func(t *testing.T) {
		s := game.NewSession()
		s.ToggleHighlighting()
		_, ok := game.PlaceHighlight(s, "website-content", 10, 10, game.Box{})
		require.False(t, ok)
		require.True(t, s.Highlighting, "a rejected placement keeps the mode armed")
	})

	t.Run("ids are unique and highlights accumulate", func(t *testing.T) {
		s := game.NewSession()
		seen := map[string]bool{}
		for i := 0; i < 5; i++ {
			s.ToggleHighlighting()
			highlight, ok := game.PlaceHighlight(s, "copyright-statement", 120, 60, box)
			require.True(t, ok)
			require.False(t, seen[highlight.ID], "highlight ids must be unique")
			seen[highlight.ID] = true
		}
		require.Len(t, s.Highlights["copyright-statement"], 5)
	})
}

func TestSession_Snapshot(t *testing.T) {
	t.Parallel()

	s := game.NewSession()
	s.ToggleHighlighting()
	_, ok := game.PlaceHighlight(s, "website-content", 10, 10, game.Box{Width: 100, Height: 100})
	require.True(t, ok)
	s.ReviewedEvidence = append(s.ReviewedEvidence, "website-content")

	snapshot := s.Snapshot()
	snapshot.ReviewedEvidence[0] = "mutated"
	snapshot.Highlights["website-content"][0].Note = "mutated"
	snapshot.Revealed["start/ask"] = true

	require.Equal(t, "website-content", s.ReviewedEvidence[0])
	require.Empty(t, s.Highlights["website-content"][0].Note)
	require.False(t, s.ResponseRevealed("start", "ask"))
}
