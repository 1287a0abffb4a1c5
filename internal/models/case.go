package models

import (
	"ipdetective/internal/errors"
)

// ErrNotFound is returned by content lookups when an id does not resolve.
// Player intents carrying unresolved ids are treated as no-ops, never as faults.
var ErrNotFound = errors.NewSentinel("not found")

type Category string

const (
	CategoryCopyright Category = "Copyright"
	CategoryTrademark Category = "Trademark"
	CategoryPatent    Category = "Patent"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type EvidenceType string

const (
	EvidenceTypeImage      EvidenceType = "image"
	EvidenceTypeDocument   EvidenceType = "document"
	EvidenceTypeEmail      EvidenceType = "email"
	EvidenceTypeBlockchain EvidenceType = "blockchain"
	EvidenceTypeLegal      EvidenceType = "legal"
)

// Case is a self-contained investigation scenario with evidence, interviews
// and verdict options. Cases are immutable once loaded from the content
// catalog.
type Case struct {
	ID          string
	Title       string
	Category    Category
	Difficulty  Difficulty
	Description string
	Evidence    []Evidence
	Interviews  []Interview
	Options     []DecisionOption
	// CorrectOption is informational metadata. The engine scores whichever
	// option the player picks through its consequences.
	CorrectOption string
	Reward        int
}

// Evidence is a document, image or record the player can inspect during the
// investigation. Content may use the lightweight markup understood by the
// markup package.
type Evidence struct {
	ID       string
	Type     EvidenceType
	Title    string
	Content  string
	ImageURL string
}

// Highlight is a player-placed annotation region over an evidence image.
// Coordinates and sizes are percentages of the evidence image's rendered box.
type Highlight struct {
	ID     string
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  string
	Note   string
}

// Interview is a branching conversation with a character. Dialogue forms a
// directed graph of lines connected by response edges.
type Interview struct {
	ID        string
	Character string
	Role      string
	Avatar    string
	// Trust is declared by content but not consumed by any engine rule.
	Trust    int
	Dialogue []DialogueLine
}

// DialogueLine is a node in an interview's conversation graph. The first line
// of an interview is its entry node.
type DialogueLine struct {
	ID        string
	Text      string
	Responses []DialogueResponse
	// Next is the successor line id when this line is itself a response target.
	Next string
}

// DialogueResponse is an edge from a dialogue line to the line named by Next.
type DialogueResponse struct {
	ID     string
	Text   string
	Impact Impact
	Next   string
}

// Impact describes the side effects of picking a dialogue response. Trust is
// inert telemetry; Evidence lists evidence ids marked as reviewed.
type Impact struct {
	Trust    int
	Evidence []string
}

// DecisionOption is a candidate verdict with fixed consequences.
type DecisionOption struct {
	ID           string
	Text         string
	Explanation  string
	Reasons      []string
	Consequences Consequences
}

// Consequences is the score/reputation mutation applied when a verdict is
// submitted. Feedback is surfaced to the player, not stored.
type Consequences struct {
	Score      int
	Reputation int
	Feedback   string
}
