package models

// LegalCase is a scenario for the lawyer mini-game: a client, a pile of
// evidence and a set of strategies with reputation consequences.
type LegalCase struct {
	ID            string
	Title         string
	Description   string
	Background    string
	ClientName    string
	ClientRole    string
	Evidence      []LegalEvidence
	Options       []LegalOption
	CorrectOption string
	Reward        int
}

type LegalEvidence struct {
	ID      string
	Type    string
	Title   string
	Content string
}

type LegalOption struct {
	ID           string
	Text         string
	Explanation  string
	Consequences LegalConsequences
}

type LegalConsequences struct {
	Reputation int
	Feedback   string
	Outcome    string
}
