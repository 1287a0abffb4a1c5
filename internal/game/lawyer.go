package game

import (
	"ipdetective/internal/models"
)

// LawyerSession drives the lawyer mini-game: pick a legal case, commit to one
// strategy, take the reputation consequences. Like the quiz it is a linear,
// dialogue-free restriction of the investigation pattern.
type LawyerSession struct {
	CurrentCase      string
	ReviewedEvidence []string
	SelectedOption   string
	Reputation       int
	CasesWon         int
	Completed        bool
}

func NewLawyerSession() *LawyerSession {
	return &LawyerSession{Reputation: ReputationCeiling}
}

// SelectCase opens a legal case, clearing any per-case state. Reputation and
// the cases-won tally carry over between cases.
func (l *LawyerSession) SelectCase(legalCase models.LegalCase) {
	l.CurrentCase = legalCase.ID
	l.ReviewedEvidence = nil
	l.SelectedOption = ""
	l.Completed = false
}

// ChooseOption commits to a strategy for the open case. The first committed
// choice is final; unknown option ids are no-ops. Reputation moves by the
// option's delta, clamped to [0, 100], and matching the case's correct option
// counts as a case won.
func (l *LawyerSession) ChooseOption(legalCase models.LegalCase, optionID string) {
	if l.Completed || l.SelectedOption != "" || l.CurrentCase != legalCase.ID {
		return
	}
	var option *models.LegalOption
	for i := range legalCase.Options {
		if legalCase.Options[i].ID == optionID {
			option = &legalCase.Options[i]
			break
		}
	}
	if option == nil {
		return
	}

	l.SelectedOption = optionID
	l.Reputation = clampReputation(l.Reputation + option.Consequences.Reputation)
	if optionID == legalCase.CorrectOption {
		l.CasesWon++
	}
	l.Completed = true
}

// Reset restores the fresh defaults, including reputation.
func (l *LawyerSession) Reset() {
	*l = *NewLawyerSession()
}
