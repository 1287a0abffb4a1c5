package game

import (
	"context"
	"ipdetective/internal/errors"
	"ipdetective/internal/models"
	"log/slog"
	"sync"
)

// ContentStore is the read-only contract with the content catalog.
type ContentStore interface {
	ListCases(ctx context.Context) ([]models.Case, error)
	GetCase(ctx context.Context, id string) (*models.Case, error)
	ListQuestions(ctx context.Context) ([]models.Question, error)
	ListLegalCases(ctx context.Context) ([]models.LegalCase, error)
}

// Machine drives the case investigation loop: it sequences
// selection -> investigation -> decision, delegates to the dialogue and
// annotation operations, and applies consequences on a submitted verdict.
//
// All operations mutate the session passed to them and treat unresolved ids
// and out-of-phase intents as silent no-ops. Content lookups can fail only on
// storage errors, never on player input.
type Machine struct {
	store  ContentStore
	logger *slog.Logger

	mu      sync.Mutex
	indexes map[string]*caseIndex
}

func NewMachine(store ContentStore, logger *slog.Logger) *Machine {
	return &Machine{
		store:   store,
		logger:  logger.With("source", "game.Machine"),
		indexes: map[string]*caseIndex{},
	}
}

// caseIndex resolves the free-form identifiers of a case through lookup
// tables built once when the case is first loaded.
type caseIndex struct {
	c       models.Case
	lines   map[string]map[string]models.DialogueLine
	options map[string]models.DecisionOption
}

func newCaseIndex(c models.Case) *caseIndex {
	index := caseIndex{
		c:       c,
		lines:   make(map[string]map[string]models.DialogueLine, len(c.Interviews)),
		options: make(map[string]models.DecisionOption, len(c.Options)),
	}
	for _, interview := range c.Interviews {
		lines := make(map[string]models.DialogueLine, len(interview.Dialogue))
		for _, line := range interview.Dialogue {
			lines[line.ID] = line
		}
		index.lines[interview.ID] = lines
	}
	for _, option := range c.Options {
		index.options[option.ID] = option
	}
	return &index
}

func (ci *caseIndex) line(interviewID, lineID string) (models.DialogueLine, bool) {
	line, ok := ci.lines[interviewID][lineID]
	return line, ok
}

func (ci *caseIndex) response(interviewID, lineID, responseID string) (models.DialogueResponse, bool) {
	line, ok := ci.line(interviewID, lineID)
	if !ok {
		return models.DialogueResponse{}, false
	}
	for _, response := range line.Responses {
		if response.ID == responseID {
			return response, true
		}
	}
	return models.DialogueResponse{}, false
}

func (ci *caseIndex) option(id string) (models.DecisionOption, bool) {
	option, ok := ci.options[id]
	return option, ok
}

// index returns the cached lookup table for a case, loading it on first use.
// Content is immutable, so a built index stays valid for the process lifetime.
func (m *Machine) index(ctx context.Context, caseID string) (*caseIndex, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index, ok := m.indexes[caseID]; ok {
		return index, nil
	}
	c, err := m.store.GetCase(ctx, caseID)
	if err != nil {
		return nil, errors.Wrap(err, "get case", slog.String("case_id", caseID))
	}
	index := newCaseIndex(*c)
	m.indexes[caseID] = index
	return index, nil
}

// Case returns the immutable case record for rendering.
func (m *Machine) Case(ctx context.Context, caseID string) (models.Case, error) {
	index, err := m.index(ctx, caseID)
	if err != nil {
		return models.Case{}, err
	}
	return index.c, nil
}

// SelectCase starts investigating the given case. Valid only during case
// selection; an unknown case id leaves the session in selection.
func (m *Machine) SelectCase(ctx context.Context, s *Session, caseID string) error {
	if s.Phase != PhaseSelection {
		return nil
	}
	_, err := m.index(ctx, caseID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			m.logger.DebugContext(ctx, "select unknown case", slog.String("case_id", caseID))
			return nil
		}
		return err
	}
	s.CurrentCase = caseID
	s.Phase = PhaseInvestigation
	s.Tab = TabEvidence
	// Reveal state from a previous run of any case is stale now.
	s.Revealed = map[string]bool{}
	return nil
}

// SetTab switches the open investigation sub-view. Valid only while investigating.
func (m *Machine) SetTab(s *Session, tab Tab) {
	if s.Phase != PhaseInvestigation {
		return
	}
	switch tab {
	case TabEvidence, TabFairUse, TabInterviews:
		s.Tab = tab
	default:
	}
}

// ProceedToDecision moves from investigation to the verdict screen. There is
// no completion gating: reviewing evidence and interviews is advisory.
func (m *Machine) ProceedToDecision(s *Session) {
	if s.Phase != PhaseInvestigation {
		return
	}
	s.Phase = PhaseDecision
}

// ChooseOption records the tentatively selected verdict option and reveals
// the reasons panel. Valid only on the decision screen, and only until a
// reason has been committed.
func (m *Machine) ChooseOption(ctx context.Context, s *Session, optionID string) error {
	if s.Phase != PhaseDecision || s.CurrentCase == "" || s.SelectedReason != "" {
		return nil
	}
	index, err := m.index(ctx, s.CurrentCase)
	if err != nil {
		return err
	}
	if _, ok := index.option(optionID); !ok {
		m.logger.DebugContext(ctx, "choose unknown option", slog.String("option_id", optionID))
		return nil
	}
	s.SelectedOption = optionID
	return nil
}

// ChooseReason sets the single selected justification, replacing any prior
// selection.
func (m *Machine) ChooseReason(s *Session, reason string) {
	s.SelectedReason = reason
}

// SubmitVerdict finalizes the verdict. It is a no-op (ok=false) unless both
// an option and a reason have been chosen. On success it applies the option's
// consequences exactly once, records the completed case and returns the
// feedback text, then resets the session to case selection. Score and
// reputation carry over.
func (m *Machine) SubmitVerdict(ctx context.Context, s *Session) (feedback string, ok bool, err error) {
	if s.Phase != PhaseDecision || s.CurrentCase == "" ||
		s.SelectedOption == "" || s.SelectedReason == "" {
		return "", false, nil
	}
	index, err := m.index(ctx, s.CurrentCase)
	if err != nil {
		return "", false, err
	}
	option, found := index.option(s.SelectedOption)
	if !found {
		return "", false, nil
	}

	feedback = ApplyConsequences(s, option.Consequences)
	s.CompletedCases = append(s.CompletedCases, s.CurrentCase)

	s.Phase = PhaseSelection
	s.Tab = TabNone
	s.CurrentCase = ""
	s.SelectedOption = ""
	s.SelectedReason = ""
	return feedback, true, nil
}
