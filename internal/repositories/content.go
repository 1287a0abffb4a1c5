package repositories

import (
	"context"
	"database/sql"
	"log/slog"

	"ipdetective/internal/db"
	"ipdetective/internal/errors"
	"ipdetective/internal/models"

	"github.com/jmoiron/sqlx"
)

// ContentRepository reads the immutable content catalog: investigation cases,
// quiz questions and lawyer scenarios. All reads go through the read-only
// connection pool.
type ContentRepository struct {
	read   *sqlx.DB
	logger *slog.Logger
}

func NewContentRepository(dbs *db.DBs, logger *slog.Logger) *ContentRepository {
	return &ContentRepository{
		read:   sqlx.NewDb(dbs.ReadDB, "sqlite3"),
		logger: logger.With("source", "ContentRepository"),
	}
}

type caseRow struct {
	ID            string `db:"id"`
	Title         string `db:"title"`
	Category      string `db:"category"`
	Difficulty    string `db:"difficulty"`
	Description   string `db:"description"`
	CorrectOption string `db:"correct_option"`
	Reward        int    `db:"reward"`
}

type evidenceRow struct {
	ID       string `db:"id"`
	Type     string `db:"type"`
	Title    string `db:"title"`
	Content  string `db:"content"`
	ImageURL string `db:"image_url"`
}

type interviewRow struct {
	ID        string `db:"id"`
	Character string `db:"character"`
	Role      string `db:"role"`
	Avatar    string `db:"avatar"`
	Trust     int    `db:"trust"`
}

type dialogueLineRow struct {
	InterviewID string `db:"interview_id"`
	ID          string `db:"id"`
	Text        string `db:"text"`
	Next        string `db:"next"`
}

type dialogueResponseRow struct {
	InterviewID string `db:"interview_id"`
	LineID      string `db:"line_id"`
	ID          string `db:"id"`
	Text        string `db:"text"`
	TrustImpact int    `db:"trust_impact"`
	Next        string `db:"next"`
}

type responseEvidenceRow struct {
	InterviewID string `db:"interview_id"`
	LineID      string `db:"line_id"`
	ResponseID  string `db:"response_id"`
	EvidenceID  string `db:"evidence_id"`
}

type decisionOptionRow struct {
	ID          string `db:"id"`
	Text        string `db:"text"`
	Explanation string `db:"explanation"`
	Score       int    `db:"score"`
	Reputation  int    `db:"reputation"`
	Feedback    string `db:"feedback"`
}

type decisionReasonRow struct {
	OptionID string `db:"option_id"`
	Reason   string `db:"reason"`
}

// ListCases returns all investigation cases with their nested content, in
// catalog order.
func (r *ContentRepository) ListCases(ctx context.Context) ([]models.Case, error) {
	var rows []caseRow
	stmt := `SELECT id, title, category, difficulty, description, correct_option, reward
		FROM cases ORDER BY ord`
	if err := r.read.SelectContext(ctx, &rows, stmt); err != nil {
		return nil, errors.Wrap(err, "query cases")
	}

	cases := make([]models.Case, 0, len(rows))
	for _, row := range rows {
		c, err := r.assembleCase(ctx, row)
		if err != nil {
			return nil, err
		}
		cases = append(cases, *c)
	}
	return cases, nil
}

// GetCase returns a single case by id. Wraps models.ErrNotFound when the id
// does not resolve.
func (r *ContentRepository) GetCase(ctx context.Context, id string) (*models.Case, error) {
	var row caseRow
	stmt := `SELECT id, title, category, difficulty, description, correct_option, reward
		FROM cases WHERE id = ?`
	if err := r.read.GetContext(ctx, &row, stmt, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(models.ErrNotFound, "get case", slog.String("case_id", id))
		}
		return nil, errors.Wrap(err, "query case", slog.String("case_id", id))
	}
	return r.assembleCase(ctx, row)
}

func (r *ContentRepository) assembleCase(ctx context.Context, row caseRow) (*models.Case, error) {
	c := models.Case{
		ID:            row.ID,
		Title:         row.Title,
		Category:      models.Category(row.Category),
		Difficulty:    models.Difficulty(row.Difficulty),
		Description:   row.Description,
		CorrectOption: row.CorrectOption,
		Reward:        row.Reward,
	}

	var evidenceRows []evidenceRow
	stmt := `SELECT id, type, title, content, image_url FROM evidence WHERE case_id = ? ORDER BY ord`
	if err := r.read.SelectContext(ctx, &evidenceRows, stmt, c.ID); err != nil {
		return nil, errors.Wrap(err, "query evidence")
	}
	for _, e := range evidenceRows {
		c.Evidence = append(c.Evidence, models.Evidence{
			ID:       e.ID,
			Type:     models.EvidenceType(e.Type),
			Title:    e.Title,
			Content:  e.Content,
			ImageURL: e.ImageURL,
		})
	}

	interviews, err := r.caseInterviews(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Interviews = interviews

	options, err := r.caseOptions(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Options = options

	return &c, nil
}

func (r *ContentRepository) caseInterviews(ctx context.Context, caseID string) ([]models.Interview, error) {
	var interviewRows []interviewRow
	stmt := `SELECT id, character, role, avatar, trust FROM interviews WHERE case_id = ? ORDER BY ord`
	if err := r.read.SelectContext(ctx, &interviewRows, stmt, caseID); err != nil {
		return nil, errors.Wrap(err, "query interviews")
	}

	var lineRows []dialogueLineRow
	stmt = `SELECT interview_id, id, text, next FROM dialogue_lines WHERE case_id = ? ORDER BY interview_id, ord`
	if err := r.read.SelectContext(ctx, &lineRows, stmt, caseID); err != nil {
		return nil, errors.Wrap(err, "query dialogue lines")
	}

	var responseRows []dialogueResponseRow
	stmt = `SELECT interview_id, line_id, id, text, trust_impact, next
		FROM dialogue_responses WHERE case_id = ? ORDER BY interview_id, line_id, ord`
	if err := r.read.SelectContext(ctx, &responseRows, stmt, caseID); err != nil {
		return nil, errors.Wrap(err, "query dialogue responses")
	}

	var evidenceRefRows []responseEvidenceRow
	stmt = `SELECT interview_id, line_id, response_id, evidence_id
		FROM dialogue_response_evidence WHERE case_id = ? ORDER BY interview_id, line_id, response_id, ord`
	if err := r.read.SelectContext(ctx, &evidenceRefRows, stmt, caseID); err != nil {
		return nil, errors.Wrap(err, "query response evidence")
	}

	type responseKey struct {
		interviewID, lineID, responseID string
	}
	evidenceByResponse := map[responseKey][]string{}
	for _, ref := range evidenceRefRows {
		key := responseKey{ref.InterviewID, ref.LineID, ref.ResponseID}
		evidenceByResponse[key] = append(evidenceByResponse[key], ref.EvidenceID)
	}

	type lineKey struct {
		interviewID, lineID string
	}
	responsesByLine := map[lineKey][]models.DialogueResponse{}
	for _, response := range responseRows {
		key := lineKey{response.InterviewID, response.LineID}
		responsesByLine[key] = append(responsesByLine[key], models.DialogueResponse{
			ID:   response.ID,
			Text: response.Text,
			Impact: models.Impact{
				Trust:    response.TrustImpact,
				Evidence: evidenceByResponse[responseKey{response.InterviewID, response.LineID, response.ID}],
			},
			Next: response.Next,
		})
	}

	linesByInterview := map[string][]models.DialogueLine{}
	for _, line := range lineRows {
		linesByInterview[line.InterviewID] = append(linesByInterview[line.InterviewID], models.DialogueLine{
			ID:        line.ID,
			Text:      line.Text,
			Responses: responsesByLine[lineKey{line.InterviewID, line.ID}],
			Next:      line.Next,
		})
	}

	interviews := make([]models.Interview, 0, len(interviewRows))
	for _, row := range interviewRows {
		interviews = append(interviews, models.Interview{
			ID:        row.ID,
			Character: row.Character,
			Role:      row.Role,
			Avatar:    row.Avatar,
			Trust:     row.Trust,
			Dialogue:  linesByInterview[row.ID],
		})
	}
	return interviews, nil
}

func (r *ContentRepository) caseOptions(ctx context.Context, caseID string) ([]models.DecisionOption, error) {
	var optionRows []decisionOptionRow
	stmt := `SELECT id, text, explanation, score, reputation, feedback
		FROM decision_options WHERE case_id = ? ORDER BY ord`
	if err := r.read.SelectContext(ctx, &optionRows, stmt, caseID); err != nil {
		return nil, errors.Wrap(err, "query decision options")
	}

	var reasonRows []decisionReasonRow
	stmt = `SELECT option_id, reason FROM decision_reasons WHERE case_id = ? ORDER BY option_id, ord`
	if err := r.read.SelectContext(ctx, &reasonRows, stmt, caseID); err != nil {
		return nil, errors.Wrap(err, "query decision reasons")
	}
	reasonsByOption := map[string][]string{}
	for _, row := range reasonRows {
		reasonsByOption[row.OptionID] = append(reasonsByOption[row.OptionID], row.Reason)
	}

	options := make([]models.DecisionOption, 0, len(optionRows))
	for _, row := range optionRows {
		options = append(options, models.DecisionOption{
			ID:          row.ID,
			Text:        row.Text,
			Explanation: row.Explanation,
			Reasons:     reasonsByOption[row.ID],
			Consequences: models.Consequences{
				Score:      row.Score,
				Reputation: row.Reputation,
				Feedback:   row.Feedback,
			},
		})
	}
	return options, nil
}

type questionRow struct {
	ID            string `db:"id"`
	Category      string `db:"category"`
	Text          string `db:"text"`
	CorrectAnswer string `db:"correct_answer"`
	Explanation   string `db:"explanation"`
}

type questionOptionRow struct {
	QuestionID string `db:"question_id"`
	ID         string `db:"id"`
	Text       string `db:"text"`
}

// ListQuestions returns the quiz questions in catalog order.
func (r *ContentRepository) ListQuestions(ctx context.Context) ([]models.Question, error) {
	var rows []questionRow
	stmt := `SELECT id, category, text, correct_answer, explanation FROM questions ORDER BY ord`
	if err := r.read.SelectContext(ctx, &rows, stmt); err != nil {
		return nil, errors.Wrap(err, "query questions")
	}

	var optionRows []questionOptionRow
	stmt = `SELECT question_id, id, text FROM question_options ORDER BY question_id, ord`
	if err := r.read.SelectContext(ctx, &optionRows, stmt); err != nil {
		return nil, errors.Wrap(err, "query question options")
	}
	optionsByQuestion := map[string][]models.QuestionOption{}
	for _, row := range optionRows {
		optionsByQuestion[row.QuestionID] = append(optionsByQuestion[row.QuestionID], models.QuestionOption{
			ID:   row.ID,
			Text: row.Text,
		})
	}

	questions := make([]models.Question, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, models.Question{
			ID:            row.ID,
			Category:      row.Category,
			Text:          row.Text,
			Options:       optionsByQuestion[row.ID],
			CorrectAnswer: row.CorrectAnswer,
			Explanation:   row.Explanation,
		})
	}
	return questions, nil
}

type legalCaseRow struct {
	ID            string `db:"id"`
	Title         string `db:"title"`
	Description   string `db:"description"`
	Background    string `db:"background"`
	ClientName    string `db:"client_name"`
	ClientRole    string `db:"client_role"`
	CorrectOption string `db:"correct_option"`
	Reward        int    `db:"reward"`
}

type legalEvidenceRow struct {
	LegalCaseID string `db:"legal_case_id"`
	ID          string `db:"id"`
	Type        string `db:"type"`
	Title       string `db:"title"`
	Content     string `db:"content"`
}

type legalOptionRow struct {
	LegalCaseID string `db:"legal_case_id"`
	ID          string `db:"id"`
	Text        string `db:"text"`
	Explanation string `db:"explanation"`
	Reputation  int    `db:"reputation"`
	Feedback    string `db:"feedback"`
	Outcome     string `db:"outcome"`
}

// ListLegalCases returns the lawyer scenarios in catalog order.
func (r *ContentRepository) ListLegalCases(ctx context.Context) ([]models.LegalCase, error) {
	var rows []legalCaseRow
	stmt := `SELECT id, title, description, background, client_name, client_role, correct_option, reward
		FROM legal_cases ORDER BY ord`
	if err := r.read.SelectContext(ctx, &rows, stmt); err != nil {
		return nil, errors.Wrap(err, "query legal cases")
	}

	var evidenceRows []legalEvidenceRow
	stmt = `SELECT legal_case_id, id, type, title, content FROM legal_evidence ORDER BY legal_case_id, ord`
	if err := r.read.SelectContext(ctx, &evidenceRows, stmt); err != nil {
		return nil, errors.Wrap(err, "query legal evidence")
	}
	evidenceByCase := map[string][]models.LegalEvidence{}
	for _, row := range evidenceRows {
		evidenceByCase[row.LegalCaseID] = append(evidenceByCase[row.LegalCaseID], models.LegalEvidence{
			ID:      row.ID,
			Type:    row.Type,
			Title:   row.Title,
			Content: row.Content,
		})
	}

	var optionRows []legalOptionRow
	stmt = `SELECT legal_case_id, id, text, explanation, reputation, feedback, outcome
		FROM legal_options ORDER BY legal_case_id, ord`
	if err := r.read.SelectContext(ctx, &optionRows, stmt); err != nil {
		return nil, errors.Wrap(err, "query legal options")
	}
	optionsByCase := map[string][]models.LegalOption{}
	for _, row := range optionRows {
		optionsByCase[row.LegalCaseID] = append(optionsByCase[row.LegalCaseID], models.LegalOption{
			ID:          row.ID,
			Text:        row.Text,
			Explanation: row.Explanation,
			Consequences: models.LegalConsequences{
				Reputation: row.Reputation,
				Feedback:   row.Feedback,
				Outcome:    row.Outcome,
			},
		})
	}

	legalCases := make([]models.LegalCase, 0, len(rows))
	for _, row := range rows {
		legalCases = append(legalCases, models.LegalCase{
			ID:            row.ID,
			Title:         row.Title,
			Description:   row.Description,
			Background:    row.Background,
			ClientName:    row.ClientName,
			ClientRole:    row.ClientRole,
			Evidence:      evidenceByCase[row.ID],
			Options:       optionsByCase[row.ID],
			CorrectOption: row.CorrectOption,
			Reward:        row.Reward,
		})
	}
	return legalCases, nil
}
