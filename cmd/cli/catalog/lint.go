// Package catalog holds CLI commands for maintaining the content catalog.
package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"ipdetective/internal/db"
	"ipdetective/internal/errors"
	"ipdetective/internal/models"
	"ipdetective/internal/repositories"

	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "catalog",
	Title: "Content catalog",
}

var databaseURL string

func init() {
	Lint.Flags().StringVar(&databaseURL, "database", defaultDatabaseURL(), "SQLite database to lint")
}

func defaultDatabaseURL() string {
	if url, ok := os.LookupEnv("IPDETECTIVE_SQLITE_URL"); ok {
		return url
	}
	return "./ipdetective.sqlite"
}

var Lint = &cobra.Command{
	Use:     "lint",
	GroupID: "catalog",
	Short:   "Check catalog consistency",
	Long: `Checks the content catalog for dangling dialogue links, evidence references
that do not resolve, and correct answers that do not match any option.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		findings, err := lint(cmd.Context(), databaseURL)
		if err != nil {
			return err
		}
		for _, finding := range findings {
			cmd.Println(finding)
		}
		if len(findings) > 0 {
			return fmt.Errorf("found %d problem(s)", len(findings))
		}
		cmd.Println("catalog OK")
		return nil
	},
}

// lint loads the whole catalog and returns one finding per inconsistency.
func lint(ctx context.Context, sqliteURL string) ([]string, error) {
	dbs, err := db.NewDB(sqliteURL)
	if err != nil {
		return nil, errors.Wrap(err, "open database", slog.String("url", sqliteURL))
	}
	defer func() {
		_ = dbs.ReadDB.Close()
		_ = dbs.ReadWriteDB.Close()
	}()
	content := repositories.NewContentRepository(dbs, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var findings []string

	cases, err := content.ListCases(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list cases")
	}
	for _, c := range cases {
		findings = append(findings, lintCase(c)...)
	}

	questions, err := content.ListQuestions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list questions")
	}
	for _, question := range questions {
		if !hasQuestionOption(question.Options, question.CorrectAnswer) {
			findings = append(findings, fmt.Sprintf(
				"question %s: correct answer %q is not among its options", question.ID, question.CorrectAnswer))
		}
	}

	legalCases, err := content.ListLegalCases(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list legal cases")
	}
	for _, legalCase := range legalCases {
		if !hasLegalOption(legalCase.Options, legalCase.CorrectOption) {
			findings = append(findings, fmt.Sprintf(
				"legal case %s: correct option %q is not among its options", legalCase.ID, legalCase.CorrectOption))
		}
	}

	return findings, nil
}

func lintCase(c models.Case) []string {
	var findings []string

	evidenceIDs := make(map[string]bool, len(c.Evidence))
	for _, evidence := range c.Evidence {
		evidenceIDs[evidence.ID] = true
	}

	for _, interview := range c.Interviews {
		lineIDs := make(map[string]bool, len(interview.Dialogue))
		for _, line := range interview.Dialogue {
			lineIDs[line.ID] = true
		}
		for _, line := range interview.Dialogue {
			for _, response := range line.Responses {
				if response.Next != "" && !lineIDs[response.Next] {
					findings = append(findings, fmt.Sprintf(
						"case %s: interview %s: response %s continues to unknown line %q",
						c.ID, interview.ID, response.ID, response.Next))
				}
				for _, evidenceID := range response.Impact.Evidence {
					if !evidenceIDs[evidenceID] {
						findings = append(findings, fmt.Sprintf(
							"case %s: interview %s: response %s unlocks unknown evidence %q",
							c.ID, interview.ID, response.ID, evidenceID))
					}
				}
			}
		}
	}

	optionIDs := make(map[string]bool, len(c.Options))
	for _, option := range c.Options {
		optionIDs[option.ID] = true
	}
	if !optionIDs[c.CorrectOption] {
		findings = append(findings, fmt.Sprintf(
			"case %s: correct option %q is not among its options", c.ID, c.CorrectOption))
	}

	return findings
}

func hasQuestionOption(options []models.QuestionOption, id string) bool {
	for _, option := range options {
		if option.ID == id {
			return true
		}
	}
	return false
}

func hasLegalOption(options []models.LegalOption, id string) bool {
	for _, option := range options {
		if option.ID == id {
			return true
		}
	}
	return false
}
