package repository

import (
	"testing"

	"github.com/lshigami/Marmoset/internal/apperrors"
	"github.com/stretchr/testify/require"
)

// The repository is exercised against the content file that ships with the
// server, so these tests double as a sanity check on data/assessments.json.
const assessmentDataFile = "../../data/assessments.json"

func TestQuestionnaireRepository_LoadsShippedContent(t *testing.T) {
	repo, err := NewQuestionnaireRepositoryFromFile(assessmentDataFile)
	require.NoError(t, err)

	set := repo.FindAll()
	require.NotEmpty(t, set.Assessments)

	for key, q := range set.Assessments {
		require.NotEmpty(t, q.Questions, "bracket %s has no questions", key)
		for _, question := range q.Questions {
			require.NotEmpty(t, question.Options, "bracket %s question %q has no options", key, question.Text)
		}
	}
}

func TestQuestionnaireRepository_FindByMonth(t *testing.T) {
	repo, err := NewQuestionnaireRepositoryFromFile(assessmentDataFile)
	require.NoError(t, err)

	q, err := repo.FindByMonth(6)
	require.NoError(t, err)
	require.Equal(t, 6, q.Month)
	require.Len(t, q.Questions, 3)

	_, err = repo.FindByMonth(999)
	require.ErrorIs(t, err, apperrors.ErrAssessmentNotFound)
}

func TestQuestionnaireRepository_MonthsSorted(t *testing.T) {
	repo, err := NewQuestionnaireRepositoryFromFile(assessmentDataFile)
	require.NoError(t, err)

	months := repo.Months()
	require.NotEmpty(t, months)
	for i := 1; i < len(months); i++ {
		require.Less(t, months[i-1], months[i])
	}
}

func TestQuestionnaireRepository_MissingFile(t *testing.T) {
	_, err := NewQuestionnaireRepositoryFromFile("no/such/file.json")
	require.Error(t, err)
}
