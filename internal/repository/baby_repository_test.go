package repository

import (
	"testing"
	"time"

	"github.com/lshigami/Marmoset/internal/apperrors"
	"github.com/lshigami/Marmoset/internal/model"
	"github.com/stretchr/testify/require"
)

func TestBabyRepository_CreateAndFind(t *testing.T) {
	repo := NewBabyRepository(newTestDB(t))

	baby := model.Baby{UserID: "user-1", Nickname: "Ollie", Birthday: "2023-11-02"}
	require.NoError(t, repo.Create(&baby))
	require.NotEmpty(t, baby.ID)

	got, err := repo.FindByID(baby.ID)
	require.NoError(t, err)
	require.Equal(t, "Ollie", got.Nickname)
	require.Equal(t, "2023-11-02", got.Birthday)
}

func TestBabyRepository_FindByUserID(t *testing.T) {
	repo := NewBabyRepository(newTestDB(t))

	require.NoError(t, repo.Create(&model.Baby{UserID: "user-1", Nickname: "A", Birthday: "2023-01-01"}))
	require.NoError(t, repo.Create(&model.Baby{UserID: "user-1", Nickname: "B", Birthday: "2024-01-01"}))
	require.NoError(t, repo.Create(&model.Baby{UserID: "user-2", Nickname: "C", Birthday: "2024-01-01"}))

	babies, err := repo.FindByUserID("user-1")
	require.NoError(t, err)
	require.Len(t, babies, 2)
}

func TestBabyRepository_Update(t *testing.T) {
	repo := NewBabyRepository(newTestDB(t))

	baby := model.Baby{UserID: "user-1", Nickname: "Before", Birthday: "2023-01-01"}
	require.NoError(t, repo.Create(&baby))

	baby.Nickname = "After"
	baby.Birthday = "2023-02-02"
	require.NoError(t, repo.Update(&baby))

	got, err := repo.FindByID(baby.ID)
	require.NoError(t, err)
	require.Equal(t, "After", got.Nickname)
	require.Equal(t, "2023-02-02", got.Birthday)
}

func TestBabyRepository_DeleteWithRecordsCascades(t *testing.T) {
	db := newTestDB(t)
	babyRepo := NewBabyRepository(db)
	assessmentRepo := NewAssessmentRepository(db)

	baby := model.Baby{UserID: "user-1", Nickname: "Ollie", Birthday: "2023-11-02"}
	require.NoError(t, babyRepo.Create(&baby))
	require.NoError(t, assessmentRepo.Create(&model.Assessment{
		BabyID: baby.ID, Score: 10, Rank: 3, AssessmentDate: time.Now(),
	}))
	require.NoError(t, assessmentRepo.Create(&model.Assessment{
		BabyID: baby.ID, Score: 14, Rank: 2, AssessmentDate: time.Now(),
	}))

	require.NoError(t, babyRepo.DeleteWithRecords(baby.ID))

	_, err := babyRepo.FindByID(baby.ID)
	require.ErrorIs(t, err, apperrors.ErrBabyNotFound)

	records, err := assessmentRepo.FindByBabyID(baby.ID)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestBabyRepository_DeleteMissing(t *testing.T) {
	repo := NewBabyRepository(newTestDB(t))

	err := repo.DeleteWithRecords("1b5fca14-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, apperrors.ErrBabyNotFound)
}
