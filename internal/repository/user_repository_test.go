package repository

import (
	"testing"
	"time"

	"github.com/lshigami/Marmoset/internal/apperrors"
	"github.com/lshigami/Marmoset/internal/model"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFindByOpenID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := model.User{OpenID: "wx-open-id-1", NickName: "Sam", LoginTime: time.Now()}
	require.NoError(t, repo.Create(&user))
	require.NotEmpty(t, user.ID)

	got, err := repo.FindByOpenID("wx-open-id-1")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.Equal(t, "Sam", got.NickName)
}

func TestUserRepository_FindByOpenIDMissing(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByOpenID("never-seen")
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := model.User{OpenID: "wx-open-id-1", NickName: "Old"}
	require.NoError(t, repo.Create(&user))

	user.NickName = "New"
	user.AvatarURL = "https://cdn.example.com/avatar.png"
	require.NoError(t, repo.Update(&user))

	got, err := repo.FindByOpenID("wx-open-id-1")
	require.NoError(t, err)
	require.Equal(t, "New", got.NickName)
	require.Equal(t, "https://cdn.example.com/avatar.png", got.AvatarURL)
}
