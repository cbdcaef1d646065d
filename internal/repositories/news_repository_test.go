package repositories_test

import (
	"testing"

	"greenroots_backend/internal/models"
	"greenroots_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsRepository_CreateAppliesDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewNewsRepository()

	item := &models.News{
		Title:   "Planting day",
		Excerpt: "500 trees planted",
		Link:    "/news/planting-day",
	}
	require.NoError(t, repo.Create(db, item))

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, models.DefaultNewsColor, item.Color)
	assert.False(t, item.CreatedAt.IsZero())
	assert.False(t, item.UpdatedAt.IsZero())
}

func TestNewsRepository_SaveKeepsUpdatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewNewsRepository()

	item := &models.News{
		Title:   "Original title",
		Excerpt: "Excerpt",
		Link:    "/news/x",
	}
	require.NoError(t, repo.Create(db, item))
	createdUpdatedAt := item.UpdatedAt

	item.Title = "Edited title"
	require.NoError(t, repo.Save(db, item))

	reloaded, err := repo.FindByID(db, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited title", reloaded.Title)
	assert.True(t, reloaded.UpdatedAt.Equal(createdUpdatedAt),
		"UpdatedAt must keep its creation value, got %v want %v", reloaded.UpdatedAt, createdUpdatedAt)
}

func TestNewsRepository_CreateKeepsExplicitColor(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewNewsRepository()

	item := &models.News{
		Title:   "Colored",
		Excerpt: "Excerpt",
		Link:    "/news/colored",
		Color:   "#00AA55",
	}
	require.NoError(t, repo.Create(db, item))
	assert.Equal(t, "#00AA55", item.Color)
}

func TestNewsRepository_DeleteByID_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewNewsRepository()

	item := &models.News{Title: "T", Excerpt: "E", Link: "/l"}
	require.NoError(t, repo.Create(db, item))

	require.NoError(t, repo.DeleteByID(db, item.ID))
	assert.NoError(t, repo.DeleteByID(db, item.ID))

	_, err := repo.FindByID(db, item.ID)
	assert.ErrorIs(t, err, repositories.ErrNewsNotFound)
}
