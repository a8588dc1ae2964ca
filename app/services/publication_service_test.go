package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelshare/app/apperrors"
	"travelshare/app/models"
	"travelshare/app/repositories/mock"
)

func TestCreatePublication(t *testing.T) {
	repo := mock.NewPublicationRepository()
	service := NewPublicationService(repo)

	t.Run("valid publication", func(t *testing.T) {
		pub := &models.Publication{User: "U1", Title: "Iceland", Content: "Ring road", Location: models.LocationEurope}
		require.NoError(t, service.CreatePublication(pub))
		assert.NotEmpty(t, pub.ID)

		got, err := service.GetPublication(pub.ID)
		require.NoError(t, err)
		assert.Equal(t, "Iceland", got.Title)
		assert.Equal(t, []string{}, got.Images)
	})

	t.Run("client timestamps are ignored", func(t *testing.T) {
		past := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
		pub := &models.Publication{Title: "Old", Content: "Trip", CreatedAt: past}
		require.NoError(t, service.CreatePublication(pub))
		assert.True(t, pub.CreatedAt.After(past))
	})

	t.Run("missing title", func(t *testing.T) {
		before, _ := service.ListPublications()
		err := service.CreatePublication(&models.Publication{Content: "No title"})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.KindValidation))

		after, _ := service.ListPublications()
		assert.Len(t, after, len(before))
	})
}

func TestGetPublicationNotFound(t *testing.T) {
	service := NewPublicationService(mock.NewPublicationRepository())
	_, err := service.GetPublication("missing")
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestUpdatePublication(t *testing.T) {
	repo := mock.NewPublicationRepository()
	service := NewPublicationService(repo)

	pub := &models.Publication{User: "U1", Title: "Rome", Content: "Pasta", Category: models.CategoryCity}
	require.NoError(t, service.CreatePublication(pub))

	t.Run("partial merge keeps other fields", func(t *testing.T) {
		updated, err := service.UpdatePublication(pub.ID, []byte(`{"titulo":"Rome again","id":"hijack","creado":"2000-01-01T00:00:00Z"}`))
		require.NoError(t, err)
		assert.Equal(t, "Rome again", updated.Title)
		assert.Equal(t, "Pasta", updated.Content)
		assert.Equal(t, models.CategoryCity, updated.Category)
		assert.Equal(t, pub.ID, updated.ID)
		assert.True(t, pub.CreatedAt.Equal(updated.CreatedAt))
		assert.False(t, updated.UpdatedAt.Before(pub.UpdatedAt))
	})

	t.Run("invalid merge leaves the stored document alone", func(t *testing.T) {
		_, err := service.UpdatePublication(pub.ID, []byte(`{"titulo":"  "}`))
		assert.True(t, apperrors.Is(err, apperrors.KindValidation))

		got, err := service.GetPublication(pub.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rome again", got.Title)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := service.UpdatePublication(pub.ID, []byte(`{"titulo":`))
		assert.True(t, apperrors.Is(err, apperrors.KindBadRequest))
	})

	t.Run("missing publication", func(t *testing.T) {
		_, err := service.UpdatePublication("missing", []byte(`{"titulo":"x"}`))
		assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})
}

func TestDeletePublication(t *testing.T) {
	service := NewPublicationService(mock.NewPublicationRepository())
	pub := &models.Publication{Title: "Cairo", Content: "Pyramids"}
	require.NoError(t, service.CreatePublication(pub))

	deleted, err := service.DeletePublication(pub.ID)
	require.NoError(t, err)
	assert.Equal(t, pub.ID, deleted.ID)

	_, err = service.GetPublication(pub.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	_, err = service.DeletePublication(pub.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestListPublicationsByUser(t *testing.T) {
	service := NewPublicationService(mock.NewPublicationRepository())
	for _, user := range []string{"U1", "U2", "U1"} {
		require.NoError(t, service.CreatePublication(&models.Publication{User: user, Title: "T", Content: "C"}))
	}

	mine, err := service.ListPublicationsByUser("U1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := service.ListPublicationsByUser("U9")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPublicationStoreFailure(t *testing.T) {
	repo := mock.NewPublicationRepository()
	repo.FailWith = errors.New("disk on fire")
	service := NewPublicationService(repo)

	_, err := service.ListPublications()
	assert.True(t, apperrors.Is(err, apperrors.KindInternal))

	_, err = service.GetPublication("any")
	assert.True(t, apperrors.Is(err, apperrors.KindInternal))
}
