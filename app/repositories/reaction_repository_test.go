package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelshare/app/models"
)

func TestReactionRepository(t *testing.T) {
	store := newTestStore(t)
	repo := NewBadgerReactionRepository(store.DB())

	like := &models.Reaction{User: "U1", Publication: "P1", Kind: models.ReactionLike}
	love := &models.Reaction{User: "U1", Publication: "P1", Kind: models.ReactionLove}
	onComment := &models.Reaction{User: "U1", Comment: "C1", Kind: models.ReactionDislike}
	fromOther := &models.Reaction{User: "U2", Publication: "P1", Kind: models.ReactionLike}
	for _, r := range []*models.Reaction{like, love, onComment, fromOther} {
		require.NoError(t, repo.Create(r))
	}

	t.Run("new reactions are unseen", func(t *testing.T) {
		got, err := repo.GetByID(like.ID)
		require.NoError(t, err)
		assert.False(t, got.Seen)
	})

	t.Run("list by target", func(t *testing.T) {
		byPub, err := repo.ListByPublication("P1")
		require.NoError(t, err)
		assert.Len(t, byPub, 3)

		byComment, err := repo.ListByComment("C1")
		require.NoError(t, err)
		require.Len(t, byComment, 1)
		assert.Equal(t, onComment.ID, byComment[0].ID)
	})

	t.Run("list by user and target oldest first", func(t *testing.T) {
		list, err := repo.ListByUserAndTarget("U1", models.TargetPublication, "P1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, like.ID, list[0].ID)
		assert.Equal(t, love.ID, list[1].ID)

		none, err := repo.ListByUserAndTarget("U1", models.TargetComment, "P1")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("unseen listing follows the seen flag", func(t *testing.T) {
		unseen, err := repo.ListUnseenByUser("U1")
		require.NoError(t, err)
		assert.Len(t, unseen, 3)

		like.Seen = true
		require.NoError(t, repo.Update(like))

		unseen, err = repo.ListUnseenByUser("U1")
		require.NoError(t, err)
		assert.Len(t, unseen, 2)
		for _, r := range unseen {
			assert.NotEqual(t, like.ID, r.ID)
		}
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := repo.Delete(fromOther.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ReactionLike, deleted.Kind)

		all, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}
