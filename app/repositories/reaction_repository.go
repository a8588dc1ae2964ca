package repositories

import (
	"github.com/dgraph-io/badger/v4"

	"travelshare/app/models"
)

// BadgerReactionRepository implements ReactionRepository using BadgerDB
type BadgerReactionRepository struct {
	db *badger.DB
}

// NewBadgerReactionRepository creates a new BadgerDB reaction repository
func NewBadgerReactionRepository(db *badger.DB) *BadgerReactionRepository {
	return &BadgerReactionRepository{db: db}
}

// Create stores a new reaction and assigns its id.
func (r *BadgerReactionRepository) Create(reaction *models.Reaction) error {
	reaction.ID = newID()
	reaction.BeforeCreate()

	return r.db.Update(func(txn *badger.Txn) error {
		return putEntity(txn, entityKey(ReactionKeyPrefix, reaction.ID), reaction)
	})
}

// GetByID retrieves a reaction by ID
func (r *BadgerReactionRepository) GetByID(id string) (*models.Reaction, error) {
	return fetchEntity[models.Reaction](r.db, entityKey(ReactionKeyPrefix, id))
}

// List retrieves all reactions
func (r *BadgerReactionRepository) List() ([]*models.Reaction, error) {
	return scanEntities[models.Reaction](r.db, ReactionKeyPrefix, nil)
}

// ListByPublication retrieves the reactions attached to a publication
func (r *BadgerReactionRepository) ListByPublication(publicationID string) ([]*models.Reaction, error) {
	return scanEntities(r.db, ReactionKeyPrefix, func(re *models.Reaction) bool {
		return re.Publication == publicationID
	})
}

// ListByComment retrieves the reactions attached to a comment
func (r *BadgerReactionRepository) ListByComment(commentID string) ([]*models.Reaction, error) {
	return scanEntities(r.db, ReactionKeyPrefix, func(re *models.Reaction) bool {
		return re.Comment == commentID
	})
}

// ListUnseenByUser retrieves the reactions on user's content that user has
// not marked as seen. The user field of a reaction names the owner being
// notified.
func (r *BadgerReactionRepository) ListUnseenByUser(user string) ([]*models.Reaction, error) {
	return scanEntities(r.db, ReactionKeyPrefix, func(re *models.Reaction) bool {
		return re.User == user && !re.Seen
	})
}

// ListByUserAndTarget retrieves user's reactions on a single target, oldest first
func (r *BadgerReactionRepository) ListByUserAndTarget(user string, kind models.TargetKind, targetID string) ([]*models.Reaction, error) {
	return scanEntities(r.db, ReactionKeyPrefix, func(re *models.Reaction) bool {
		if re.User != user {
			return false
		}
		k, id := re.Target()
		return k == kind && id == targetID
	})
}

// Update replaces a stored reaction
func (r *BadgerReactionRepository) Update(reaction *models.Reaction) error {
	reaction.Touch()
	return replaceEntity(r.db, entityKey(ReactionKeyPrefix, reaction.ID), reaction)
}

// Delete removes a reaction and returns the removed document
func (r *BadgerReactionRepository) Delete(id string) (*models.Reaction, error) {
	return removeEntity[models.Reaction](r.db, entityKey(ReactionKeyPrefix, id))
}
