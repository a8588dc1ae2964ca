package repositories

import (
	"github.com/dgraph-io/badger/v4"

	"travelshare/app/models"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerDB comment repository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create stores a new comment and assigns its id. The referenced
// publication is not checked.
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	comment.ID = newID()
	comment.BeforeCreate()

	return r.db.Update(func(txn *badger.Txn) error {
		return putEntity(txn, entityKey(CommentKeyPrefix, comment.ID), comment)
	})
}

// GetByID retrieves a comment by ID
func (r *BadgerCommentRepository) GetByID(id string) (*models.Comment, error) {
	return fetchEntity[models.Comment](r.db, entityKey(CommentKeyPrefix, id))
}

// List retrieves all comments
func (r *BadgerCommentRepository) List() ([]*models.Comment, error) {
	return scanEntities[models.Comment](r.db, CommentKeyPrefix, nil)
}

// ListByUser retrieves the comments written by user
func (r *BadgerCommentRepository) ListByUser(user string) ([]*models.Comment, error) {
	return scanEntities(r.db, CommentKeyPrefix, func(c *models.Comment) bool {
		return c.User == user
	})
}

// ListByPublication retrieves all comments for a publication
func (r *BadgerCommentRepository) ListByPublication(publicationID string) ([]*models.Comment, error) {
	return scanEntities(r.db, CommentKeyPrefix, func(c *models.Comment) bool {
		return c.Publication == publicationID
	})
}

// Update replaces a stored comment
func (r *BadgerCommentRepository) Update(comment *models.Comment) error {
	comment.Touch()
	return replaceEntity(r.db, entityKey(CommentKeyPrefix, comment.ID), comment)
}

// Delete removes a comment and returns the removed document
func (r *BadgerCommentRepository) Delete(id string) (*models.Comment, error) {
	return removeEntity[models.Comment](r.db, entityKey(CommentKeyPrefix, id))
}
