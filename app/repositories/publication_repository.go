package repositories

import (
	"github.com/dgraph-io/badger/v4"

	"travelshare/app/models"
)

// BadgerPublicationRepository implements PublicationRepository using BadgerDB
type BadgerPublicationRepository struct {
	db *badger.DB
}

// NewBadgerPublicationRepository creates a new BadgerDB publication repository
func NewBadgerPublicationRepository(db *badger.DB) *BadgerPublicationRepository {
	return &BadgerPublicationRepository{db: db}
}

// Create stores a new publication and assigns its id.
func (r *BadgerPublicationRepository) Create(publication *models.Publication) error {
	publication.ID = newID()
	publication.BeforeCreate()

	return r.db.Update(func(txn *badger.Txn) error {
		return putEntity(txn, entityKey(PublicationKeyPrefix, publication.ID), publication)
	})
}

// GetByID retrieves a publication by ID
func (r *BadgerPublicationRepository) GetByID(id string) (*models.Publication, error) {
	return fetchEntity[models.Publication](r.db, entityKey(PublicationKeyPrefix, id))
}

// List retrieves all publications in creation order
func (r *BadgerPublicationRepository) List() ([]*models.Publication, error) {
	return scanEntities[models.Publication](r.db, PublicationKeyPrefix, nil)
}

// ListByUser retrieves the publications created by user
func (r *BadgerPublicationRepository) ListByUser(user string) ([]*models.Publication, error) {
	return scanEntities(r.db, PublicationKeyPrefix, func(p *models.Publication) bool {
		return p.User == user
	})
}

// Update replaces a stored publication
func (r *BadgerPublicationRepository) Update(publication *models.Publication) error {
	publication.Touch()
	return replaceEntity(r.db, entityKey(PublicationKeyPrefix, publication.ID), publication)
}

// Delete removes a publication and returns the removed document
func (r *BadgerPublicationRepository) Delete(id string) (*models.Publication, error) {
	return removeEntity[models.Publication](r.db, entityKey(PublicationKeyPrefix, id))
}
