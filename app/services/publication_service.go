package services

import (
	"time"

	"travelshare/app/apperrors"
	"travelshare/app/models"
	"travelshare/app/repositories"
)

// PublicationService handles business logic for publications
type PublicationService struct {
	repo repositories.PublicationRepository
}

// NewPublicationService creates a new PublicationService
func NewPublicationService(repo repositories.PublicationRepository) *PublicationService {
	return &PublicationService{repo: repo}
}

// ListPublications returns every publication
func (s *PublicationService) ListPublications() ([]*models.Publication, error) {
	publications, err := s.repo.List()
	if err != nil {
		return nil, apperrors.Internal("Error fetching publications", err)
	}
	return publications, nil
}

// ListPublicationsByUser returns the publications created by user
func (s *PublicationService) ListPublicationsByUser(user string) ([]*models.Publication, error) {
	publications, err := s.repo.ListByUser(user)
	if err != nil {
		return nil, apperrors.Internal("Error fetching publications by user", err)
	}
	return publications, nil
}

// GetPublication retrieves a publication by ID
func (s *PublicationService) GetPublication(id string) (*models.Publication, error) {
	publication, err := s.repo.GetByID(id)
	if err != nil {
		return nil, storeError(err, "Publication not found", "Error fetching publication")
	}
	return publication, nil
}

// CreatePublication validates and stores a new publication
func (s *PublicationService) CreatePublication(publication *models.Publication) error {
	if err := publication.Validate(); err != nil {
		return err
	}

	// Timestamps are server-assigned.
	publication.CreatedAt = time.Time{}
	if err := s.repo.Create(publication); err != nil {
		return apperrors.Internal("Error creating publication", err)
	}
	return nil
}

// UpdatePublication merges patch onto the stored publication and saves it.
// The id and creation time cannot be changed.
func (s *PublicationService) UpdatePublication(id string, patch []byte) (*models.Publication, error) {
	existing, err := s.GetPublication(id)
	if err != nil {
		return nil, err
	}

	createdAt := existing.CreatedAt
	if err := mergePatch(existing, patch); err != nil {
		return nil, err
	}
	existing.ID = id
	existing.CreatedAt = createdAt

	if err := existing.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(existing); err != nil {
		return nil, storeError(err, "Publication not found", "Error updating publication")
	}
	return existing, nil
}

// DeletePublication removes a publication. Its comments are left in place.
func (s *PublicationService) DeletePublication(id string) (*models.Publication, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return nil, storeError(err, "Publication not found", "Error deleting publication")
	}
	return deleted, nil
}
