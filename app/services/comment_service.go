package services

import (
	"time"

	"travelshare/app/apperrors"
	"travelshare/app/models"
	"travelshare/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	repo repositories.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(repo repositories.CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

func (s *CommentService) ListComments() ([]*models.Comment, error) {
	comments, err := s.repo.List()
	if err != nil {
		return nil, apperrors.Internal("Error fetching comments", err)
	}
	return comments, nil
}

func (s *CommentService) ListCommentsByUser(user string) ([]*models.Comment, error) {
	comments, err := s.repo.ListByUser(user)
	if err != nil {
		return nil, apperrors.Internal("Error fetching comments by user", err)
	}
	return comments, nil
}

func (s *CommentService) ListCommentsByPublication(publicationID string) ([]*models.Comment, error) {
	comments, err := s.repo.ListByPublication(publicationID)
	if err != nil {
		return nil, apperrors.Internal("Error fetching comments by publication", err)
	}
	return comments, nil
}

// GetComment retrieves a comment by ID
func (s *CommentService) GetComment(id string) (*models.Comment, error) {
	comment, err := s.repo.GetByID(id)
	if err != nil {
		return nil, storeError(err, "Comment not found", "Error fetching comment")
	}
	return comment, nil
}

// CreateComment validates and stores a new comment. The publication it
// points at is not required to exist.
func (s *CommentService) CreateComment(comment *models.Comment) error {
	if err := comment.Validate(); err != nil {
		return err
	}

	comment.CreatedAt = time.Time{}
	if err := s.repo.Create(comment); err != nil {
		return apperrors.Internal("Error creating comment", err)
	}
	return nil
}

// UpdateComment merges patch onto the stored comment and saves it
func (s *CommentService) UpdateComment(id string, patch []byte) (*models.Comment, error) {
	existing, err := s.GetComment(id)
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
		return nil, storeError(err, "Comment not found", "Error updating comment")
	}
	return existing, nil
}

// DeleteComment removes a comment
func (s *CommentService) DeleteComment(id string) (*models.Comment, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return nil, storeError(err, "Comment not found", "Error deleting comment")
	}
	return deleted, nil
}
