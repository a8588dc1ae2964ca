package repositories

import "travelshare/app/models"

// PublicationRepository defines the interface for publication data access
type PublicationRepository interface {
	Create(publication *models.Publication) error
	GetByID(id string) (*models.Publication, error)
	List() ([]*models.Publication, error)
	ListByUser(user string) ([]*models.Publication, error)
	Update(publication *models.Publication) error
	Delete(id string) (*models.Publication, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id string) (*models.Comment, error)
	List() ([]*models.Comment, error)
	ListByUser(user string) ([]*models.Comment, error)
	ListByPublication(publicationID string) ([]*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id string) (*models.Comment, error)
}

// ReactionRepository defines the interface for reaction data access
type ReactionRepository interface {
	Create(reaction *models.Reaction) error
	GetByID(id string) (*models.Reaction, error)
	List() ([]*models.Reaction, error)
	ListByPublication(publicationID string) ([]*models.Reaction, error)
	ListByComment(commentID string) ([]*models.Reaction, error)
	ListUnseenByUser(user string) ([]*models.Reaction, error)
	// ListByUserAndTarget returns the user's reactions on one publication or
	// comment, oldest first.
	ListByUserAndTarget(user string, kind models.TargetKind, targetID string) ([]*models.Reaction, error)
	Update(reaction *models.Reaction) error
	Delete(id string) (*models.Reaction, error)
}
