package services

import (
	"context"
	"fmt"
	"time"

	"travelshare/app/apperrors"
	"travelshare/app/logging"
	"travelshare/app/models"
	"travelshare/app/repositories"
)

// ReplaceMode decides what happens to a user's earlier reaction when they
// react again with a different kind.
type ReplaceMode string

const (
	// ReplaceKeep leaves earlier reactions in place next to the new one.
	ReplaceKeep ReplaceMode = "keep"
	// ReplaceDelete removes earlier reactions before creating the new one.
	ReplaceDelete ReplaceMode = "replace"
)

// ToggleOutcome reports what a toggle did.
type ToggleOutcome string

const (
	ToggleCreated   ToggleOutcome = "created"
	ToggleDiscarded ToggleOutcome = "discarded"
)

// ToggleRequest is a reaction posted on a publication or comment path.
type ToggleRequest struct {
	Target   models.TargetKind
	TargetID string
	// Payload is the raw request body. Its fields win over the path target.
	Payload []byte
	// User is used when the payload names no user.
	User string
}

// ToggleResult carries the created or discarded reaction.
type ToggleResult struct {
	Outcome  ToggleOutcome
	Reaction *models.Reaction
}

// ReactionService handles business logic for reactions
type ReactionService struct {
	repo      repositories.ReactionRepository
	publisher EventPublisher
	mode      ReplaceMode
	locks     stripedLock
}

// NewReactionService creates a new ReactionService. A nil publisher drops
// events.
func NewReactionService(repo repositories.ReactionRepository, publisher EventPublisher, mode ReplaceMode) *ReactionService {
	if mode != ReplaceDelete {
		mode = ReplaceKeep
	}
	return &ReactionService{repo: repo, publisher: publisher, mode: mode}
}

func (s *ReactionService) ListReactions() ([]*models.Reaction, error) {
	reactions, err := s.repo.List()
	if err != nil {
		return nil, apperrors.Internal("Error fetching all reactions", err)
	}
	return reactions, nil
}

func (s *ReactionService) ListReactionsByPublication(publicationID string) ([]*models.Reaction, error) {
	reactions, err := s.repo.ListByPublication(publicationID)
	if err != nil {
		return nil, apperrors.Internal("Error fetching reactions by publication", err)
	}
	return reactions, nil
}

func (s *ReactionService) ListReactionsByComment(commentID string) ([]*models.Reaction, error) {
	reactions, err := s.repo.ListByComment(commentID)
	if err != nil {
		return nil, apperrors.Internal("Error fetching reactions by comment", err)
	}
	return reactions, nil
}

// ListUnseenByUser returns user's reactions not yet marked as seen
func (s *ReactionService) ListUnseenByUser(user string) ([]*models.Reaction, error) {
	reactions, err := s.repo.ListUnseenByUser(user)
	if err != nil {
		return nil, apperrors.Internal("Error fetching reactions by user", err)
	}
	return reactions, nil
}

// GetReaction retrieves a reaction by ID
func (s *ReactionService) GetReaction(id string) (*models.Reaction, error) {
	reaction, err := s.repo.GetByID(id)
	if err != nil {
		return nil, storeError(err, "Reaction not found", "Error fetching reaction")
	}
	return reaction, nil
}

// Toggle reacts on a publication or comment. Reacting with the same kind as
// the user's oldest reaction on that target discards it; any other kind
// creates a new reaction, after removing earlier ones in replace mode.
func (s *ReactionService) Toggle(ctx context.Context, req ToggleRequest) (*ToggleResult, error) {
	candidate := &models.Reaction{}
	switch req.Target {
	case models.TargetPublication:
		candidate.Publication = req.TargetID
	case models.TargetComment:
		candidate.Comment = req.TargetID
	default:
		return nil, apperrors.BadRequest(fmt.Sprintf("unknown reaction target %q", req.Target), nil)
	}
	if err := mergePatch(candidate, req.Payload); err != nil {
		return nil, err
	}
	if candidate.User == "" {
		candidate.User = req.User
	}
	// Identity, read state and timestamps are server-owned.
	candidate.ID = ""
	candidate.Seen = false
	candidate.CreatedAt = time.Time{}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	kind, targetID := candidate.Target()
	unlock := s.locks.lock(candidate.User + "\x00" + string(kind) + "\x00" + targetID)
	defer unlock()

	existing, err := s.repo.ListByUserAndTarget(candidate.User, kind, targetID)
	if err != nil {
		return nil, apperrors.Internal("Error fetching reaction by user", err)
	}

	result, err := s.apply(candidate, existing)
	if err != nil {
		return nil, err
	}

	reactionToggles.WithLabelValues(string(kind), string(result.Outcome)).Inc()
	event := EventReactionCreated
	if result.Outcome == ToggleDiscarded {
		event = EventReactionDiscarded
	}
	s.publish(ctx, newEvent(event, result.Reaction))
	return result, nil
}

func (s *ReactionService) apply(candidate *models.Reaction, existing []*models.Reaction) (*ToggleResult, error) {
	// Only the oldest reaction of the pair is compared.
	if len(existing) > 0 && existing[0].Kind == candidate.Kind {
		oldest := existing[0]
		if _, err := s.repo.Delete(oldest.ID); err != nil {
			return nil, storeError(err, "Reaction not found", "Error deleting reaction")
		}
		return &ToggleResult{Outcome: ToggleDiscarded, Reaction: oldest}, nil
	}

	if s.mode == ReplaceDelete {
		for _, prior := range existing {
			if _, err := s.repo.Delete(prior.ID); err != nil {
				return nil, storeError(err, "Reaction not found", "Error deleting reaction")
			}
		}
	}

	if err := s.repo.Create(candidate); err != nil {
		return nil, apperrors.Internal("Error creating a reaction", err)
	}
	return &ToggleResult{Outcome: ToggleCreated, Reaction: candidate}, nil
}

// MarkSeen applies a partial update, typically {"visto": true}, to a
// reaction.
func (s *ReactionService) MarkSeen(ctx context.Context, id string, patch []byte) (*models.Reaction, error) {
	existing, err := s.GetReaction(id)
	if err != nil {
		return nil, err
	}

	wasSeen := existing.Seen
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
		return nil, storeError(err, "Reaction not found", "Error updating a reaction")
	}

	if !wasSeen && existing.Seen {
		s.publish(ctx, newEvent(EventReactionSeen, existing))
	}
	return existing, nil
}

// DeleteReaction removes a reaction
func (s *ReactionService) DeleteReaction(id string) (*models.Reaction, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return nil, storeError(err, "Reaction not found", "Error deleting reaction")
	}
	return deleted, nil
}

func (s *ReactionService) publish(ctx context.Context, event Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logging.Ctx(ctx).Warn().Err(err).
			Str("event", string(event.Type)).
			Str("reaction_id", event.ReactionID).
			Msg("failed to publish reaction event")
	}
}
