package services

import (
	"context"
	"time"

	"travelshare/app/models"
)

// EventType is the subject suffix of a reaction notification.
type EventType string

const (
	EventReactionCreated   EventType = "reactions.created"
	EventReactionDiscarded EventType = "reactions.discarded"
	EventReactionSeen      EventType = "reactions.seen"
)

// Event notifies other systems about a reaction change.
type Event struct {
	Type       EventType           `json:"type"`
	ReactionID string              `json:"reaction_id"`
	User       string              `json:"usuario"`
	Target     models.TargetKind   `json:"target"`
	TargetID   string              `json:"target_id"`
	Kind       models.ReactionKind `json:"reaccion"`
	OccurredAt time.Time           `json:"occurred_at"`
}

// EventPublisher delivers events. Implementations must be safe for
// concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

func newEvent(t EventType, r *models.Reaction) Event {
	target, targetID := r.Target()
	return Event{
		Type:       t,
		ReactionID: r.ID,
		User:       r.User,
		Target:     target,
		TargetID:   targetID,
		Kind:       r.Kind,
		OccurredAt: time.Now().UTC(),
	}
}
