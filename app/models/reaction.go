package models

import (
	"time"

	"travelshare/app/apperrors"
)

// Validate checks the reaction fields and that it targets exactly one of
// a publication or a comment.
func (r *Reaction) Validate() error {
	if r.Publication != "" && r.Comment != "" {
		return apperrors.Validation("Validation failed", apperrors.FieldError{
			Msg: "reaction bound to a publication and a comment at once",
		})
	}
	if r.Publication == "" && r.Comment == "" {
		return apperrors.Validation("Validation failed", apperrors.FieldError{
			Msg: "reaction must target a publication or a comment",
		})
	}
	if err := validate.Struct(r); err != nil {
		return validationError("reaction", err)
	}
	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (r *Reaction) BeforeCreate() {
	stamp(&r.CreatedAt, &r.UpdatedAt)
}

// Touch marks the reaction as modified now.
func (r *Reaction) Touch() {
	r.UpdatedAt = time.Now().UTC()
}

// Target returns the kind and id of what the reaction is attached to.
// It is only meaningful on a reaction that passed Validate.
func (r *Reaction) Target() (TargetKind, string) {
	if r.Publication != "" {
		return TargetPublication, r.Publication
	}
	return TargetComment, r.Comment
}
