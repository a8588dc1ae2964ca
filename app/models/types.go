package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"travelshare/app/apperrors"
)

// Location is the continent a publication is about.
type Location string

const (
	LocationAfrica  Location = "AFRICA"
	LocationAmerica Location = "AMERICA"
	LocationAsia    Location = "ASIA"
	LocationEurope  Location = "EUROPE"
	LocationOceania Location = "OCEANIA"
)

// Category is the kind of trip a publication describes.
type Category string

const (
	CategoryAdventure Category = "ADVENTURE"
	CategoryCity      Category = "CITY"
	CategoryCulture   Category = "CULTURE"
	CategoryNature    Category = "NATURE"
	CategoryRelax     Category = "RELAX"
)

// ReactionKind is the sentiment of a reaction.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "LIKE"
	ReactionLove    ReactionKind = "LOVE"
	ReactionDislike ReactionKind = "DISLIKE"
)

// TargetKind names what a reaction is attached to.
type TargetKind string

const (
	TargetPublication TargetKind = "publication"
	TargetComment     TargetKind = "comment"
)

// Publication is a travel post owned by a user.
type Publication struct {
	ID        string    `json:"id"`
	User      string    `json:"usuario,omitempty"`
	Title     string    `json:"titulo" validate:"notblank"`
	Content   string    `json:"contenido" validate:"notblank"`
	Location  Location  `json:"ubicacion,omitempty" validate:"omitempty,oneof=AFRICA AMERICA ASIA EUROPE OCEANIA"`
	Category  Category  `json:"categoria,omitempty" validate:"omitempty,oneof=ADVENTURE CITY CULTURE NATURE RELAX"`
	Images    []string  `json:"imagenes"`
	CreatedAt time.Time `json:"creado"`
	UpdatedAt time.Time `json:"modificado"`
}

// Comment is a text reply attached to a publication.
type Comment struct {
	ID          string    `json:"id"`
	Publication string    `json:"publicacion_id,omitempty"`
	User        string    `json:"usuario_id,omitempty"`
	Content     string    `json:"contenido_comentario" validate:"notblank"`
	CreatedAt   time.Time `json:"creado"`
	UpdatedAt   time.Time `json:"modificado"`
}

// Reaction is a user's LIKE/LOVE/DISLIKE on exactly one publication or comment.
type Reaction struct {
	ID          string       `json:"id"`
	User        string       `json:"usuario" validate:"notblank"`
	Publication string       `json:"publicacion,omitempty"`
	Comment     string       `json:"comentario,omitempty"`
	Kind        ReactionKind `json:"reaccion" validate:"required,oneof=LIKE LOVE DISLIKE"`
	Seen        bool         `json:"visto"`
	CreatedAt   time.Time    `json:"creado"`
	UpdatedAt   time.Time    `json:"modificado"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire name so clients can match them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// validationError turns validator output into an apperrors validation error.
func validationError(entity string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.Validation(fmt.Sprintf("invalid %s: %v", entity, err))
	}

	details := make([]apperrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, apperrors.FieldError{
			Field: fe.Field(),
			Msg:   fieldMessage(fe),
		})
	}
	return apperrors.Validation("Validation failed", details...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%v is not a valid %s", fe.Value(), fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// stamp sets both timestamps on a new record.
func stamp(created, updated *time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}
