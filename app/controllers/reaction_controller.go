package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"travelshare/app/auth"
	"travelshare/app/models"
	"travelshare/app/response"
	"travelshare/app/services"
)

// ReactionController handles HTTP requests for reactions
type ReactionController struct {
	service *services.ReactionService
}

// NewReactionController creates a new ReactionController
func NewReactionController(service *services.ReactionService) *ReactionController {
	return &ReactionController{service: service}
}

func (rc *ReactionController) Index(w http.ResponseWriter, r *http.Request) {
	reactions, err := rc.service.ListReactions()
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, reactions)
}

func (rc *ReactionController) ByPublication(w http.ResponseWriter, r *http.Request) {
	reactions, err := rc.service.ListReactionsByPublication(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, reactions)
}

func (rc *ReactionController) ByComment(w http.ResponseWriter, r *http.Request) {
	reactions, err := rc.service.ListReactionsByComment(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, reactions)
}

// Unseen lists the reactions the user in the path has not read yet
func (rc *ReactionController) Unseen(w http.ResponseWriter, r *http.Request) {
	reactions, err := rc.service.ListUnseenByUser(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, reactions)
}

func (rc *ReactionController) ReactOnPublication(w http.ResponseWriter, r *http.Request) {
	rc.toggle(w, r, models.TargetPublication)
}

func (rc *ReactionController) ReactOnComment(w http.ResponseWriter, r *http.Request) {
	rc.toggle(w, r, models.TargetComment)
}

func (rc *ReactionController) toggle(w http.ResponseWriter, r *http.Request, target models.TargetKind) {
	body, err := readBody(w, r)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	result, err := rc.service.Toggle(r.Context(), services.ToggleRequest{
		Target:   target,
		TargetID: mux.Vars(r)["id"],
		Payload:  body,
		User:     auth.UserID(r.Context()),
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}

	if result.Outcome == services.ToggleDiscarded {
		response.Success(w, http.StatusNoContent, "Reaction discarded successfully", nil)
		return
	}
	response.Success(w, http.StatusCreated, "Reaction created successfully", result.Reaction)
}

// Read marks a reaction as seen, or applies any other partial update in the body
func (rc *ReactionController) Read(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	reaction, err := rc.service.MarkSeen(r.Context(), mux.Vars(r)["id"], body)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.Success(w, http.StatusOK, "Reaction read successfully", reaction)
}
