package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"travelshare/app/auth"
	"travelshare/app/models"
	"travelshare/app/response"
	"travelshare/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	service *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(service *services.CommentService) *CommentController {
	return &CommentController{service: service}
}

func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.service.ListComments()
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, comments)
}

func (cc *CommentController) ByUser(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.service.ListCommentsByUser(mux.Vars(r)["user"])
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, comments)
}

func (cc *CommentController) ByPublication(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.service.ListCommentsByPublication(mux.Vars(r)["publication"])
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, comments)
}

func (cc *CommentController) Show(w http.ResponseWriter, r *http.Request) {
	comment, err := cc.service.GetComment(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, comment)
}

// Create handles comment creation
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var comment models.Comment
	if err := decodeBody(w, r, &comment); err != nil {
		response.Error(w, r, err)
		return
	}
	if comment.User == "" {
		comment.User = auth.UserID(r.Context())
	}

	if err := cc.service.CreateComment(&comment); err != nil {
		response.Error(w, r, err)
		return
	}
	response.Success(w, http.StatusCreated, "Comment created successfully", comment)
}

// Update merges the request body onto a comment
func (cc *CommentController) Update(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	comment, err := cc.service.UpdateComment(mux.Vars(r)["id"], body)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.Success(w, http.StatusOK, "Comment updated successfully", comment)
}

// Delete handles comment deletion
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := cc.service.DeleteComment(mux.Vars(r)["id"]); err != nil {
		response.Error(w, r, err)
		return
	}
	response.Success(w, http.StatusNoContent, "Comment deleted successfully", nil)
}
