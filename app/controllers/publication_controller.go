package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"travelshare/app/auth"
	"travelshare/app/models"
	"travelshare/app/response"
	"travelshare/app/services"
)

// PublicationController handles HTTP requests for publications
type PublicationController struct {
	service *services.PublicationService
}

// NewPublicationController creates a new PublicationController
func NewPublicationController(service *services.PublicationService) *PublicationController {
	return &PublicationController{service: service}
}

// Index lists every publication
func (pc *PublicationController) Index(w http.ResponseWriter, r *http.Request) {
	publications, err := pc.service.ListPublications()
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, publications)
}

// ByUser lists the publications of the user in the path
func (pc *PublicationController) ByUser(w http.ResponseWriter, r *http.Request) {
	publications, err := pc.service.ListPublicationsByUser(mux.Vars(r)["user"])
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, publications)
}

// Show returns a single publication
func (pc *PublicationController) Show(w http.ResponseWriter, r *http.Request) {
	publication, err := pc.service.GetPublication(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, publication)
}

// Create handles publication creation
func (pc *PublicationController) Create(w http.ResponseWriter, r *http.Request) {
	var publication models.Publication
	if err := decodeBody(w, r, &publication); err != nil {
		response.Error(w, r, err)
		return
	}
	if publication.User == "" {
		publication.User = auth.UserID(r.Context())
	}

	if err := pc.service.CreatePublication(&publication); err != nil {
		response.Error(w, r, err)
		return
	}
	response.Success(w, http.StatusCreated, "Publication created successfully", publication)
}

// Update merges the request body onto a publication
func (pc *PublicationController) Update(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	publication, err := pc.service.UpdatePublication(mux.Vars(r)["id"], body)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.Success(w, http.StatusOK, "Publication updated successfully", publication)
}

// Delete handles publication deletion
func (pc *PublicationController) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := pc.service.DeletePublication(mux.Vars(r)["id"]); err != nil {
		response.Error(w, r, err)
		return
	}
	response.Success(w, http.StatusNoContent, "Publication deleted successfully", nil)
}
