package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/sbilibin2017/bigstack/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

// ProfileGetter returns the profile owned by a person.
type ProfileGetter interface {
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error)
}

// ProfileSaver creates or updates the profile owned by a person.
type ProfileSaver interface {
	Save(ctx context.Context, userID primitive.ObjectID, upd models.ProfileUpdate) (*models.Profile, bool, error)
}

// ProfileDeleter removes a person together with their profile.
type ProfileDeleter interface {
	Delete(ctx context.Context, userID primitive.ObjectID) error
}

// ProfileRequest represents the JSON body for creating or updating a profile.
// Empty fields are left untouched.
// swagger:model ProfileRequest
type ProfileRequest struct {
	// Unique username, required on creation
	// default: john_doe
	Username string `json:"username"`

	// Personal website
	Website string `json:"website"`

	// Country
	Country string `json:"country"`

	// Portfolio link
	Portfolio string `json:"portfolio"`

	// Comma separated languages
	// default: go,python
	Languages string `json:"languages"`

	// YouTube link
	YouTube string `json:"youtube"`

	// Facebook link
	Facebook string `json:"facebook"`

	// Instagram link
	Instagram string `json:"instagram"`
}

func (req ProfileRequest) toUpdate() models.ProfileUpdate {
	optional := func(s string) *string {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		return &s
	}

	return models.ProfileUpdate{
		Username:  optional(req.Username),
		Website:   optional(req.Website),
		Country:   optional(req.Country),
		Portfolio: optional(req.Portfolio),
		Languages: splitLanguages(req.Languages),
		YouTube:   optional(req.YouTube),
		Facebook:  optional(req.Facebook),
		Instagram: optional(req.Instagram),
	}
}

// splitLanguages splits "a, b,,c" into [a b c]. Nil when nothing is left.
func splitLanguages(s string) []string {
	var languages []string
	for _, lang := range strings.Split(s, ",") {
		if lang = strings.TrimSpace(lang); lang != "" {
			languages = append(languages, lang)
		}
	}
	return languages
}

// NewGetProfileHandler returns an HTTP handler for the caller's profile.
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.Profile "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/profile/ [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person, ok := currentPerson(w, r)
		if !ok {
			return
		}

		profile, err := svc.GetByUser(r.Context(), person.ID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewSaveProfileHandler returns an HTTP handler that creates or updates the caller's profile.
// @Summary Create or update own profile
// @Description Updates the existing profile in place, or creates it when absent (username required).
// @Tags profile
// @Accept json
// @Produce json
// @Param profileRequest body handlers.ProfileRequest true "Profile fields"
// @Success 200 {object} models.Profile "Profile updated"
// @Success 201 {object} models.Profile "Profile created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Username already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/profile/ [post]
// @Security BearerAuth
func NewSaveProfileHandler(svc ProfileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person, ok := currentPerson(w, r)
		if !ok {
			return
		}

		var req ProfileRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		profile, created, err := svc.Save(r.Context(), person.ID, req.toUpdate())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, profile)
	}
}

// NewDeleteProfileHandler returns an HTTP handler that deletes the caller's profile and account.
// @Summary Delete own profile and account
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.MessageResponse "delete was successful"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/profile/ [delete]
// @Security BearerAuth
func NewDeleteProfileHandler(svc ProfileDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person, ok := currentPerson(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), person.ID); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "delete was successful"})
	}
}
