package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/bigstack/internal/models"
	"github.com/sbilibin2017/bigstack/internal/services"
)

//go:generate mockgen -source=profile_public.go -destination=profile_public_mock.go -package=handlers

// PublicProfileGetter returns a public profile by username.
type PublicProfileGetter interface {
	GetByUsername(ctx context.Context, username string) (*models.PublicProfile, error)
}

// PublicProfileLister returns every public profile.
type PublicProfileLister interface {
	List(ctx context.Context) ([]models.PublicProfile, error)
}

// NewGetPublicProfileHandler returns an HTTP handler for a profile looked up by username.
// @Summary Get profile by username
// @Tags profile
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.PublicProfile "Profile"
// @Failure 404 {object} handlers.ErrorResponse "user not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/profile/{username} [get]
func NewGetPublicProfileHandler(svc PublicProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := svc.GetByUsername(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			if errors.Is(err, services.ErrProfileNotFound) {
				writeError(w, http.StatusNotFound, "user not found")
				return
			}
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewListProfilesHandler returns an HTTP handler listing every profile.
// @Summary List all profiles
// @Tags profile
// @Produce json
// @Success 200 {array} models.PublicProfile "Profiles"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/profile/find/everyone [get]
func NewListProfilesHandler(svc PublicProfileLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, profiles)
	}
}
