package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/bigstack/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=workrole.go -destination=workrole_mock.go -package=handlers

// WorkRoleAdder prepends a work-history entry to a profile.
type WorkRoleAdder interface {
	AddWorkRole(ctx context.Context, userID primitive.ObjectID, role models.WorkRole) (*models.Profile, error)
}

// WorkRoleRemover removes a work-history entry from a profile.
type WorkRoleRemover interface {
	RemoveWorkRole(ctx context.Context, userID, workRoleID primitive.ObjectID) (*models.Profile, error)
}

// WorkRoleRequest represents the JSON body of a work-history entry
// swagger:model WorkRoleRequest
type WorkRoleRequest struct {
	// Role title
	// required: true
	// default: Backend engineer
	Role string `json:"role"`

	// Company
	Company string `json:"company"`

	// Country
	Country string `json:"country"`

	// Start date, YYYY-MM-DD or RFC 3339
	// default: 2020-01-31
	From string `json:"from"`

	// End date, YYYY-MM-DD or RFC 3339
	To string `json:"to"`

	// Still working there
	Current bool `json:"current"`

	// Details
	Details string `json:"details"`
}

// parseDate accepts YYYY-MM-DD or RFC 3339. Empty input yields nil.
func parseDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, true
		}
	}
	return nil, false
}

// NewAddWorkRoleHandler returns an HTTP handler that adds a work-history entry.
// @Summary Add work role
// @Description Prepends a work-history entry to the caller's profile.
// @Tags profile
// @Accept json
// @Produce json
// @Param workRoleRequest body handlers.WorkRoleRequest true "Work role"
// @Success 200 {object} models.Profile "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/profile/workrole [post]
// @Security BearerAuth
func NewAddWorkRoleHandler(svc WorkRoleAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person, ok := currentPerson(w, r)
		if !ok {
			return
		}

		var req WorkRoleRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		from, ok := parseDate(req.From)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid from date")
			return
		}
		to, ok := parseDate(req.To)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid to date")
			return
		}

		profile, err := svc.AddWorkRole(r.Context(), person.ID, models.WorkRole{
			Role:    req.Role,
			Company: strings.TrimSpace(req.Company),
			Country: strings.TrimSpace(req.Country),
			From:    from,
			To:      to,
			Current: req.Current,
			Details: strings.TrimSpace(req.Details),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewRemoveWorkRoleHandler returns an HTTP handler that removes a work-history entry.
// @Summary Remove work role
// @Tags profile
// @Produce json
// @Param w_id path string true "Work role id"
// @Success 200 {object} models.Profile "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Profile or work role not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/profile/workrole/{w_id} [delete]
// @Security BearerAuth
func NewRemoveWorkRoleHandler(svc WorkRoleRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person, ok := currentPerson(w, r)
		if !ok {
			return
		}

		workRoleID, ok := parseObjectID(w, r, "w_id")
		if !ok {
			return
		}

		profile, err := svc.RemoveWorkRole(r.Context(), person.ID, workRoleID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}
