package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/bigstack/internal/models"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, reg models.Registration) (*models.Person, error)
}

// RegisterRequest represents the JSON body for registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Username
	// default: john_doe
	Username string `json:"username,omitempty"`

	// Profile picture URL
	ProfilePic string `json:"profilepic,omitempty"`
}

// NewRegisterHandler returns an HTTP handler for registration.
// @Summary Register a new person
// @Description Creates a new person. Email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Registration request"
// @Success 201 {object} models.Person "Person registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		person, err := svc.Register(r.Context(), models.Registration{
			Name:       req.Name,
			Email:      req.Email,
			Password:   req.Password,
			Username:   req.Username,
			ProfilePic: req.ProfilePic,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, person)
	}
}
