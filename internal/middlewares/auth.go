package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/bigstack/internal/jwt"
	"github.com/sbilibin2017/bigstack/internal/logger"
	"github.com/sbilibin2017/bigstack/internal/models"
	"github.com/sbilibin2017/bigstack/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// PersonGetter resolves the person a token was issued to.
type PersonGetter interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Person, error)
}

// AuthMiddleware returns a middleware that validates the bearer token and
// stores the token's person in the request context.
func AuthMiddleware(tokener Tokener, persons PersonGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			person, err := persons.GetByID(ctx, claims.UserID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					logger.Log.Errorw("authorization failed: person not found", "user_id", claims.UserID.Hex())
					writeError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				logger.Log.Errorw("failed to load person", "user_id", claims.UserID.Hex(), "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetPersonToContext(ctx, person)))
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		logger.Log.Errorw("failed to encode response", "status", status, "err", err)
	}
}
