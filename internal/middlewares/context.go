package middlewares

import (
	"context"

	"github.com/sbilibin2017/bigstack/internal/models"
)

// contextKey is an unexported type for keys in context
type contextKey struct{ name string }

var (
	personKey    = contextKey{"person"}
	requestIDKey = contextKey{"request_id"}
)

// SetPersonToContext stores the authenticated person in the context
func SetPersonToContext(ctx context.Context, person *models.Person) context.Context {
	return context.WithValue(ctx, personKey, person)
}

// GetPersonFromContext retrieves the authenticated person. Returns nil if not present.
func GetPersonFromContext(ctx context.Context) *models.Person {
	person, _ := ctx.Value(personKey).(*models.Person)
	return person
}

// GetRequestIDFromContext returns the id assigned by LoggingMiddleware, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
