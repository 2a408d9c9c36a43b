package middlewares

import (
	"context"
	"testing"

	"github.com/sbilibin2017/bigstack/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPersonContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetPersonFromContext(ctx))

	person := &models.Person{ID: primitive.NewObjectID(), Name: "Alice"}
	ctx = SetPersonToContext(ctx, person)
	assert.Same(t, person, GetPersonFromContext(ctx))
}

func TestGetRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	ctx := context.WithValue(context.Background(), requestIDKey, "abc")
	assert.Equal(t, "abc", GetRequestIDFromContext(ctx))
}
