package models

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Domain event types published to Kafka.
const (
	EventPersonRegistered = "person.registered"
	EventProfileDeleted   = "profile.deleted"
	EventQuestionCreated  = "question.created"
)

// Event is the envelope published for every domain event.
type Event struct {
	EventID    uuid.UUID          `json:"event_id"`
	Type       string             `json:"type"`
	UserID     primitive.ObjectID `json:"user_id"`
	OccurredAt time.Time          `json:"occurred_at"`
	Payload    any                `json:"payload,omitempty"`
}
