package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Upvote records a single person's vote on a question.
type Upvote struct {
	User primitive.ObjectID `json:"user" bson:"user"`
}

// Answer is a reply posted under a question.
type Answer struct {
	ID   primitive.ObjectID `json:"id" bson:"_id"`
	User primitive.ObjectID `json:"user" bson:"user"`
	Name string             `json:"name" bson:"name"`
	Text string             `json:"text" bson:"text"`
	Date time.Time          `json:"date" bson:"date"`
}

// Question is a posted question owned by the Person referenced in User.
type Question struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User    primitive.ObjectID `json:"user" bson:"user"`
	Name    string             `json:"name" bson:"name"` // poster display name at time of posting
	Title   string             `json:"title" bson:"title"`
	Body    string             `json:"body" bson:"body"`
	Upvotes []Upvote           `json:"upvotes" bson:"upvotes"`
	Answers []Answer           `json:"answers" bson:"answers"`
	Date    time.Time          `json:"date" bson:"date"`
}

// QuestionUpdate is a partial update of a question. Nil fields are left untouched.
type QuestionUpdate struct {
	Title *string
	Body  *string
}

// IsEmpty reports whether the update carries no field at all.
func (u QuestionUpdate) IsEmpty() bool {
	return u.Title == nil && u.Body == nil
}
