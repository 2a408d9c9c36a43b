package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultProfilePic is assigned to persons registering without a picture.
const DefaultProfilePic = "https://www.gravatar.com/avatar/?d=mp"

// Person is an authenticated identity stored in the persons collection.
type Person struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	Password   string             `json:"-" bson:"password"`
	Username   string             `json:"username,omitempty" bson:"username,omitempty"`
	ProfilePic string             `json:"profilepic" bson:"profilepic"`
	Date       time.Time          `json:"date" bson:"date"`
}

// Summary returns the public part of the person.
func (p *Person) Summary() PersonSummary {
	return PersonSummary{ID: p.ID, Name: p.Name, ProfilePic: p.ProfilePic}
}

// PersonSummary is the owner view resolved into public profile listings.
type PersonSummary struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Name       string             `json:"name" bson:"name"`
	ProfilePic string             `json:"profilepic" bson:"profilepic"`
}

// Registration carries the fields accepted on sign up.
type Registration struct {
	Name       string
	Email      string
	Password   string
	Username   string
	ProfilePic string
}
