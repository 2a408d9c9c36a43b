package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Social holds optional social network links of a profile.
type Social struct {
	YouTube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
}

// WorkRole is a single work-history entry. ID is generated when the entry is added.
type WorkRole struct {
	ID      primitive.ObjectID `json:"id" bson:"_id"`
	Role    string             `json:"role" bson:"role"`
	Company string             `json:"company,omitempty" bson:"company,omitempty"`
	Country string             `json:"country,omitempty" bson:"country,omitempty"`
	From    *time.Time         `json:"from,omitempty" bson:"from,omitempty"`
	To      *time.Time         `json:"to,omitempty" bson:"to,omitempty"`
	Current bool               `json:"current" bson:"current"`
	Details string             `json:"details,omitempty" bson:"details,omitempty"`
}

// ProfileDetails are the profile attributes shared by the stored and public views.
type ProfileDetails struct {
	Username  string     `json:"username" bson:"username"`
	Website   string     `json:"website,omitempty" bson:"website,omitempty"`
	Country   string     `json:"country,omitempty" bson:"country,omitempty"`
	Portfolio string     `json:"portfolio,omitempty" bson:"portfolio,omitempty"`
	Languages []string   `json:"languages" bson:"languages"`
	Social    Social     `json:"social" bson:"social"`
	WorkRole  []WorkRole `json:"workrole" bson:"workrole"` // newest first
	Date      time.Time  `json:"date" bson:"date"`
}

// Profile is the stored document; User references the owning Person.
type Profile struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User           primitive.ObjectID `json:"user" bson:"user"`
	ProfileDetails `bson:",inline"`
}

// PublicProfile is a Profile with its owner resolved to a PersonSummary.
type PublicProfile struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	User           PersonSummary      `json:"user" bson:"user"`
	ProfileDetails `bson:",inline"`
}

// ProfileUpdate is a partial update. Nil fields are left untouched.
type ProfileUpdate struct {
	Username  *string
	Website   *string
	Country   *string
	Portfolio *string
	Languages []string
	YouTube   *string
	Facebook  *string
	Instagram *string
}

// IsEmpty reports whether the update carries no field at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Username == nil && u.Website == nil && u.Country == nil && u.Portfolio == nil &&
		u.Languages == nil && u.YouTube == nil && u.Facebook == nil && u.Instagram == nil
}
