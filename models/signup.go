package models

import "time"

// SignupRecord is the record written at signup time under the user type
// (users/{userType}/{uid}). Profiles created before the unified profile
// schema only have their phone number here.
type SignupRecord struct {
	UserID    string    `bson:"id" json:"-"`
	UserType  UserType  `bson:"userType" json:"userType,omitempty"`
	FirstName string    `bson:"firstName" json:"firstName,omitempty"`
	LastName  string    `bson:"lastName" json:"lastName,omitempty"`
	Email     string    `bson:"email" json:"email,omitempty"`
	Phone     string    `bson:"phone" json:"phone,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// SignupRequest is the payload of the signup endpoint.
type SignupRequest struct {
	UserType  UserType `json:"userType" binding:"required"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Phone     string   `json:"phone"`
}
