package models

import "time"

type RequestStatus string

// Only pending is ever written; accept/decline have no backing operation.
const RequestStatusPending RequestStatus = "pending"

const DefaultServiceType = "short-term"

// ServiceRequest is an employer's solicitation of a job seeker. Contact
// fields are copied at creation time and never re-synced with the profiles.
type ServiceRequest struct {
	ID                  string        `bson:"id" json:"id,omitempty"`
	EmployerID          string        `bson:"employerId" json:"employerId"`
	JobSeekerID         string        `bson:"jobSeekerId" json:"jobSeekerId"`
	ServiceType         string        `bson:"serviceType" json:"serviceType"`
	EmployerName        string        `bson:"employerName" json:"employerName"`
	EmployerEmail       string        `bson:"employerEmail" json:"employerEmail"`
	EmployerPhone       string        `bson:"employerPhone" json:"employerPhone"`
	JobSeekerName       string        `bson:"jobSeekerName" json:"jobSeekerName"`
	JobSeekerEmail      string        `bson:"jobSeekerEmail" json:"jobSeekerEmail"`
	JobSeekerPhone      string        `bson:"jobSeekerPhone" json:"jobSeekerPhone"`
	JobSeekerCategories []string      `bson:"jobSeekerCategories" json:"jobSeekerCategories"`
	Status              RequestStatus `bson:"status" json:"status"`
	CreatedAt           time.Time     `bson:"createdAt" json:"createdAt"`
}

// SendRequestInput is the payload of the send-request endpoint.
type SendRequestInput struct {
	JobSeekerID string `json:"jobSeekerId" binding:"required"`
	ServiceType string `json:"serviceType"`
}
