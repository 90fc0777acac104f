package models

// Notification is one entry of a user's inbox.
type Notification struct {
	ID        string `bson:"id" json:"id"`
	UserID    string `bson:"userId" json:"-"`
	Text      string `bson:"text" json:"text"`
	Unread    bool   `bson:"unread" json:"unread"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"` // epoch milliseconds
}

// RequestCreatedPayload is the queued fan-out for a newly sent request.
type RequestCreatedPayload struct {
	RequestID    string `json:"requestId"`
	JobSeekerID  string `json:"jobSeekerId"`
	EmployerName string `json:"employerName"`
	ServiceType  string `json:"serviceType"`
}
