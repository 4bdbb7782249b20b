package domain

import "time"

// User is a collaborator account of the repository.
type User struct {
	ID       string
	FullName string
	Email    string
	// RoleID is "" when the user carries no role reference.
	RoleID     string
	LastAccess *time.Time
}

// DisplayName returns the full name, falling back to the email.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// Role is a named permission set.
type Role struct {
	ID   string
	Name string
}

// ActorActivity is the most recent record change made by one collaborator.
type ActorActivity struct {
	RecordID   string    `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Action     Action    `json:"action"`
	URL        string    `json:"url"`
}

// Collaborator is one roster line.
type Collaborator struct {
	ID          string `json:"id"`
	DisplayName string `json:"name"`
	// RoleName is "" when the role could not be resolved.
	RoleName string `json:"role"`
	// LastAccess is nil when the user never signed in.
	LastAccess  *time.Time     `json:"last_access"`
	LastUpdate  *ActorActivity `json:"last_update,omitempty"`
	LastPublish *ActorActivity `json:"last_publish,omitempty"`
}
