package domain

import "time"

// LoadStatus is the state of one asynchronously produced half of the overview.
type LoadStatus string

const (
	LoadStatusLoading LoadStatus = "loading"
	LoadStatusReady   LoadStatus = "ready"
	LoadStatusFailed  LoadStatus = "failed"
)

func (s LoadStatus) String() string { return string(s) }

// FeedsState is the activity half of the overview.
type FeedsState struct {
	Status LoadStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
	Feeds  Feeds      `json:"feeds"`
}

// RosterState is the collaborator half of the overview.
type RosterState struct {
	Status        LoadStatus     `json:"status"`
	Error         string         `json:"error,omitempty"`
	Collaborators []Collaborator `json:"collaborators"`
}

// Overview is what the presentation layer renders: both halves with their
// own load state, so a failed roster never hides the feeds and vice versa.
type Overview struct {
	Activity    FeedsState  `json:"activity"`
	Roster      RosterState `json:"roster"`
	RefreshedAt *time.Time  `json:"refreshed_at,omitempty"`
}

// Pending reports whether any half is still loading.
func (o Overview) Pending() bool {
	return o.Activity.Status == LoadStatusLoading || o.Roster.Status == LoadStatusLoading
}
