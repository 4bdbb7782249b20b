package domain

import (
	"fmt"
	"time"
)

// Action is the kind of change an activity entry reports.
type Action string

const (
	ActionUpdate    Action = "update"
	ActionPublish   Action = "publish"
	ActionUnpublish Action = "unpublish"
)

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool {
	switch a {
	case ActionUpdate, ActionPublish, ActionUnpublish:
		return true
	}
	return false
}

// FeedKind selects one of the two activity feeds.
type FeedKind string

const (
	FeedUpdates   FeedKind = "updates"
	FeedPublishes FeedKind = "publishes"
)

func (k FeedKind) String() string { return string(k) }

// ParseFeedKind validates a feed name given by a caller.
func ParseFeedKind(s string) (FeedKind, error) {
	switch k := FeedKind(s); k {
	case FeedUpdates, FeedPublishes:
		return k, nil
	default:
		return "", NewValidationError("feed", fmt.Sprintf("must be %s or %s (got %q)", FeedUpdates, FeedPublishes, s))
	}
}

// Actions returns the audit actions that feed this kind.
func (k FeedKind) Actions() []Action {
	if k == FeedPublishes {
		return []Action{ActionPublish, ActionUnpublish}
	}
	return []Action{ActionUpdate}
}

// ActivityEntry is one line of an activity feed.
type ActivityEntry struct {
	RecordID     string    `json:"record_id"`
	CategoryID   string    `json:"category_id,omitempty"`
	CategoryName string    `json:"category_name,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
	// Title is "" when the record has no resolvable title.
	Title  string `json:"title"`
	URL    string `json:"url"`
	Action Action `json:"action"`
}

// Feeds holds both activity feeds of one aggregation run.
// Each feed is ordered by OccurredAt, newest first.
type Feeds struct {
	Updates   []ActivityEntry `json:"recent_updates"`
	Publishes []ActivityEntry `json:"recent_publishes"`
}
