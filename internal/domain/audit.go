package domain

import (
	"slices"
	"strings"
	"time"
)

// RecordPathPattern matches audit request paths that address a record.
const RecordPathPattern = "/items/"

// AuditEvent is one actor-attributed entry of the audit trail.
type AuditEvent struct {
	ID          string
	ActorID     string
	ActionName  Action
	RequestPath string
	OccurredAt  time.Time
}

// RecordID returns the id of the record the event addresses: the last
// non-empty path segment of a record resource path. Paths outside the
// record resource, or naming no segment after it, yield "".
func (e AuditEvent) RecordID() string {
	_, rest, ok := strings.Cut(e.RequestPath, RecordPathPattern)
	if !ok {
		return ""
	}
	segs := strings.Split(rest, "/")
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i] != "" {
			return segs[i]
		}
	}
	return ""
}

// AuditQuery is the predicate of an audit trail query: action membership
// AND request path pattern, optionally AND an actor id equality.
type AuditQuery struct {
	Actions     []Action
	PathPattern string
	ActorID     string
}

// NewAuditQuery builds the record-resource query for the given feed kind.
func NewAuditQuery(kind FeedKind, actorID string) AuditQuery {
	return AuditQuery{
		Actions:     kind.Actions(),
		PathPattern: RecordPathPattern,
		ActorID:     actorID,
	}
}

// Matches reports whether the event satisfies the action clause of q and
// addresses a record.
func (q AuditQuery) Matches(e AuditEvent) bool {
	if !slices.Contains(q.Actions, e.ActionName) {
		return false
	}
	if q.ActorID != "" && e.ActorID != q.ActorID {
		return false
	}
	return e.RecordID() != ""
}
