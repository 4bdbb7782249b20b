package activity

import (
	"context"
	"fmt"

	"github.com/heartmarshall/cms-blame/internal/domain"
)

// auditSource reads the feed off the audit trail. It is optional: an audit
// trail the token cannot query degrades instead of failing the feed.
type auditSource struct {
	audit auditAPI
}

func (auditSource) name() string   { return "audit" }
func (auditSource) optional() bool { return true }

func (s auditSource) windows(ctx context.Context, kind domain.FeedKind) ([][]candidate, error) {
	q := domain.NewAuditQuery(kind, "")
	events, err := s.audit.QueryAuditEvents(ctx, q)
	if err != nil {
		return nil, err
	}

	w := make([]candidate, 0, len(events))
	for _, e := range events {
		if !q.Matches(e) {
			continue
		}
		w = append(w, candidate{
			recordID: e.RecordID(),
			at:       e.OccurredAt,
			action:   e.ActionName,
		})
	}
	return [][]candidate{w}, nil
}

// LatestByActor returns the most recent record change of the given kind made
// by actorID, or nil when the actor has none.
func (s *Service) LatestByActor(ctx context.Context, actorID string, kind domain.FeedKind) (*domain.ActorActivity, error) {
	q := domain.NewAuditQuery(kind, actorID)
	events, err := s.audit.QueryAuditEvents(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query %s of actor %s: %w", kind, actorID, err)
	}

	for _, e := range events {
		if !q.Matches(e) {
			continue
		}
		id := e.RecordID()
		return &domain.ActorActivity{
			RecordID:   id,
			OccurredAt: e.OccurredAt,
			Action:     e.ActionName,
			URL:        domain.EditorURL(s.internalDomain, id),
		}, nil
	}
	return nil, nil
}
