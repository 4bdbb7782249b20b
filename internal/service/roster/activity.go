package roster

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/cms-blame/internal/domain"
	"github.com/heartmarshall/cms-blame/internal/loader"
	"github.com/heartmarshall/cms-blame/internal/metrics"
)

type userActivity struct {
	update  *domain.ActorActivity
	publish *domain.ActorActivity
}

type actorQuery struct {
	userID string
	kind   domain.FeedKind
}

// latestActivity runs two audit lookups per user, all concurrently. A failed
// lookup leaves that half of the user's activity empty.
func (s *Service) latestActivity(ctx context.Context, users []domain.User) []userActivity {
	queries := make([]actorQuery, 0, 2*len(users))
	for _, u := range users {
		queries = append(queries,
			actorQuery{userID: u.ID, kind: domain.FeedUpdates},
			actorQuery{userID: u.ID, kind: domain.FeedPublishes},
		)
	}

	outcomes := loader.FanOut(ctx, queries, func(ctx context.Context, q actorQuery) (*domain.ActorActivity, error) {
		return s.activity.LatestByActor(ctx, q.userID, q.kind)
	})

	out := make([]userActivity, len(users))
	for i, o := range outcomes {
		if o.Err != nil {
			if ctx.Err() == nil {
				metrics.UnitFailed(metrics.UnitAuditQuery)
				s.log.WarnContext(ctx, "latest user activity",
					slog.String("user_id", queries[i].userID),
					slog.String("feed", queries[i].kind.String()),
					slog.String("error", o.Err.Error()),
				)
			}
			continue
		}
		if queries[i].kind == domain.FeedUpdates {
			out[i/2].update = o.Value
		} else {
			out[i/2].publish = o.Value
		}
	}
	return out
}
