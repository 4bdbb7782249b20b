// Package roster builds the collaborator list: one line per user with the
// resolved role name and, optionally, the user's latest record changes.
package roster

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/cms-blame/internal/domain"
	"github.com/heartmarshall/cms-blame/internal/loader"
	"github.com/heartmarshall/cms-blame/internal/metrics"
)

type userAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetRole(ctx context.Context, id string) (domain.Role, error)
}

// actorActivity finds the latest change of one kind made by one user.
type actorActivity interface {
	LatestByActor(ctx context.Context, actorID string, kind domain.FeedKind) (*domain.ActorActivity, error)
}

// Service builds the collaborator roster.
type Service struct {
	log      *slog.Logger
	users    userAPI
	activity actorActivity
	// withActivity enables the per-user audit lookups.
	withActivity bool
}

// NewService creates a new roster service. activity may be nil, which
// disables the per-user lookups.
func NewService(logger *slog.Logger, users userAPI, activity actorActivity, withActivity bool) *Service {
	return &Service{
		log:          logger.With("service", "roster"),
		users:        users,
		activity:     activity,
		withActivity: withActivity && activity != nil,
	}
}

// ListCollaborators returns one entry per user in the order the API lists
// them. Only a failure to list users is returned; role and activity lookups
// degrade per user.
func (s *Service) ListCollaborators(ctx context.Context) ([]domain.Collaborator, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	roles := s.resolveRoles(ctx, users)

	var latest []userActivity
	if s.withActivity {
		latest = s.latestActivity(ctx, users)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Collaborator, len(users))
	for i, u := range users {
		c := domain.Collaborator{
			ID:          u.ID,
			DisplayName: u.DisplayName(),
			RoleName:    roles[u.RoleID],
			LastAccess:  u.LastAccess,
		}
		if latest != nil {
			c.LastUpdate = latest[i].update
			c.LastPublish = latest[i].publish
		}
		out[i] = c
	}
	return out, nil
}

// resolveRoles looks up every distinct role concurrently. Roles that fail
// to resolve are absent from the result.
func (s *Service) resolveRoles(ctx context.Context, users []domain.User) map[string]string {
	var ids []string
	seen := make(map[string]struct{}, len(users))
	for _, u := range users {
		if u.RoleID == "" {
			continue
		}
		if _, ok := seen[u.RoleID]; ok {
			continue
		}
		seen[u.RoleID] = struct{}{}
		ids = append(ids, u.RoleID)
	}

	roles := loader.PerKey(s.users.GetRole, loader.DefaultConcurrency)
	found, failed := loader.LoadAll(ctx, roles, ids)
	for id, err := range failed {
		metrics.UnitFailed(metrics.UnitRoleLookup)
		s.log.WarnContext(ctx, "resolve role",
			slog.String("role_id", id),
			slog.String("error", err.Error()),
		)
	}

	names := make(map[string]string, len(found))
	for id, r := range found {
		names[id] = r.Name
	}
	return names
}
