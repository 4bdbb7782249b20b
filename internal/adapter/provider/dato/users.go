package dato

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/heartmarshall/cms-blame/internal/domain"
)

// ListUsers returns every collaborator of the project in API order.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var env listEnvelope[apiUser]
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &env); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]domain.User, 0, len(env.Data))
	for _, u := range env.Data {
		user := domain.User{
			ID:         u.ID,
			Email:      u.Attributes.Email,
			LastAccess: u.Meta.LastAccess,
		}
		if u.Attributes.FullName != nil {
			user.FullName = *u.Attributes.FullName
		}
		if u.Relationships.Role.Data != nil {
			user.RoleID = u.Relationships.Role.Data.ID
		}
		out = append(out, user)
	}
	return out, nil
}

// GetRole returns one role by id.
func (c *Client) GetRole(ctx context.Context, id string) (domain.Role, error) {
	var env oneEnvelope[apiRole]
	if err := c.do(ctx, http.MethodGet, "/roles/"+url.PathEscape(id), nil, nil, &env); err != nil {
		return domain.Role{}, fmt.Errorf("get role %s: %w", id, err)
	}
	return domain.Role{ID: env.Data.ID, Name: env.Data.Attributes.Name}, nil
}
