package dato

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/heartmarshall/cms-blame/internal/domain"
)

// ListCategories returns every content model of the project.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var env listEnvelope[apiItemType]
	if err := c.do(ctx, http.MethodGet, "/item-types", nil, nil, &env); err != nil {
		return nil, fmt.Errorf("list item types: %w", err)
	}

	out := make([]domain.Category, 0, len(env.Data))
	for _, it := range env.Data {
		out = append(out, mapCategory(it))
	}
	return out, nil
}

// ListFields returns the field definitions of one content model.
func (c *Client) ListFields(ctx context.Context, categoryID string) ([]domain.Field, error) {
	path := "/item-types/" + url.PathEscape(categoryID) + "/fields"

	var env listEnvelope[apiField]
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &env); err != nil {
		return nil, fmt.Errorf("list fields of %s: %w", categoryID, err)
	}

	out := make([]domain.Field, 0, len(env.Data))
	for _, f := range env.Data {
		out = append(out, domain.Field{
			ID:        f.ID,
			APIKey:    f.Attributes.APIKey,
			Label:     f.Attributes.Label,
			FieldType: f.Attributes.FieldType,
		})
	}
	return out, nil
}

func mapCategory(it apiItemType) domain.Category {
	return domain.Category{
		ID:                     it.ID,
		Name:                   it.Attributes.Name,
		APIKey:                 it.Attributes.APIKey,
		TitleField:             fieldRef(it.Relationships.TitleField),
		PresentationTitleField: fieldRef(it.Relationships.PresentationTitleField),
	}
}

func fieldRef(rel apiRelationship) *domain.FieldRef {
	if rel.Data == nil || rel.Data.ID == "" {
		return nil
	}
	return &domain.FieldRef{ID: rel.Data.ID}
}
