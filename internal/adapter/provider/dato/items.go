package dato

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/cms-blame/internal/domain"
)

// ListRecords returns up to limit records of one content model in the given
// order (e.g. "_updated_at_DESC"). The current version is read so drafts
// are visible.
func (c *Client) ListRecords(ctx context.Context, categoryID, orderBy string, limit int) ([]domain.ChangeRecord, error) {
	q := url.Values{}
	q.Set("filter[type]", categoryID)
	q.Set("version", "current")
	if orderBy != "" {
		q.Set("order_by", orderBy)
	}
	if limit > 0 {
		q.Set("page[limit]", strconv.Itoa(limit))
	}

	var env listEnvelope[apiItem]
	if err := c.do(ctx, http.MethodGet, "/items", q, nil, &env); err != nil {
		return nil, fmt.Errorf("list records of %s: %w", categoryID, err)
	}

	out := make([]domain.ChangeRecord, 0, len(env.Data))
	for _, it := range env.Data {
		rec := mapRecord(it)
		if rec.CategoryID == "" {
			rec.CategoryID = categoryID
		}
		out = append(out, rec)
	}
	return out, nil
}

// GetRecord returns the current version of one record.
func (c *Client) GetRecord(ctx context.Context, id string) (domain.ChangeRecord, error) {
	q := url.Values{}
	q.Set("version", "current")

	var env oneEnvelope[apiItem]
	if err := c.do(ctx, http.MethodGet, "/items/"+url.PathEscape(id), q, nil, &env); err != nil {
		return domain.ChangeRecord{}, fmt.Errorf("get record %s: %w", id, err)
	}
	return mapRecord(env.Data), nil
}

func mapRecord(it apiItem) domain.ChangeRecord {
	rec := domain.ChangeRecord{
		ID:               it.ID,
		UpdatedAt:        it.Meta.UpdatedAt,
		FirstPublishedAt: it.Meta.FirstPublishedAt,
		PublishedAt:      it.Meta.PublishedAt,
		Fields:           it.Attributes,
	}
	if it.Relationships.ItemType.Data != nil {
		rec.CategoryID = it.Relationships.ItemType.Data.ID
	}
	return rec
}
