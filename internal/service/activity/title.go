package activity

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/cms-blame/internal/domain"
	"github.com/heartmarshall/cms-blame/internal/loader"
	"github.com/heartmarshall/cms-blame/internal/metrics"
	"github.com/heartmarshall/cms-blame/internal/service/schema"
)

// resolve turns the final top candidates into feed entries. Schemas are
// hydrated only for the categories these entries belong to.
func (r *run) resolve(ctx context.Context, top []candidate) []domain.ActivityEntry {
	entries := make([]domain.ActivityEntry, len(top))
	if len(top) == 0 {
		return entries
	}

	r.attachRecords(ctx, top)

	cats, err := r.categoryIndex()
	if err != nil {
		r.s.log.WarnContext(ctx, "list categories for titles",
			slog.String("error", err.Error()),
		)
	}

	var present []string
	for _, c := range top {
		if c.record == nil {
			continue
		}
		if cat, ok := cats[c.record.CategoryID]; ok {
			present = append(present, cat.ID)
		}
	}
	idx := r.schemas.Hydrate(ctx, present)

	for i, c := range top {
		e := domain.ActivityEntry{
			RecordID:   c.recordID,
			OccurredAt: c.at,
			Action:     c.action,
			URL:        domain.EditorURL(r.s.internalDomain, c.recordID),
		}
		if c.record != nil {
			e.CategoryID = c.record.CategoryID
			if cat, ok := cats[e.CategoryID]; ok {
				e.CategoryName = cat.Name
				e.Title = recordTitle(cat, idx, *c.record)
			}
		}
		entries[i] = e
	}
	return entries
}

// attachRecords looks up the records of candidates that carry only an id.
// A record that cannot be fetched leaves its entry without category and title.
func (r *run) attachRecords(ctx context.Context, top []candidate) {
	var ids []string
	for _, c := range top {
		if c.record == nil {
			ids = append(ids, c.recordID)
		}
	}
	if len(ids) == 0 {
		return
	}

	found, failed := loader.LoadAll(ctx, r.records, ids)
	for id, err := range failed {
		metrics.UnitFailed(metrics.UnitRecordLookup)
		r.s.log.WarnContext(ctx, "look up record",
			slog.String("record_id", id),
			slog.String("error", err.Error()),
		)
	}

	for i := range top {
		if top[i].record != nil {
			continue
		}
		if rec, ok := found[top[i].recordID]; ok {
			top[i].record = &rec
		}
	}
}

// recordTitle reads the title field of rec. Any missing link in the chain
// (no title field, schema not hydrated, value absent) yields "".
func recordTitle(cat domain.Category, idx schema.Index, rec domain.ChangeRecord) string {
	ref := cat.TitleFieldRef()
	if ref == nil {
		return ""
	}
	key, ok := idx.APIKey(cat.ID, ref.ID)
	if !ok {
		return ""
	}
	v, ok := rec.Field(key)
	if !ok {
		return ""
	}
	return domain.DisplayValue(v)
}
