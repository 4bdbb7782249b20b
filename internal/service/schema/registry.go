// Package schema hydrates category field definitions on demand. Only the
// categories that actually contribute to a result are hydrated, each at most
// once per Registry.
package schema

import (
	"context"
	"log/slog"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/cms-blame/internal/domain"
	"github.com/heartmarshall/cms-blame/internal/loader"
	"github.com/heartmarshall/cms-blame/internal/metrics"
)

type fieldLister interface {
	ListFields(ctx context.Context, categoryID string) ([]domain.Field, error)
}

// Registry memoizes category schemas for the lifetime of one aggregation run.
// It is safe for concurrent use.
type Registry struct {
	fields *dataloader.Loader[string, []domain.Field]
	log    *slog.Logger
}

// NewRegistry creates an empty Registry backed by lister.
func NewRegistry(lister fieldLister, logger *slog.Logger) *Registry {
	return &Registry{
		fields: loader.PerKey(lister.ListFields, loader.DefaultConcurrency),
		log:    logger,
	}
}

// Hydrate loads the schemas of categoryIDs and returns an index over the
// ones that loaded. A category whose schema cannot be fetched is logged and
// left out of the index.
func (r *Registry) Hydrate(ctx context.Context, categoryIDs []string) Index {
	ids := distinct(categoryIDs)
	loaded, failed := loader.LoadAll(ctx, r.fields, ids)

	for id, err := range failed {
		metrics.UnitFailed(metrics.UnitSchemaHydration)
		r.log.WarnContext(ctx, "hydrate category schema",
			slog.String("category_id", id),
			slog.String("error", err.Error()),
		)
	}

	idx := Index{byCategory: make(map[string]map[string]string, len(loaded))}
	for id, fields := range loaded {
		keys := make(map[string]string, len(fields))
		for _, f := range fields {
			keys[f.ID] = f.APIKey
		}
		idx.byCategory[id] = keys
	}
	return idx
}

// Index maps field ids to API keys per hydrated category.
type Index struct {
	byCategory map[string]map[string]string
}

// APIKey returns the API key of fieldID in categoryID.
func (ix Index) APIKey(categoryID, fieldID string) (string, bool) {
	fields, ok := ix.byCategory[categoryID]
	if !ok {
		return "", false
	}
	key, ok := fields[fieldID]
	return key, ok && key != ""
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
