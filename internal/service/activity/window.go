package activity

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/cms-blame/internal/domain"
	"github.com/heartmarshall/cms-blame/internal/loader"
	"github.com/heartmarshall/cms-blame/internal/metrics"
)

// orderByUpdatedDesc orders a category listing newest change first.
const orderByUpdatedDesc = "_updated_at_DESC"

// recordWindow is the most recent slice of one category.
type recordWindow struct {
	categoryID string
	records    []domain.ChangeRecord
}

// fetchWindows fetches the window of every category concurrently. A
// category that fails contributes an empty window.
func (r *run) fetchWindows(ctx context.Context) ([]recordWindow, error) {
	cats, err := r.fetchCategories()
	if err != nil {
		return nil, err
	}

	limit := r.s.cfg.WindowSize
	outcomes := loader.FanOut(ctx, cats, func(ctx context.Context, c domain.Category) ([]domain.ChangeRecord, error) {
		return r.s.content.ListRecords(ctx, c.ID, orderByUpdatedDesc, limit)
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	windows := make([]recordWindow, len(cats))
	for i, o := range outcomes {
		windows[i].categoryID = cats[i].ID
		if o.Err != nil {
			metrics.UnitFailed(metrics.UnitCategoryWindow)
			r.s.log.WarnContext(ctx, "fetch category window",
				slog.String("category_id", cats[i].ID),
				slog.String("error", o.Err.Error()),
			)
			continue
		}
		windows[i].records = o.Value
	}
	return windows, nil
}
