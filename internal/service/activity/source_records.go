package activity

import (
	"context"
	"fmt"

	"github.com/heartmarshall/cms-blame/internal/domain"
)

// recordSource scans the most recently updated records of every category.
// Both feeds come from the same windows: the publish feed keeps the records
// that were ever published.
type recordSource struct {
	run *run
}

func (recordSource) name() string   { return "records" }
func (recordSource) optional() bool { return false }

func (s recordSource) windows(_ context.Context, kind domain.FeedKind) ([][]candidate, error) {
	fetched, err := s.run.recordWindows()
	if err != nil {
		return nil, err
	}

	out := make([][]candidate, 0, len(fetched))
	for _, w := range fetched {
		out = append(out, toCandidates(w.records, kind))
	}
	return out, nil
}

// toCandidates turns one category window into feed candidates. The publish
// feed filters after the window is taken, so it may hold fewer than the
// window size even when older published records exist.
func toCandidates(records []domain.ChangeRecord, kind domain.FeedKind) []candidate {
	out := make([]candidate, 0, len(records))
	for i := range records {
		rec := &records[i]
		c := candidate{
			recordID: rec.ID,
			at:       rec.UpdatedAt,
			action:   domain.ActionUpdate,
			record:   rec,
		}
		if kind == domain.FeedPublishes {
			if !rec.HasBeenPublished() {
				continue
			}
			c.action = Classify(*rec)
		}
		out = append(out, c)
	}
	return out
}

// fetchCategories lists categories; the run cannot scan without them.
func (r *run) fetchCategories() ([]domain.Category, error) {
	cats, err := r.categories()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}
