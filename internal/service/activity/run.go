package activity

import (
	"context"
	"sync"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/cms-blame/internal/config"
	"github.com/heartmarshall/cms-blame/internal/domain"
	"github.com/heartmarshall/cms-blame/internal/loader"
	"github.com/heartmarshall/cms-blame/internal/service/schema"
)

// candidate is one feed line before enrichment. record is nil for audit
// events until the record is looked up.
type candidate struct {
	recordID string
	at       time.Time
	action   domain.Action
	record   *domain.ChangeRecord
}

// activitySource produces the candidate windows of one feed.
type activitySource interface {
	name() string
	// optional reports whether a failure degrades to the next source
	// instead of failing the feed.
	optional() bool
	windows(ctx context.Context, kind domain.FeedKind) ([][]candidate, error)
}

// run is the state of one aggregation: everything fetched here is shared by
// the feeds of the run and discarded afterwards.
type run struct {
	s       *Service
	sources []activitySource

	categories    func() ([]domain.Category, error)
	recordWindows func() ([]recordWindow, error)

	schemas *schema.Registry
	records *dataloader.Loader[string, domain.ChangeRecord]
}

func (s *Service) newRun(ctx context.Context) *run {
	r := &run{
		s:       s,
		schemas: schema.NewRegistry(s.content, s.log),
		records: loader.PerKey(s.content.GetRecord, loader.DefaultConcurrency),
	}
	r.categories = sync.OnceValues(func() ([]domain.Category, error) {
		return s.content.ListCategories(ctx)
	})
	r.recordWindows = sync.OnceValues(func() ([]recordWindow, error) {
		return r.fetchWindows(ctx)
	})

	records := recordSource{run: r}
	audit := auditSource{audit: s.audit}
	switch s.cfg.Source {
	case config.SourceRecords:
		r.sources = []activitySource{records}
	case config.SourceAudit:
		r.sources = []activitySource{audit}
	default:
		r.sources = []activitySource{audit, records}
	}
	return r
}

// categoryIndex returns the run's categories by id.
func (r *run) categoryIndex() (map[string]domain.Category, error) {
	cats, err := r.categories()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	return byID, nil
}
