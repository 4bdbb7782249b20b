// Package activity aggregates the recent-updates and recent-publishes feeds
// across every category of the content repository.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/cms-blame/internal/config"
	"github.com/heartmarshall/cms-blame/internal/domain"
	"github.com/heartmarshall/cms-blame/internal/metrics"
)

// contentAPI is the content-listing side of the CMS.
type contentAPI interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListRecords(ctx context.Context, categoryID, orderBy string, limit int) ([]domain.ChangeRecord, error)
	GetRecord(ctx context.Context, id string) (domain.ChangeRecord, error)
	ListFields(ctx context.Context, categoryID string) ([]domain.Field, error)
}

// auditAPI is the audit trail of the CMS.
type auditAPI interface {
	QueryAuditEvents(ctx context.Context, q domain.AuditQuery) ([]domain.AuditEvent, error)
}

// Service builds activity feeds. Every call is an independent run: nothing
// fetched by one call is reused by the next.
type Service struct {
	log            *slog.Logger
	content        contentAPI
	audit          auditAPI
	cfg            config.ActivityConfig
	internalDomain string
}

// NewService creates a new activity service.
func NewService(
	logger *slog.Logger,
	content contentAPI,
	audit auditAPI,
	cfg config.ActivityConfig,
	internalDomain string,
) *Service {
	return &Service{
		log:            logger.With("service", "activity"),
		content:        content,
		audit:          audit,
		cfg:            cfg,
		internalDomain: internalDomain,
	}
}

// Feeds builds both feeds in one run, so category listing, record windows
// and schemas are fetched once and shared.
func (s *Service) Feeds(ctx context.Context) (domain.Feeds, error) {
	r := s.newRun(ctx)

	var feeds domain.Feeds
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := r.feed(gctx, domain.FeedUpdates)
		feeds.Updates = entries
		return err
	})
	g.Go(func() error {
		entries, err := r.feed(gctx, domain.FeedPublishes)
		feeds.Publishes = entries
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Feeds{}, err
	}
	return feeds, nil
}

// Feed builds a single feed.
func (s *Service) Feed(ctx context.Context, kind domain.FeedKind) ([]domain.ActivityEntry, error) {
	return s.newRun(ctx).feed(ctx, kind)
}

// feed runs the pipeline for one kind: candidate windows, merge, titles.
func (r *run) feed(ctx context.Context, kind domain.FeedKind) (entries []domain.ActivityEntry, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveAggregation(kind.String(), err, time.Since(start))
	}()

	windows, err := r.candidates(ctx, kind)
	if err != nil {
		return nil, err
	}

	top := mergeTopN(windows, r.s.cfg.FeedSize, func(c candidate) time.Time { return c.at })

	entries = r.resolve(ctx, top)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// candidates asks the configured sources in turn. An optional source that
// fails hands over to the next one; when none is left the feed is empty.
func (r *run) candidates(ctx context.Context, kind domain.FeedKind) ([][]candidate, error) {
	for _, src := range r.sources {
		windows, err := src.windows(ctx, kind)
		if err == nil {
			return windows, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !src.optional() {
			return nil, fmt.Errorf("%s feed: %w", kind, err)
		}

		metrics.UnitFailed(metrics.UnitAuditQuery)
		// Projects without audit log access fail every run; that is not news.
		level, msg := slog.LevelWarn, "activity source failed"
		if domain.IsSourceUnavailable(err) {
			level, msg = slog.LevelInfo, "activity source unavailable"
		}
		r.s.log.Log(ctx, level, msg,
			slog.String("source", src.name()),
			slog.String("feed", kind.String()),
			slog.String("error", err.Error()),
		)
	}
	return nil, nil
}
