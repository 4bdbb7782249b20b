// Package overview keeps the latest aggregation result for presentation.
// The activity feeds and the roster load independently, so each half carries
// its own loading, ready or failed state.
package overview

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cms-blame/internal/domain"
	"github.com/heartmarshall/cms-blame/pkg/ctxutil"
)

type feedsBuilder interface {
	Feeds(ctx context.Context) (domain.Feeds, error)
}

type rosterBuilder interface {
	ListCollaborators(ctx context.Context) ([]domain.Collaborator, error)
}

// Tracker runs aggregations and holds the most recent overview.
// It is safe for concurrent use.
type Tracker struct {
	log     *slog.Logger
	feeds   feedsBuilder
	roster  rosterBuilder
	timeout time.Duration
	now     func() time.Time

	mu     sync.Mutex
	snap   domain.Overview
	gen    uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTracker creates a Tracker whose overview is loading until the first
// run completes. timeout bounds each run.
func NewTracker(logger *slog.Logger, feeds feedsBuilder, roster rosterBuilder, timeout time.Duration) *Tracker {
	return &Tracker{
		log:     logger.With("service", "overview"),
		feeds:   feeds,
		roster:  roster,
		timeout: timeout,
		now:     time.Now,
		snap: domain.Overview{
			Activity: domain.FeedsState{Status: domain.LoadStatusLoading, Feeds: emptyFeeds()},
			Roster:   domain.RosterState{Status: domain.LoadStatusLoading, Collaborators: []domain.Collaborator{}},
		},
	}
}

// Snapshot returns the current overview.
func (t *Tracker) Snapshot() domain.Overview {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap
}

// Refresh starts a new run in the background and returns at once. A run
// still in flight is cancelled and its results are dropped. The run is
// detached from ctx cancellation so it outlives the triggering request.
func (t *Tracker) Refresh(ctx context.Context) {
	runCtx, gen := t.begin(ctx)

	var run sync.WaitGroup
	run.Add(2)
	t.wg.Add(3)

	go func() {
		defer t.wg.Done()
		defer run.Done()
		feeds, err := t.feeds.Feeds(runCtx)
		t.applyFeeds(runCtx, gen, feeds, err)
	}()
	go func() {
		defer t.wg.Done()
		defer run.Done()
		collaborators, err := t.roster.ListCollaborators(runCtx)
		t.applyRoster(runCtx, gen, collaborators, err)
	}()
	go func() {
		defer t.wg.Done()
		run.Wait()
		t.finish(gen)
	}()
}

// Load runs both halves synchronously and returns the resulting overview.
// Unlike Refresh, the run stops when ctx is cancelled.
func (t *Tracker) Load(ctx context.Context) domain.Overview {
	runCtx, gen := t.begin(ctx)
	defer t.finish(gen)

	runCtx, cancel := context.WithCancel(runCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		feeds, err := t.feeds.Feeds(runCtx)
		t.applyFeeds(runCtx, gen, feeds, err)
	}()
	go func() {
		defer wg.Done()
		collaborators, err := t.roster.ListCollaborators(runCtx)
		t.applyRoster(runCtx, gen, collaborators, err)
	}()
	wg.Wait()

	return t.Snapshot()
}

// Close cancels the run in flight and waits for background work to stop.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
	}
	t.gen++
	t.mu.Unlock()

	t.wg.Wait()
}

// begin supersedes the current run and marks both halves as loading. The
// previous data stays visible until the new run replaces it.
func (t *Tracker) begin(ctx context.Context) (context.Context, uint64) {
	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.timeout)
	runCtx = ctxutil.WithRunID(runCtx, uuid.NewString())

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	t.gen++
	t.cancel = cancel
	t.snap.Activity.Status = domain.LoadStatusLoading
	t.snap.Activity.Error = ""
	t.snap.Roster.Status = domain.LoadStatusLoading
	t.snap.Roster.Error = ""

	return runCtx, t.gen
}

// finish releases the context of run gen if it is still current.
func (t *Tracker) finish(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen == t.gen && t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *Tracker) applyFeeds(ctx context.Context, gen uint64, feeds domain.Feeds, err error) {
	t.mu.Lock()
	current := gen == t.gen
	if current {
		if err != nil {
			t.snap.Activity = domain.FeedsState{
				Status: domain.LoadStatusFailed,
				Error:  err.Error(),
				Feeds:  emptyFeeds(),
			}
		} else {
			t.snap.Activity = domain.FeedsState{Status: domain.LoadStatusReady, Feeds: feeds}
		}
		t.stamp()
	}
	t.mu.Unlock()

	if current && err != nil {
		t.log.ErrorContext(ctx, "aggregate activity", slog.String("error", err.Error()))
	}
}

func (t *Tracker) applyRoster(ctx context.Context, gen uint64, collaborators []domain.Collaborator, err error) {
	t.mu.Lock()
	current := gen == t.gen
	if current {
		if err != nil {
			t.snap.Roster = domain.RosterState{
				Status:        domain.LoadStatusFailed,
				Error:         err.Error(),
				Collaborators: []domain.Collaborator{},
			}
		} else {
			t.snap.Roster = domain.RosterState{Status: domain.LoadStatusReady, Collaborators: collaborators}
		}
		t.stamp()
	}
	t.mu.Unlock()

	if current && err != nil {
		t.log.ErrorContext(ctx, "build roster", slog.String("error", err.Error()))
	}
}

// stamp records the completion time of the latest half. Callers hold mu.
func (t *Tracker) stamp() {
	now := t.now()
	t.snap.RefreshedAt = &now
}

func emptyFeeds() domain.Feeds {
	return domain.Feeds{
		Updates:   []domain.ActivityEntry{},
		Publishes: []domain.ActivityEntry{},
	}
}
