package app

import (
	"log/slog"

	"github.com/heartmarshall/cms-blame/internal/adapter/provider/dato"
	"github.com/heartmarshall/cms-blame/internal/config"
	"github.com/heartmarshall/cms-blame/internal/service/activity"
	"github.com/heartmarshall/cms-blame/internal/service/overview"
	"github.com/heartmarshall/cms-blame/internal/service/roster"
)

// Engine is the wired aggregation stack shared by the server and the CLI.
type Engine struct {
	CMS      *dato.Client
	Activity *activity.Service
	Roster   *roster.Service
	Tracker  *overview.Tracker
}

// NewEngine builds the CMS client and the services on top of it.
func NewEngine(cfg *config.Config, logger *slog.Logger) *Engine {
	cms := dato.NewClient(cfg.CMS, logger)
	activitySvc := activity.NewService(logger, cms, cms, cfg.Activity, cfg.CMS.InternalDomain)
	rosterSvc := roster.NewService(logger, cms, activitySvc, !cfg.Activity.SkipCollaboratorActivity)

	return &Engine{
		CMS:      cms,
		Activity: activitySvc,
		Roster:   rosterSvc,
		Tracker:  overview.NewTracker(logger, activitySvc, rosterSvc, cfg.Activity.RefreshTimeout),
	}
}
