package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/cms-blame/internal/domain"
)

func (c *cli) runOverview(ctx context.Context) error {
	snap := c.engine.Tracker.Load(ctx)
	if err := c.render(snap, func() error { return renderOverview(c.out, snap) }); err != nil {
		return err
	}
	if snap.Activity.Status == domain.LoadStatusFailed && snap.Roster.Status == domain.LoadStatusFailed {
		return errors.New("activity and roster both failed")
	}
	return nil
}

func newFeedCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "feed updates|publishes",
		Short:     "Print one activity feed",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.FeedUpdates), string(domain.FeedPublishes)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseFeedKind(args[0])
			if err != nil {
				return err
			}
			entries, err := c.engine.Activity.Feed(cmd.Context(), kind)
			if err != nil {
				return err
			}
			return c.render(entries, func() error { return renderFeed(c.out, feedTitle(kind), entries) })
		},
	}
}

func newRosterCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Print the collaborators with their last update and publish",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			collaborators, err := c.engine.Roster.ListCollaborators(cmd.Context())
			if err != nil {
				return err
			}
			return c.render(collaborators, func() error { return renderRoster(c.out, collaborators) })
		},
	}
}

func newActorCmd(c *cli) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "actor USER_ID",
		Short: "Print the latest change made by one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			feed, err := domain.ParseFeedKind(kind)
			if err != nil {
				return err
			}
			latest, err := c.engine.Activity.LatestByActor(cmd.Context(), args[0], feed)
			if err != nil {
				return err
			}
			return c.render(latest, func() error { return renderActorActivity(c.out, args[0], latest) })
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(domain.FeedUpdates), "updates or publishes")
	return cmd
}

// render writes v as JSON or runs the text renderer, per --format.
func (c *cli) render(v any, text func() error) error {
	if c.opts.format == formatJSON {
		return writeJSON(c.out, v)
	}
	return text()
}

func feedTitle(kind domain.FeedKind) string {
	if kind == domain.FeedPublishes {
		return "Recent publishes"
	}
	return "Recent updates"
}
