package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/heartmarshall/cms-blame/internal/domain"
)

const (
	formatText = "text"
	formatJSON = "json"
)

const (
	timeLayout = "2006-01-02 15:04"
	none       = "-"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderOverview(w io.Writer, o domain.Overview) error {
	if o.Activity.Status == domain.LoadStatusFailed {
		fmt.Fprintf(w, "Activity unavailable: %s\n\n", o.Activity.Error)
	} else {
		if err := renderFeed(w, "Recent updates", o.Activity.Feeds.Updates); err != nil {
			return err
		}
		fmt.Fprintln(w)
		if err := renderFeed(w, "Recent publishes", o.Activity.Feeds.Publishes); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if o.Roster.Status == domain.LoadStatusFailed {
		_, err := fmt.Fprintf(w, "Collaborators unavailable: %s\n", o.Roster.Error)
		return err
	}
	return renderRoster(w, o.Roster.Collaborators)
}

func renderFeed(w io.Writer, title string, entries []domain.ActivityEntry) error {
	fmt.Fprintln(w, title)
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "  (no activity)")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tACTION\tMODEL\tTITLE\tLINK")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.OccurredAt.Local().Format(timeLayout),
			e.Action,
			orNone(e.CategoryName),
			orNone(e.Title),
			e.URL,
		)
	}
	return tw.Flush()
}

func renderRoster(w io.Writer, collaborators []domain.Collaborator) error {
	fmt.Fprintln(w, "Collaborators")
	if len(collaborators) == 0 {
		_, err := fmt.Fprintln(w, "  (none)")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROLE\tNAME\tLAST LOGIN\tLAST UPDATE\tLAST PUBLISH/UNPUBLISH")
	for _, c := range collaborators {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			orNone(c.RoleName),
			c.DisplayName,
			lastLogin(c.LastAccess),
			describeActivity(c.LastUpdate, false),
			describeActivity(c.LastPublish, true),
		)
	}
	return tw.Flush()
}

func renderActorActivity(w io.Writer, actorID string, a *domain.ActorActivity) error {
	if a == nil {
		_, err := fmt.Fprintf(w, "No matching activity for user %s\n", actorID)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", describeActivity(a, true), a.URL)
	return err
}

func lastLogin(t *time.Time) string {
	if t == nil {
		return "Never"
	}
	return t.Local().Format(timeLayout)
}

// describeActivity renders "#<record> (<time>)", prefixed by the action when
// withAction is set since the publish column mixes publish and unpublish.
func describeActivity(a *domain.ActorActivity, withAction bool) string {
	if a == nil {
		return none
	}
	s := fmt.Sprintf("#%s (%s)", a.RecordID, a.OccurredAt.Local().Format(timeLayout))
	if withAction {
		s = a.Action.String() + " " + s
	}
	return s
}

func orNone(s string) string {
	if s == "" {
		return none
	}
	return s
}
