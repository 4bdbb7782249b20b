package dato

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/heartmarshall/cms-blame/internal/domain"
)

const auditQueryType = "audit_log_query"

// QueryAuditEvents runs an audit log query and returns the first page of
// matching events, newest first.
func (c *Client) QueryAuditEvents(ctx context.Context, q domain.AuditQuery) ([]domain.AuditEvent, error) {
	var body auditQueryRequest
	body.Data.Type = auditQueryType
	body.Data.Attributes.Filter = AuditFilter(q)

	var env listEnvelope[apiAuditEvent]
	if err := c.do(ctx, http.MethodPost, "/audit-log-events/query", nil, body, &env); err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}

	out := make([]domain.AuditEvent, 0, len(env.Data))
	for _, e := range env.Data {
		out = append(out, domain.AuditEvent{
			ID:          e.ID,
			ActorID:     e.Attributes.Actor.ID,
			ActionName:  domain.Action(e.Attributes.ActionName),
			RequestPath: e.Attributes.Request.Path,
			OccurredAt:  e.Meta.OccurredAt,
		})
	}
	return out, nil
}

// AuditFilter renders q in the audit log filter language, e.g.
//
//	actor.id = '42' AND action_name IN ('publish', 'unpublish') AND request.path ~ '/items/'
func AuditFilter(q domain.AuditQuery) string {
	var clauses []string

	if q.ActorID != "" {
		clauses = append(clauses, "actor.id = "+quote(q.ActorID))
	}

	switch len(q.Actions) {
	case 0:
	case 1:
		clauses = append(clauses, "action_name = "+quote(q.Actions[0].String()))
	default:
		quoted := make([]string, len(q.Actions))
		for i, a := range q.Actions {
			quoted[i] = quote(a.String())
		}
		clauses = append(clauses, fmt.Sprintf("action_name IN (%s)", strings.Join(quoted, ", ")))
	}

	if q.PathPattern != "" {
		clauses = append(clauses, "request.path ~ "+quote(q.PathPattern))
	}

	return strings.Join(clauses, " AND ")
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
