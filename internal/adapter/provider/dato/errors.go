package dato

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/heartmarshall/cms-blame/internal/domain"
)

// Error codes the API reports when the token lacks a capability.
var forbiddenCodes = []string{
	"INSUFFICIENT_PERMISSIONS",
	"FORBIDDEN",
	"PLAN_UPGRADE_REQUIRED",
}

// APIError represents a non-2xx API response.
type APIError struct {
	StatusCode int
	Codes      []string
	Body       string // first 512 bytes
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status}

	var env apiErrorEnvelope
	if json.Unmarshal(body, &env) == nil {
		for _, d := range env.Data {
			if d.Attributes.Code != "" {
				e.Codes = append(e.Codes, d.Attributes.Code)
			}
		}
	}

	s := string(body)
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody]
	}
	e.Body = s
	return e
}

func (e *APIError) Error() string {
	if len(e.Codes) > 0 {
		return fmt.Sprintf("dato: HTTP %d: %s", e.StatusCode, strings.Join(e.Codes, ", "))
	}
	return fmt.Sprintf("dato: HTTP %d: %s", e.StatusCode, e.Body)
}

// Unwrap maps the response onto the domain sentinel errors.
func (e *APIError) Unwrap() error {
	for _, c := range e.Codes {
		if slices.Contains(forbiddenCodes, c) {
			return domain.ErrForbidden
		}
	}
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return domain.ErrUnavailable
	}
}
