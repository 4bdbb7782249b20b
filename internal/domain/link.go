package domain

import (
	"net/url"
	"strings"
)

// EditorURL returns the editor deep link of a record in the tenant
// identified by internalDomain (e.g. "acme.admin.datocms.com").
// A domain given with a scheme keeps it; otherwise https is used.
func EditorURL(internalDomain, recordID string) string {
	base := strings.TrimRight(strings.TrimSpace(internalDomain), "/")
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	return base + "/editor/items/" + url.PathEscape(recordID) + "/edit"
}
