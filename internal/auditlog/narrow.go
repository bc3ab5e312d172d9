// Package auditlog holds the view-side behavior of the audit log screen:
// the client-side search pass, the fixed presentation mappings, and the
// export download naming.
package auditlog

import (
	"fmt"
	"strings"
	"time"

	"github.com/callboard/callboard/internal/backend"
)

// Narrow re-applies the free-text search term over an already-fetched page
// as a case-insensitive substring match across action, resource, and
// username. The backend receives the same term, so this pass can only
// narrow results, never widen them. An empty term returns the page as-is.
func Narrow(entries []backend.AuditLogEntry, term string) []backend.AuditLogEntry {
	if term == "" {
		return entries
	}
	needle := strings.ToLower(term)

	out := make([]backend.AuditLogEntry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Action), needle) ||
			strings.Contains(strings.ToLower(e.Resource), needle) ||
			strings.Contains(strings.ToLower(e.Actor.Username), needle) {
			out = append(out, e)
		}
	}
	return out
}

// ExportFilename names the CSV download for a given day.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("audit-logs-%s.csv", now.UTC().Format("2006-01-02"))
}
