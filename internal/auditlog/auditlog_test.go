package auditlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/callboard/callboard/internal/backend"
)

func entry(id, action, resource, username string) backend.AuditLogEntry {
	return backend.AuditLogEntry{
		ID:       id,
		Action:   action,
		Resource: resource,
		Actor:    backend.Actor{Username: username},
	}
}

func TestNarrow_EmptyTermKeepsPage(t *testing.T) {
	page := []backend.AuditLogEntry{
		entry("1", "login", "session", "ada"),
		entry("2", "agent.update", "agent", "bob"),
	}
	assert.Equal(t, page, Narrow(page, ""))
}

func TestNarrow_MatchesAcrossFields(t *testing.T) {
	page := []backend.AuditLogEntry{
		entry("1", "campaign.start", "campaign", "ada"),
		entry("2", "login", "session", "campbell"),
		entry("3", "export", "audit-log", "bob"),
		entry("4", "agent.update", "CAMPAIGN", "eve"),
	}

	got := Narrow(page, "camp")
	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	// action match, username match, and case-insensitive resource match
	assert.Equal(t, []string{"1", "2", "4"}, ids)
}

func TestNarrow_NeverWidens(t *testing.T) {
	page := []backend.AuditLogEntry{
		entry("1", "login", "session", "ada"),
	}
	got := Narrow(page, "zzz")
	assert.Empty(t, got)
	assert.NotNil(t, got, "narrowing to nothing still yields a renderable slice")
}

func TestNarrow_IgnoresOtherFields(t *testing.T) {
	e := entry("1", "login", "session", "ada")
	e.IPAddress = "10.9.9.9"
	e.UserAgent = "needle-browser"

	assert.Empty(t, Narrow([]backend.AuditLogEntry{e}, "needle"),
		"search must only consider action, resource, and username")
}

func TestSeverityBadge_Exhaustive(t *testing.T) {
	want := map[backend.Severity]Badge{
		backend.SeverityInfo:     {Color: "#3b82f6", Icon: IconInfo},
		backend.SeverityWarning:  {Color: "#f59e0b", Icon: IconTriangle},
		backend.SeverityError:    {Color: "#ef4444", Icon: IconCross},
		backend.SeverityCritical: {Color: "#b91c1c", Icon: IconTriangle},
	}
	assert.Len(t, want, len(backend.Severities), "every severity needs a pairing")
	for _, sev := range backend.Severities {
		assert.Equal(t, want[sev], SeverityBadge(sev), "severity %q", sev)
	}
}

func TestOutcomeBadge_Exhaustive(t *testing.T) {
	want := map[backend.Outcome]Badge{
		backend.OutcomeSuccess: {Color: "#22c55e", Icon: IconCheck},
		backend.OutcomeFailure: {Color: "#ef4444", Icon: IconCross},
		backend.OutcomePending: {Color: "#f59e0b", Icon: IconDocument},
	}
	assert.Len(t, want, len(backend.Outcomes), "every outcome needs a pairing")
	for _, o := range backend.Outcomes {
		assert.Equal(t, want[o], OutcomeBadge(o), "outcome %q", o)
	}
}

func TestBadge_UnknownValuesFallBack(t *testing.T) {
	assert.Equal(t, fallbackBadge, SeverityBadge("mystery"))
	assert.Equal(t, fallbackBadge, OutcomeBadge("mystery"))
}

func TestExportFilename(t *testing.T) {
	ts := time.Date(2026, 8, 25, 23, 30, 0, 0, time.FixedZone("UTC+9", 9*3600))
	assert.Equal(t, "audit-logs-2026-08-25.csv", ExportFilename(ts))
}
