package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchQueue(t *testing.T) {
	var gotRequestID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/agent/queue", r.URL.Path)
		gotRequestID = r.Header.Get("X-Request-ID")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"agents": [
					{"id":"a1","name":"Ana","status":"available","sipRegistered":true,"lastUpdate":"2026-08-25T10:00:00Z"},
					{"id":"a2","name":"Bo","status":"busy","sipRegistered":false,"lastUpdate":"2026-08-25T10:00:05Z"}
				],
				"summary": {"total":2,"available":1,"busy":1,"offline":0}
			}
		}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	snap, err := c.FetchQueue(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.Agents, 2)
	assert.Equal(t, AgentAvailable, snap.Agents[0].Status)
	assert.True(t, snap.Agents[0].SIPRegistered)
	assert.True(t, snap.Summary.Consistent())
	assert.NotEmpty(t, gotRequestID, "every request should carry X-Request-ID")
}

func TestFetchQueue_EmptySnapshot(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"agents":[],"summary":{"total":0,"available":0,"busy":0,"offline":0}}}`))
	}))
	defer ts.Close()

	snap, err := NewClient(ts.URL).FetchQueue(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Agents)
	assert.Equal(t, QueueSummary{}, snap.Summary)
	assert.True(t, snap.Summary.Consistent())
}

func TestFetchQueue_BackendFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).FetchQueue(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestUpdateAgent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/agent/queue", r.URL.Path)

		var upd AgentUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&upd))
		assert.Equal(t, "a1", upd.AgentID)
		assert.Equal(t, AgentBusy, upd.Status)
		assert.True(t, upd.SIPRegistered)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer ts.Close()

	err := NewClient(ts.URL).UpdateAgent(context.Background(), AgentUpdate{
		AgentID:       "a1",
		Status:        AgentBusy,
		SIPRegistered: true,
	})
	require.NoError(t, err)
}

func TestUpdateAgent_ReportedFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"error":"unknown agent"}`))
	}))
	defer ts.Close()

	err := NewClient(ts.URL).UpdateAgent(context.Background(), AgentUpdate{AgentID: "ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown agent")
}

func TestListAuditLogs_FilterParams(t *testing.T) {
	var gotQuery map[string][]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/audit-logs", r.URL.Path)
		gotQuery = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":"e1","timestamp":"2026-08-25T09:00:00Z",
			 "actor":{"userId":"u1","username":"root","role":"admin"},
			 "action":"login","resource":"session","ipAddress":"10.0.0.1",
			 "userAgent":"curl","severity":"critical","category":"security","status":"failure"}
		]}`))
	}))
	defer ts.Close()

	entries, err := NewClient(ts.URL).ListAuditLogs(context.Background(), AuditFilter{
		StartDate: "2026-08-01",
		EndDate:   "2026-08-25",
		Severity:  "critical",
		Category:  "security",
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "root", entries[0].Actor.Username)
	assert.Equal(t, SeverityCritical, entries[0].Severity)

	assert.Equal(t, []string{"2026-08-01"}, gotQuery["startDate"])
	assert.Equal(t, []string{"critical"}, gotQuery["severity"])
	assert.Equal(t, []string{"security"}, gotQuery["category"])
	assert.NotContains(t, gotQuery, "userId", "empty fields must be omitted")
	assert.NotContains(t, gotQuery, "search", "empty fields must be omitted")
}

func TestAuditStats(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/audit-logs/stats", r.URL.Path)
		require.Empty(t, r.URL.RawQuery, "stats query takes no parameters")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"totalEvents":1204,"successRate":97.5,"warnings":12,"activeUsers":9}}`))
	}))
	defer ts.Close()

	stats, err := NewClient(ts.URL).AuditStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1204, stats.TotalEvents)
	assert.InDelta(t, 97.5, stats.SuccessRate, 0.001)
}

func TestExportAuditCSV(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/audit-logs/export", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "csv", q.Get("format"))
		assert.Equal(t, "critical", q.Get("severity"))

		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("id,action\ne1,login\n"))
	}))
	defer ts.Close()

	body, err := NewClient(ts.URL).ExportAuditCSV(context.Background(), AuditFilter{Severity: "critical"})
	require.NoError(t, err)
	assert.Equal(t, "id,action\ne1,login\n", string(body))
}

func TestAuditFilter_Values(t *testing.T) {
	f := AuditFilter{
		StartDate: "2026-01-01",
		UserID:    "u7",
		Search:    "export",
	}
	v := f.Values()
	assert.Equal(t, "2026-01-01", v.Get("startDate"))
	assert.Equal(t, "u7", v.Get("userId"))
	assert.Equal(t, "export", v.Get("search"))
	assert.Len(t, v, 3, "empty fields must not appear")
}

func TestAuditFilter_ExportValuesSuperset(t *testing.T) {
	f := AuditFilter{
		StartDate: "2026-01-01",
		EndDate:   "2026-02-01",
		Action:    "agent.update",
		Status:    "failure",
		Search:    "sip",
	}
	list := f.Values()
	export := f.ExportValues()

	for key, vals := range list {
		assert.Equal(t, vals, export[key], "export must carry list param %q", key)
	}
	assert.Equal(t, "csv", export.Get("format"))
	assert.Len(t, export, len(list)+1)
}

func TestSummarizeAgents(t *testing.T) {
	agents := []AgentStatus{
		{ID: "1", Status: AgentAvailable},
		{ID: "2", Status: AgentAvailable},
		{ID: "3", Status: AgentBusy},
		{ID: "4", Status: AgentOffline},
	}
	sum := SummarizeAgents(agents)
	assert.Equal(t, QueueSummary{Total: 4, Available: 2, Busy: 1, Offline: 1}, sum)
	assert.True(t, sum.Consistent())

	assert.Equal(t, QueueSummary{}, SummarizeAgents(nil))
}
