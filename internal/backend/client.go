package backend

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Client calls the call-center backend REST API.
//
// Deliberately no request timeout and no retries: a slow response resolves
// whenever it resolves and the last write wins. Callers that need to give
// up pass a context.
type Client struct {
	http *resty.Client
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string) *Client {
	r := resty.New()
	r.SetBaseURL(baseURL)
	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("Accept", "application/json")
	r.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})
	return &Client{http: r}
}

type queueEnvelope struct {
	Success bool                `json:"success"`
	Data    *AgentQueueSnapshot `json:"data"`
}

type writeEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type auditListEnvelope struct {
	Data []AuditLogEntry `json:"data"`
}

type auditStatsEnvelope struct {
	Data *AuditStats `json:"data"`
}

// FetchQueue returns the current agent queue snapshot.
func (c *Client) FetchQueue(ctx context.Context) (*AgentQueueSnapshot, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&queueEnvelope{}).
		Get("/api/agent/queue")
	if err != nil {
		return nil, fmt.Errorf("fetching agent queue: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching agent queue: backend returned %s", resp.Status())
	}

	env, ok := resp.Result().(*queueEnvelope)
	if !ok || env.Data == nil {
		return nil, fmt.Errorf("fetching agent queue: malformed response")
	}
	if !env.Success {
		return nil, fmt.Errorf("fetching agent queue: backend reported failure")
	}
	return env.Data, nil
}

// UpdateAgent posts a status / SIP registration change for one agent.
func (c *Client) UpdateAgent(ctx context.Context, upd AgentUpdate) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(upd).
		SetResult(&writeEnvelope{}).
		Post("/api/agent/queue")
	if err != nil {
		return fmt.Errorf("updating agent %s: %w", upd.AgentID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("updating agent %s: backend returned %s", upd.AgentID, resp.Status())
	}

	env, ok := resp.Result().(*writeEnvelope)
	if !ok {
		return fmt.Errorf("updating agent %s: malformed response", upd.AgentID)
	}
	if !env.Success {
		if env.Error != "" {
			return fmt.Errorf("updating agent %s: %s", upd.AgentID, env.Error)
		}
		return fmt.Errorf("updating agent %s: backend reported failure", upd.AgentID)
	}
	return nil
}

// ListAuditLogs returns audit entries matching the filter. The search term
// is passed to the backend; callers re-apply it client-side (see
// auditlog.Narrow) to match the historical display contract.
func (c *Client) ListAuditLogs(ctx context.Context, filter AuditFilter) ([]AuditLogEntry, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(filter.Values()).
		SetResult(&auditListEnvelope{}).
		Get("/api/admin/audit-logs")
	if err != nil {
		return nil, fmt.Errorf("listing audit logs: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("listing audit logs: backend returned %s", resp.Status())
	}

	env, ok := resp.Result().(*auditListEnvelope)
	if !ok {
		return nil, fmt.Errorf("listing audit logs: malformed response")
	}
	return env.Data, nil
}

// AuditStats returns the aggregate counters. The stats query takes no
// parameters; it is independent of any active filter.
func (c *Client) AuditStats(ctx context.Context) (*AuditStats, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&auditStatsEnvelope{}).
		Get("/api/admin/audit-logs/stats")
	if err != nil {
		return nil, fmt.Errorf("fetching audit stats: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching audit stats: backend returned %s", resp.Status())
	}

	env, ok := resp.Result().(*auditStatsEnvelope)
	if !ok || env.Data == nil {
		return nil, fmt.Errorf("fetching audit stats: malformed response")
	}
	return env.Data, nil
}

// ExportAuditCSV fetches the CSV export for the filter and returns the raw
// body. The backend generates the file; the console only relays bytes.
func (c *Client) ExportAuditCSV(ctx context.Context, filter AuditFilter) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(filter.ExportValues()).
		Get("/api/admin/audit-logs/export")
	if err != nil {
		return nil, fmt.Errorf("exporting audit logs: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("exporting audit logs: backend returned %s", resp.Status())
	}
	return resp.Body(), nil
}
