// Package backend is a typed client for the call-center backend REST API.
// The console owns no domain data; everything here mirrors the wire shapes
// the backend serves.
package backend

// AgentState is the telephony availability of an agent.
type AgentState string

const (
	AgentOffline   AgentState = "offline"
	AgentAvailable AgentState = "available"
	AgentBusy      AgentState = "busy"
)

// AgentStates lists every state the backend can report.
var AgentStates = []AgentState{AgentOffline, AgentAvailable, AgentBusy}

// AgentStatus is one agent's row in the queue snapshot.
type AgentStatus struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Status        AgentState `json:"status"`
	SIPRegistered bool       `json:"sipRegistered"`
	LastUpdate    string     `json:"lastUpdate"`
}

// QueueSummary holds per-state counts for a snapshot.
type QueueSummary struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Busy      int `json:"busy"`
	Offline   int `json:"offline"`
}

// Consistent reports whether the per-state counts add up to the total.
func (s QueueSummary) Consistent() bool {
	return s.Available+s.Busy+s.Offline == s.Total
}

// AgentQueueSnapshot is the full queue state, replaced wholesale on each
// successful fetch.
type AgentQueueSnapshot struct {
	Agents  []AgentStatus `json:"agents"`
	Summary QueueSummary  `json:"summary"`
}

// SummarizeAgents derives per-state counts from an agent list.
func SummarizeAgents(agents []AgentStatus) QueueSummary {
	sum := QueueSummary{Total: len(agents)}
	for _, a := range agents {
		switch a.Status {
		case AgentAvailable:
			sum.Available++
		case AgentBusy:
			sum.Busy++
		case AgentOffline:
			sum.Offline++
		}
	}
	return sum
}

// AgentUpdate is the body of POST /api/agent/queue. Status and SIP
// registration are independent knobs sent in one request.
type AgentUpdate struct {
	AgentID       string     `json:"agentId"`
	Status        AgentState `json:"status"`
	SIPRegistered bool       `json:"sipRegistered"`
}

// Severity classifies an audit event.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Severities lists every severity the backend emits.
var Severities = []Severity{SeverityInfo, SeverityWarning, SeverityError, SeverityCritical}

// Category groups audit events by subsystem.
type Category string

const (
	CategoryAuth     Category = "auth"
	CategoryData     Category = "data"
	CategoryAdmin    Category = "admin"
	CategoryCampaign Category = "campaign"
	CategoryCall     Category = "call"
	CategorySystem   Category = "system"
	CategorySecurity Category = "security"
)

// Categories lists every category the backend emits.
var Categories = []Category{
	CategoryAuth, CategoryData, CategoryAdmin, CategoryCampaign,
	CategoryCall, CategorySystem, CategorySecurity,
}

// Outcome is the result of the audited action.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomePending Outcome = "pending"
)

// Outcomes lists every outcome the backend emits.
var Outcomes = []Outcome{OutcomeSuccess, OutcomeFailure, OutcomePending}

// Actor identifies who performed an audited action.
type Actor struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuditLogEntry is a single audit record. Entries are immutable once
// received; the console only replaces whole result pages.
type AuditLogEntry struct {
	ID         string         `json:"id"`
	Timestamp  string         `json:"timestamp"`
	Actor      Actor          `json:"actor"`
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	ResourceID string         `json:"resourceId,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	IPAddress  string         `json:"ipAddress"`
	UserAgent  string         `json:"userAgent"`
	Severity   Severity       `json:"severity"`
	Category   Category       `json:"category"`
	Status     Outcome        `json:"status"`
}

// AuditStats is the unfiltered aggregate from GET /api/admin/audit-logs/stats.
type AuditStats struct {
	TotalEvents int     `json:"totalEvents"`
	SuccessRate float64 `json:"successRate"`
	Warnings    int     `json:"warnings"`
	ActiveUsers int     `json:"activeUsers"`
}
