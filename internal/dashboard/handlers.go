package dashboard

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/callboard/callboard/internal/auditlog"
	"github.com/callboard/callboard/internal/backend"
	"github.com/callboard/callboard/internal/nav"
)

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = loginTmpl.Execute(w, map[string]any{})
}

func (s *Server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)

	allowed, retryAfter := s.auth.CheckRateLimit(ip)
	if !allowed {
		s.logger.Warn("login rate-limited",
			"ip", ip,
			"retry_after", retryAfter.Round(time.Second).String(),
		)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		msg := fmt.Sprintf("Too many failed attempts. Try again in %d minutes.", int(retryAfter.Minutes())+1)
		_ = loginTmpl.Execute(w, map[string]any{"Error": msg})
		return
	}

	code := r.FormValue("code")
	if !s.auth.ValidateCode(code) {
		lockout := s.auth.RecordFailure(ip)
		if lockout > 0 {
			s.logger.Warn("login lockout triggered",
				"ip", ip,
				"lockout_duration", lockout.String(),
			)
		} else {
			s.logger.Info("login failed", "ip", ip)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = loginTmpl.Execute(w, map[string]any{"Error": "Invalid access code. Check your terminal."})
		return
	}

	s.auth.RecordSuccess(ip)
	s.logger.Info("login success", "ip", ip)

	token := s.auth.CreateSession()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   false, // served on the operator LAN over plain HTTP
	})
	http.Redirect(w, r, "/console", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err == nil {
		s.auth.InvalidateSession(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})

	s.logger.Info("logout", "ip", clientIP(r))
	http.Redirect(w, r, "/console/login", http.StatusFound)
}

// navItem is one rendered sidebar entry.
type navItem struct {
	Name        string
	Href        string
	Glyph       template.HTML
	Active      bool
	Collapsible bool
	Expanded    bool
	Subs        []navSubItem
}

type navSubItem struct {
	Name   string
	Href   string
	Glyph  template.HTML
	Active bool
}

var iconGlyphs = map[string]template.HTML{
	"gauge":   "&#x1f4ca;",
	"headset": "&#x1f3a7;",
	"scroll":  "&#x1f4dc;",
	"sliders": "&#x2699;",
	"phone":   "&#x260e;",
	"plug":    "&#x1f50c;",
	"gear":    "&#x1f527;",
}

func sectionHref(sec nav.Section) string {
	if sec.Slug == "dashboard" {
		return "/console"
	}
	return "/console/" + sec.Slug
}

// selectSection updates the shared sidebar state and returns the rendered
// nav plus page title under one lock.
func (s *Server) selectSection(slug string) ([]navItem, string, bool) {
	s.navMu.Lock()
	defer s.navMu.Unlock()

	if sec, ok := nav.FindSection(slug); ok {
		s.navState.Select(sec)
	}
	return s.buildNavLocked(), s.navState.Current.Display(), s.navState.Rail
}

func (s *Server) selectSubsection(parentSlug, subSlug string) ([]navItem, string, bool, bool) {
	s.navMu.Lock()
	defer s.navMu.Unlock()

	sec, ok := nav.FindSection(parentSlug)
	if !ok {
		return nil, "", false, false
	}
	var found bool
	for _, sub := range sec.Subsections {
		if sub.Slug == subSlug {
			s.navState.SelectSub(sec, sub)
			s.navState.SetExpanded(sec.Name, true)
			found = true
			break
		}
	}
	if !found {
		return nil, "", false, false
	}
	return s.buildNavLocked(), s.navState.Current.Display(), s.navState.Rail, true
}

// currentNav renders the sidebar without changing the selection. Partial
// endpoints use it so a background refresh never steals the highlight.
func (s *Server) currentNav() ([]navItem, string, bool) {
	s.navMu.Lock()
	defer s.navMu.Unlock()
	return s.buildNavLocked(), s.navState.Current.Display(), s.navState.Rail
}

func (s *Server) buildNavLocked() []navItem {
	items := make([]navItem, 0, len(nav.Sections))
	for _, sec := range nav.Sections {
		item := navItem{
			Name:        sec.Name,
			Href:        sectionHref(sec),
			Glyph:       iconGlyphs[sec.Icon],
			Active:      s.navState.IsSelected(sec),
			Collapsible: sec.Collapsible,
			Expanded:    sec.Collapsible && s.navState.IsExpanded(sec.Name),
		}
		for _, sub := range sec.Subsections {
			item.Subs = append(item.Subs, navSubItem{
				Name:   sub.Name,
				Href:   "/console/" + sec.Slug + "/" + sub.Slug,
				Glyph:  iconGlyphs[sub.Icon],
				Active: s.navState.IsSubSelected(sec, sub),
			})
		}
		items = append(items, item)
	}
	return items
}

func (s *Server) handleRailToggle(w http.ResponseWriter, r *http.Request) {
	s.navMu.Lock()
	s.navState.Rail = !s.navState.Rail
	s.navMu.Unlock()

	ref := r.Referer()
	if ref == "" {
		ref = "/console"
	}
	http.Redirect(w, r, ref, http.StatusFound)
}

// auditRow pairs an entry with its fixed display badges.
type auditRow struct {
	Entry    backend.AuditLogEntry
	UserCell template.HTML
	SevBadge auditlog.Badge
	OutBadge auditlog.Badge
}

func newAuditRow(e backend.AuditLogEntry) auditRow {
	return auditRow{
		Entry:    e,
		UserCell: agentCell(e.Actor.Username),
		SevBadge: auditlog.SeverityBadge(e.Severity),
		OutBadge: auditlog.OutcomeBadge(e.Status),
	}
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	items, title, rail := s.selectSection("dashboard")

	// A backend outage degrades to zeroed stats and an empty table; the
	// page itself always renders.
	stats, err := s.api.AuditStats(r.Context())
	if err != nil {
		s.logger.Error("audit stats unavailable", "error", err)
		stats = &backend.AuditStats{}
	}

	var recent []auditRow
	entries, err := s.api.ListAuditLogs(r.Context(), backend.AuditFilter{})
	if err != nil {
		s.logger.Error("recent audit events unavailable", "error", err)
	} else {
		if len(entries) > 8 {
			entries = entries[:8]
		}
		for _, e := range entries {
			recent = append(recent, newAuditRow(e))
		}
	}

	data := map[string]any{
		"Title":    title,
		"Nav":      items,
		"Rail":     rail,
		"Backend":  s.cfg.Backend.BaseURL,
		"Stats":    stats,
		"Snapshot": s.queue.Snapshot(),
		"Recent":   recent,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = overviewTmpl.Execute(w, data)
}

// agentRow pairs an agent with its avatar cell.
type agentRow struct {
	Agent backend.AgentStatus
	Cell  template.HTML
}

func (s *Server) queueRows() (*backend.AgentQueueSnapshot, []agentRow) {
	snap := s.queue.Snapshot()
	if snap == nil {
		return nil, nil
	}
	rows := make([]agentRow, 0, len(snap.Agents))
	for _, a := range snap.Agents {
		rows = append(rows, agentRow{Agent: a, Cell: agentCell(a.Name)})
	}
	return snap, rows
}

func (s *Server) handleAgents(w http.ResponseWriter, r *http.Request) {
	items, title, rail := s.selectSection("agents")
	snap, rows := s.queueRows()

	data := map[string]any{
		"Title":           title,
		"Nav":             items,
		"Rail":            rail,
		"Backend":         s.cfg.Backend.BaseURL,
		"Snapshot":        snap,
		"Agents":          rows,
		"IntervalSeconds": s.cfg.Queue.PollIntervalSeconds,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = agentsTmpl.Execute(w, data)
}

func (s *Server) handleQueuePartial(w http.ResponseWriter, r *http.Request) {
	snap, rows := s.queueRows()
	data := map[string]any{
		"Snapshot": snap,
		"Agents":   rows,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = queuePartialTmpl.Execute(w, data)
}

func (s *Server) handleAgentStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	status := backend.AgentState(r.FormValue("status"))

	valid := false
	for _, st := range backend.AgentStates {
		if st == status {
			valid = true
			break
		}
	}
	if !valid {
		http.Error(w, "unknown agent status", http.StatusBadRequest)
		return
	}

	sip := r.FormValue("sipRegistered") == "true"
	if err := s.queue.SetAgentStatus(r.Context(), id, status, sip); err != nil {
		// The write failed; the queue keeps showing what the backend last
		// confirmed. Surface the failure and send the operator back.
		s.logger.Error("agent status update rejected", "agent_id", id, "error", err)
	} else {
		s.logger.Info("agent status updated", "agent_id", id, "status", string(status), "sip_registered", sip)
	}
	http.Redirect(w, r, "/console/agents", http.StatusFound)
}

// filterFromQuery reads the audit filter out of the request query.
func filterFromQuery(r *http.Request) backend.AuditFilter {
	q := r.URL.Query()
	return backend.AuditFilter{
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
		UserID:    q.Get("userId"),
		Action:    q.Get("action"),
		Severity:  q.Get("severity"),
		Category:  q.Get("category"),
		Status:    q.Get("status"),
		Search:    q.Get("search"),
	}
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	items, title, rail := s.selectSection("audit")
	filter := filterFromQuery(r)

	stats, err := s.api.AuditStats(r.Context())
	if err != nil {
		s.logger.Error("audit stats unavailable", "error", err)
		stats = &backend.AuditStats{}
	}

	var rows []auditRow
	entries, err := s.api.ListAuditLogs(r.Context(), filter)
	if err != nil {
		s.logger.Error("audit list unavailable", "error", err)
	} else {
		// The backend already saw the search term; narrowing again here
		// keeps the display contract that a result row always matches the
		// term in a visible column.
		for _, e := range auditlog.Narrow(entries, filter.Search) {
			rows = append(rows, newAuditRow(e))
		}
	}

	data := map[string]any{
		"Title":      title,
		"Nav":        items,
		"Rail":       rail,
		"Backend":    s.cfg.Backend.BaseURL,
		"Stats":      stats,
		"Filter":     filter,
		"Rows":       rows,
		"RawQuery":   template.URL(filter.Values().Encode()),
		"Severities": backend.Severities,
		"Categories": backend.Categories,
		"Outcomes":   backend.Outcomes,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = auditTmpl.Execute(w, data)
}

func (s *Server) handleAuditExport(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	body, err := s.api.ExportAuditCSV(r.Context(), filter)
	if err != nil {
		s.logger.Error("audit export failed", "error", err)
		http.Error(w, "export unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", auditlog.ExportFilename(time.Now())))
	_, _ = w.Write(body)
}

func (s *Server) handleAuditDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	filter := filterFromQuery(r)

	// There is no fetch-by-id endpoint; the detail view re-runs the list
	// the row came from and picks the entry out of it.
	entries, err := s.api.ListAuditLogs(r.Context(), filter)
	if err != nil {
		s.logger.Error("audit detail unavailable", "id", id, "error", err)
		http.Error(w, "backend unavailable", http.StatusBadGateway)
		return
	}

	for _, e := range entries {
		if e.ID != id {
			continue
		}
		row := newAuditRow(e)
		var detailsJSON string
		if len(e.Details) > 0 {
			if b, err := json.MarshalIndent(e.Details, "", "  "); err == nil {
				detailsJSON = string(b)
			}
		}
		data := map[string]any{
			"Entry":       row.Entry,
			"UserCell":    row.UserCell,
			"SevBadge":    row.SevBadge,
			"OutBadge":    row.OutBadge,
			"DetailsJSON": detailsJSON,
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = auditDetailTmpl.Execute(w, data)
		return
	}

	http.NotFound(w, r)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	items, title, rail := s.selectSection("settings")
	sec, _ := nav.FindSection("settings")

	type subCard struct {
		Name, Href, Description string
	}
	cards := make([]subCard, 0, len(sec.Subsections))
	for _, sub := range sec.Subsections {
		cards = append(cards, subCard{
			Name:        sub.Name,
			Href:        "/console/settings/" + sub.Slug,
			Description: sub.Description,
		})
	}

	data := map[string]any{
		"Title":       title,
		"Nav":         items,
		"Rail":        rail,
		"Backend":     s.cfg.Backend.BaseURL,
		"Description": sec.Description,
		"Subs":        cards,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = settingsTmpl.Execute(w, data)
}

func (s *Server) handleSettingsSub(w http.ResponseWriter, r *http.Request) {
	subSlug := r.PathValue("sub")
	items, title, rail, ok := s.selectSubsection("settings", subSlug)
	if !ok {
		http.NotFound(w, r)
		return
	}

	data := map[string]any{
		"Title":   title,
		"Nav":     items,
		"Rail":    rail,
		"Backend": s.cfg.Backend.BaseURL,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	switch subSlug {
	case "telephony":
		data["Config"] = s.phone.Config()
		data["Complete"] = s.phone.Complete()
		data["Notice"] = noticeFor(r.URL.Query().Get("done"))
		_ = telephonyTmpl.Execute(w, data)
	default:
		sec, _ := nav.FindSection("settings")
		for _, sub := range sec.Subsections {
			if sub.Slug == subSlug {
				data["Description"] = sub.Description
			}
		}
		_ = settingsStubTmpl.Execute(w, data)
	}
}

func noticeFor(done string) string {
	switch done {
	case "test":
		return "Connection test requested. Check the server log for the result."
	case "save":
		return "Configuration saved."
	}
	return ""
}

func (s *Server) handleTelephonyField(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	for _, field := range []string{"sipDomain", "username", "password", "description", "isActive"} {
		if !r.PostForm.Has(field) {
			continue
		}
		if err := s.phone.Apply(field, r.PostForm.Get(field)); err != nil {
			s.logger.Warn("telephony field rejected", "field", field, "error", err)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTelephonyTest(w http.ResponseWriter, r *http.Request) {
	if !s.phone.Complete() {
		http.Error(w, "telephony configuration incomplete", http.StatusConflict)
		return
	}
	s.phone.TestConnection()
	http.Redirect(w, r, "/console/settings/telephony?done=test", http.StatusFound)
}

func (s *Server) handleTelephonySave(w http.ResponseWriter, r *http.Request) {
	if !s.phone.Complete() {
		http.Error(w, "telephony configuration incomplete", http.StatusConflict)
		return
	}
	s.phone.Save()
	http.Redirect(w, r, "/console/settings/telephony?done=save", http.StatusFound)
}
