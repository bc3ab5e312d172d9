package dashboard

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/callboard/callboard/internal/agentqueue"
	"github.com/callboard/callboard/internal/backend"
	"github.com/callboard/callboard/internal/config"
	"github.com/callboard/callboard/internal/nav"
	"github.com/callboard/callboard/internal/telephony"
)

// Server serves the callboard admin console.
type Server struct {
	auth   *Auth
	cfg    *config.Config
	api    *backend.Client
	queue  *agentqueue.Poller
	phone  *telephony.Form
	logger *slog.Logger
	mux    *http.ServeMux

	// Sidebar state is shared across requests: a single operator console,
	// one selection and one set of expanded sections.
	navMu    sync.Mutex
	navState *nav.State
}

// NewServer creates a console server with access-code authentication.
func NewServer(cfg *config.Config, api *backend.Client, queue *agentqueue.Poller, phone *telephony.Form, registry *prometheus.Registry, logger *slog.Logger) *Server {
	s := &Server{
		auth:     NewAuth(),
		cfg:      cfg,
		api:      api,
		queue:    queue,
		phone:    phone,
		logger:   logger,
		mux:      http.NewServeMux(),
		navState: nav.NewState(),
	}
	s.routes(registry)
	return s
}

// AccessCode returns the one-time access code displayed in the terminal.
func (s *Server) AccessCode() string {
	return s.auth.AccessCode()
}

// Handler returns the console HTTP handler with auth middleware applied.
func (s *Server) Handler() http.Handler {
	return s.auth.Middleware(s.mux)
}

func (s *Server) routes(registry *prometheus.Registry) {
	s.mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/console", http.StatusFound)
	})

	s.mux.HandleFunc("GET /console/login", s.handleLoginPage)
	s.mux.HandleFunc("POST /console/login", s.handleLoginSubmit)
	s.mux.HandleFunc("GET /console/logout", s.handleLogout)

	s.mux.HandleFunc("GET /console", s.handleOverview)
	s.mux.HandleFunc("GET /console/agents", s.handleAgents)
	s.mux.HandleFunc("POST /console/agents/{id}/status", s.handleAgentStatus)
	s.mux.HandleFunc("GET /console/audit", s.handleAudit)
	s.mux.HandleFunc("GET /console/audit/export", s.handleAuditExport)
	s.mux.HandleFunc("GET /console/settings", s.handleSettings)
	s.mux.HandleFunc("GET /console/settings/{sub}", s.handleSettingsSub)
	s.mux.HandleFunc("POST /console/settings/telephony/field", s.handleTelephonyField)
	s.mux.HandleFunc("POST /console/settings/telephony/test", s.handleTelephonyTest)
	s.mux.HandleFunc("POST /console/settings/telephony/save", s.handleTelephonySave)
	s.mux.HandleFunc("POST /console/nav/rail", s.handleRailToggle)

	// HTMX partial endpoints
	s.mux.HandleFunc("GET /console/api/queue", s.handleQueuePartial)
	s.mux.HandleFunc("GET /console/api/audit/{id}", s.handleAuditDetail)

	if registry != nil {
		registry.MustRegister(newQueueCollector(s.queue))
		s.mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
}
