package dashboard

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	sessionCookieName = "callboard_session"
	sessionDuration   = 24 * time.Hour

	maxLoginFailures = 5
	lockoutDuration  = 15 * time.Minute
)

type session struct {
	token     string
	createdAt time.Time
}

type loginAttempts struct {
	failures    int
	lockedUntil time.Time
}

// Auth manages access-code authentication and session tokens for the console.
type Auth struct {
	accessCode string
	sessions   map[string]session
	attempts   map[string]*loginAttempts
	mu         sync.RWMutex
}

// NewAuth generates a random 8-digit access code and returns a new Auth instance.
func NewAuth() *Auth {
	return &Auth{
		accessCode: generateAccessCode(),
		sessions:   make(map[string]session),
		attempts:   make(map[string]*loginAttempts),
	}
}

// AccessCode returns the code the user must enter to authenticate.
func (a *Auth) AccessCode() string {
	return a.accessCode
}

// ValidateCode checks if the provided code matches the access code.
func (a *Auth) ValidateCode(code string) bool {
	return code == a.accessCode
}

// CreateSession generates a session token and stores it.
func (a *Auth) CreateSession() string {
	token := generateSessionToken()
	a.mu.Lock()
	a.sessions[token] = session{token: token, createdAt: time.Now()}
	a.mu.Unlock()
	return token
}

// ValidateSession checks if a session token is valid and not expired.
func (a *Auth) ValidateSession(token string) bool {
	a.mu.RLock()
	s, ok := a.sessions[token]
	a.mu.RUnlock()
	if !ok {
		return false
	}
	return time.Since(s.createdAt) < sessionDuration
}

// InvalidateSession removes a session token.
func (a *Auth) InvalidateSession(token string) {
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()
}

// CheckRateLimit reports whether an IP may attempt a login, and if not,
// how long until the lockout lifts.
func (a *Auth) CheckRateLimit(ip string) (bool, time.Duration) {
	a.mu.RLock()
	att, ok := a.attempts[ip]
	a.mu.RUnlock()
	if !ok {
		return true, 0
	}
	if remaining := time.Until(att.lockedUntil); remaining > 0 {
		return false, remaining
	}
	return true, 0
}

// RecordFailure counts a failed login for an IP. Once the failure budget is
// exhausted the IP is locked out; the returned duration is nonzero when this
// failure triggered the lockout.
func (a *Auth) RecordFailure(ip string) time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()

	att, ok := a.attempts[ip]
	if !ok {
		att = &loginAttempts{}
		a.attempts[ip] = att
	}
	att.failures++
	if att.failures >= maxLoginFailures {
		att.lockedUntil = time.Now().Add(lockoutDuration)
		att.failures = 0
		return lockoutDuration
	}
	return 0
}

// RecordSuccess clears the failure count for an IP.
func (a *Auth) RecordSuccess(ip string) {
	a.mu.Lock()
	delete(a.attempts, ip)
	a.mu.Unlock()
}

// Middleware protects console routes, redirecting unauthenticated requests
// to login. The login page and the metrics endpoint stay open.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/console/login" || r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || !a.ValidateSession(cookie.Value) {
			http.Redirect(w, r, "/console/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the remote address without the port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}

// generateAccessCode returns a random 8-digit numeric code.
func generateAccessCode() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(100_000_000))
	return fmt.Sprintf("%08d", n.Int64())
}

// generateSessionToken returns a cryptographically random hex string.
func generateSessionToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return fmt.Sprintf("%x", b)
}
