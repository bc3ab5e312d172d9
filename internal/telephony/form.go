// Package telephony holds the provider configuration form backing the
// settings screen.
package telephony

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"
)

// TwilioConfig is the flat provider configuration the settings form edits.
type TwilioConfig struct {
	SIPDomain   string `json:"sipDomain"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Active      bool   `json:"isActive"`
	Description string `json:"description"`
}

// Form is the in-memory editing state for the telephony settings screen.
// Edits land field by field as the operator types; there is no staging or
// dirty tracking, the latest value simply replaces the previous one.
type Form struct {
	mu     sync.Mutex
	cfg    TwilioConfig
	logger *slog.Logger
}

// NewForm seeds the form with an initial configuration.
func NewForm(initial TwilioConfig, logger *slog.Logger) *Form {
	return &Form{cfg: initial, logger: logger}
}

// Apply sets one field by its wire name. The boolean field accepts the
// usual strconv spellings. Unknown field names are an error.
func (f *Form) Apply(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case "sipDomain":
		f.cfg.SIPDomain = value
	case "username":
		f.cfg.Username = value
	case "password":
		f.cfg.Password = value
	case "description":
		f.cfg.Description = value
	case "isActive":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parse isActive: %w", err)
		}
		f.cfg.Active = b
	default:
		return fmt.Errorf("unknown telephony field %q", field)
	}
	return nil
}

// Config returns a copy of the current values.
func (f *Form) Config() TwilioConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cfg
}

// Complete reports whether the three required credentials are filled in.
// Active and the description do not count.
func (f *Form) Complete() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cfg.SIPDomain != "" && f.cfg.Username != "" && f.cfg.Password != ""
}

// TestConnection is a placeholder: no provider call is wired up yet, the
// request is only logged. TODO: dial the SIP domain once the provider
// sandbox account exists.
func (f *Form) TestConnection() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logger.Info("telephony connection test requested",
		"sip_domain", f.cfg.SIPDomain,
		"username", f.cfg.Username,
		"complete", f.cfg.SIPDomain != "" && f.cfg.Username != "" && f.cfg.Password != "")
}

// Save is a placeholder: values stay in memory and the save is only
// logged. The password is never written to the log.
func (f *Form) Save() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logger.Info("telephony configuration saved",
		"sip_domain", f.cfg.SIPDomain,
		"username", f.cfg.Username,
		"active", f.cfg.Active)
}
