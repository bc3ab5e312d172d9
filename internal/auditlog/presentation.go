package auditlog

import "github.com/callboard/callboard/internal/backend"

// Badge pairs the color and icon a severity or outcome renders with.
// These pairings are display invariants; changing one changes the meaning
// operators have learned to scan for.
type Badge struct {
	Color string // CSS color value
	Icon  string // icon identifier in the template layer
}

const (
	IconInfo     = "circle-info"
	IconTriangle = "triangle-alert"
	IconCross    = "x-circle"
	IconCheck    = "check-circle"
	IconDocument = "file-text"
)

var severityBadges = map[backend.Severity]Badge{
	backend.SeverityInfo:     {Color: "#3b82f6", Icon: IconInfo},
	backend.SeverityWarning:  {Color: "#f59e0b", Icon: IconTriangle},
	backend.SeverityError:    {Color: "#ef4444", Icon: IconCross},
	backend.SeverityCritical: {Color: "#b91c1c", Icon: IconTriangle},
}

var outcomeBadges = map[backend.Outcome]Badge{
	backend.OutcomeSuccess: {Color: "#22c55e", Icon: IconCheck},
	backend.OutcomeFailure: {Color: "#ef4444", Icon: IconCross},
	backend.OutcomePending: {Color: "#f59e0b", Icon: IconDocument},
}

// fallbackBadge renders unknown enum values without special styling.
var fallbackBadge = Badge{Color: "#8888aa", Icon: IconInfo}

// SeverityBadge returns the fixed color/icon pairing for a severity.
func SeverityBadge(s backend.Severity) Badge {
	if b, ok := severityBadges[s]; ok {
		return b
	}
	return fallbackBadge
}

// OutcomeBadge returns the fixed color/icon pairing for an outcome.
func OutcomeBadge(o backend.Outcome) Badge {
	if b, ok := outcomeBadges[o]; ok {
		return b
	}
	return fallbackBadge
}
