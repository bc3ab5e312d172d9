// Package nav defines the console's fixed navigation sections and the
// selection / expansion state of the sidebar.
package nav

import "strings"

// Section is one top-level sidebar entry. The section list is compiled-in
// configuration; it is never mutated at runtime.
type Section struct {
	Name        string
	Slug        string
	Icon        string
	Description string
	Collapsible bool
	Subsections []Subsection
}

// Subsection is a child entry under a collapsible section.
type Subsection struct {
	Name        string
	Slug        string
	Icon        string
	Description string
}

// Sections is the fixed admin navigation tree. Exactly one section is
// collapsible.
var Sections = []Section{
	{
		Name:        "Dashboard",
		Slug:        "dashboard",
		Icon:        "gauge",
		Description: "Live overview of queue and audit activity",
	},
	{
		Name:        "Agent Queue",
		Slug:        "agents",
		Icon:        "headset",
		Description: "Agent availability and SIP registration",
	},
	{
		Name:        "Audit Logs",
		Slug:        "audit",
		Icon:        "scroll",
		Description: "Administrative and security event history",
	},
	{
		Name:        "Settings",
		Slug:        "settings",
		Icon:        "sliders",
		Description: "Console and platform configuration",
		Collapsible: true,
		Subsections: []Subsection{
			{Name: "Telephony", Slug: "telephony", Icon: "phone", Description: "SIP trunk credentials"},
			{Name: "Integrations", Slug: "integrations", Icon: "plug", Description: "Third-party connections"},
			{Name: "General", Slug: "general", Icon: "gear", Description: "Display and locale defaults"},
		},
	},
}

// FindSection returns the section with the given slug.
func FindSection(slug string) (Section, bool) {
	for _, s := range Sections {
		if s.Slug == slug {
			return s, true
		}
	}
	return Section{}, false
}

// selectionSeparator joins parent and child names in the legacy composite
// identifier ("Parent - Child"). Only the render boundary uses it.
const selectionSeparator = " - "

// Selection identifies the chosen navigation target: a section, or a
// section plus one of its subsections.
type Selection struct {
	Section string
	Sub     string
}

// Display renders the composite identifier reported to listeners.
func (s Selection) Display() string {
	if s.Sub == "" {
		return s.Section
	}
	return s.Section + selectionSeparator + s.Sub
}

// ParseSelection splits a composite identifier back into a Selection.
func ParseSelection(display string) Selection {
	parent, child, found := strings.Cut(display, selectionSeparator)
	if !found {
		return Selection{Section: display}
	}
	return Selection{Section: parent, Sub: child}
}

// State is the sidebar's mutable UI state: the current selection, which
// collapsible sections are expanded, and whether the rail is collapsed to
// icons only. State is not persisted; a fresh State starts fully collapsed.
type State struct {
	Current  Selection
	Rail     bool
	expanded map[string]bool
}

// NewState returns sidebar state with nothing selected or expanded.
func NewState() *State {
	return &State{expanded: make(map[string]bool)}
}

// Select chooses a top-level section. For collapsible sections this also
// toggles expansion: selection and expansion are independent state that
// happen to share the click.
func (st *State) Select(section Section) {
	if section.Collapsible {
		st.expanded[section.Name] = !st.expanded[section.Name]
	}
	st.Current = Selection{Section: section.Name}
}

// SelectSub chooses a subsection of a collapsible parent.
func (st *State) SelectSub(parent Section, sub Subsection) {
	st.Current = Selection{Section: parent.Name, Sub: sub.Name}
}

// SetExpanded forces a parent's expansion state without touching the
// selection.
func (st *State) SetExpanded(name string, open bool) {
	st.expanded[name] = open
}

// IsExpanded reports whether a collapsible parent is open.
func (st *State) IsExpanded(name string) bool {
	return st.expanded[name]
}

// ExpandedNames returns the open parents, for round-tripping through URLs.
func (st *State) ExpandedNames() []string {
	var names []string
	for _, s := range Sections {
		if s.Collapsible && st.expanded[s.Name] {
			names = append(names, s.Name)
		}
	}
	return names
}

// IsSelected reports whether a section renders highlighted. A plain
// section is selected only when it is the exact choice. A collapsible
// parent is also selected while any of its children is the choice.
func (st *State) IsSelected(section Section) bool {
	if st.Current.Section != section.Name {
		return false
	}
	if section.Collapsible {
		return true
	}
	return st.Current.Sub == ""
}

// IsSubSelected reports whether a specific child renders highlighted.
func (st *State) IsSubSelected(parent Section, sub Subsection) bool {
	return st.Current.Section == parent.Name && st.Current.Sub == sub.Name
}
