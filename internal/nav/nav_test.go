package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(t *testing.T, slug string) Section {
	t.Helper()
	s, ok := FindSection(slug)
	require.True(t, ok, "section %q must exist", slug)
	return s
}

func TestSections_ExactlyOneCollapsible(t *testing.T) {
	var collapsible int
	seen := map[string]bool{}
	for _, s := range Sections {
		assert.False(t, seen[s.Name], "duplicate section name %q", s.Name)
		seen[s.Name] = true
		if s.Collapsible {
			collapsible++
			assert.NotEmpty(t, s.Subsections, "collapsible section %q needs children", s.Name)
		} else {
			assert.Empty(t, s.Subsections, "plain section %q must not have children", s.Name)
		}
	}
	assert.Equal(t, 1, collapsible)
}

func TestSelection_DisplayRoundTrip(t *testing.T) {
	assert.Equal(t, "Agent Queue", Selection{Section: "Agent Queue"}.Display())
	assert.Equal(t, "Settings - Telephony", Selection{Section: "Settings", Sub: "Telephony"}.Display())

	assert.Equal(t, Selection{Section: "Agent Queue"}, ParseSelection("Agent Queue"))
	assert.Equal(t, Selection{Section: "Settings", Sub: "Telephony"}, ParseSelection("Settings - Telephony"))
}

func TestSelect_PlainSection(t *testing.T) {
	st := NewState()
	agents := section(t, "agents")
	audit := section(t, "audit")

	st.Select(agents)
	assert.True(t, st.IsSelected(agents))
	assert.False(t, st.IsSelected(audit))
	assert.Equal(t, "Agent Queue", st.Current.Display())

	// Exactly one section is ever selected.
	for _, s := range Sections {
		if s.Slug != "agents" {
			assert.False(t, st.IsSelected(s), "%s should not be selected", s.Name)
		}
	}
}

func TestSelect_CollapsibleTogglesAndSelects(t *testing.T) {
	st := NewState()
	settings := section(t, "settings")

	require.False(t, st.IsExpanded(settings.Name), "expansion starts collapsed")

	st.Select(settings)
	assert.True(t, st.IsExpanded(settings.Name), "first click expands")
	assert.True(t, st.IsSelected(settings))

	// Second click collapses again but the selection stays put.
	st.Select(settings)
	assert.False(t, st.IsExpanded(settings.Name))
	assert.True(t, st.IsSelected(settings), "collapsing must not clear selection")
}

func TestSelectSub_HighlightsParentAndChild(t *testing.T) {
	st := NewState()
	settings := section(t, "settings")
	telephony := settings.Subsections[0]
	integrations := settings.Subsections[1]

	st.SelectSub(settings, telephony)

	assert.Equal(t, "Settings - Telephony", st.Current.Display())
	assert.True(t, st.IsSelected(settings), "parent highlights while a child is chosen")
	assert.True(t, st.IsSubSelected(settings, telephony))
	assert.False(t, st.IsSubSelected(settings, integrations))
}

func TestSelect_ParentAfterChild(t *testing.T) {
	st := NewState()
	settings := section(t, "settings")
	telephony := settings.Subsections[0]

	st.SelectSub(settings, telephony)
	st.Select(settings)

	assert.Equal(t, "Settings", st.Current.Display(), "clicking the parent always selects the parent")
	assert.False(t, st.IsSubSelected(settings, telephony))
}

func TestExpansion_IndependentOfSelection(t *testing.T) {
	st := NewState()
	settings := section(t, "settings")
	agents := section(t, "agents")

	st.Select(agents)
	st.SetExpanded(settings.Name, true)

	assert.True(t, st.IsSelected(agents), "expanding another section must not move selection")
	assert.True(t, st.IsExpanded(settings.Name))
	assert.Equal(t, []string{"Settings"}, st.ExpandedNames())
}

func TestPlainSection_NotSelectedForChildSelection(t *testing.T) {
	st := NewState()
	agents := section(t, "agents")

	// A selection naming a sub under a non-collapsible section must not
	// highlight the parent row.
	st.Current = Selection{Section: "Agent Queue", Sub: "ghost"}
	assert.False(t, st.IsSelected(agents))
}
