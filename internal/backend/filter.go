package backend

import "net/url"

// AuditFilter parameterizes the audit log list and export queries. Zero
// fields are omitted from the query string. Dates are inclusive calendar
// dates in YYYY-MM-DD form, passed through as-is.
type AuditFilter struct {
	StartDate string
	EndDate   string
	UserID    string
	Action    string
	Severity  string
	Category  string
	Status    string
	Search    string
}

// Values encodes the filter as query parameters, omitting empty fields.
func (f AuditFilter) Values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("startDate", f.StartDate)
	set("endDate", f.EndDate)
	set("userId", f.UserID)
	set("action", f.Action)
	set("severity", f.Severity)
	set("category", f.Category)
	set("status", f.Status)
	set("search", f.Search)
	return v
}

// ExportValues encodes the filter for the CSV export endpoint: the list
// parameters plus a fixed format marker.
func (f AuditFilter) ExportValues() url.Values {
	v := f.Values()
	v.Set("format", "csv")
	return v
}

// IsZero reports whether no filter field is set.
func (f AuditFilter) IsZero() bool {
	return f == AuditFilter{}
}
