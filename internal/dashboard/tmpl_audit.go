package dashboard

import "html/template"

var auditTmpl = template.Must(template.New("audit").Parse(layoutHead + `
<p class="page-desc">Administrative and security event history. Stats cover all events regardless of filters.</p>

<div class="stats">
  <div class="stat"><div class="label">Total Events</div><div class="value">{{.Stats.TotalEvents}}</div></div>
  <div class="stat"><div class="label">Success Rate</div><div class="value success">{{printf "%.1f" .Stats.SuccessRate}}%</div></div>
  <div class="stat"><div class="label">Warnings</div><div class="value warn">{{.Stats.Warnings}}</div></div>
  <div class="stat"><div class="label">Active Users</div><div class="value">{{.Stats.ActiveUsers}}</div></div>
</div>

<div class="card">
  <h2>Filters</h2>
  <form method="GET" action="/console/audit">
    <div class="form-row">
      <div class="form-group">
        <label>Start Date</label>
        <input type="date" name="startDate" value="{{.Filter.StartDate}}">
      </div>
      <div class="form-group">
        <label>End Date</label>
        <input type="date" name="endDate" value="{{.Filter.EndDate}}">
      </div>
      <div class="form-group">
        <label>User ID</label>
        <input type="text" name="userId" value="{{.Filter.UserID}}" placeholder="any">
      </div>
      <div class="form-group">
        <label>Action</label>
        <input type="text" name="action" value="{{.Filter.Action}}" placeholder="any">
      </div>
    </div>
    <div class="form-row">
      <div class="form-group">
        <label>Severity</label>
        <select name="severity">
          <option value="">any</option>
          {{range .Severities}}<option value="{{.}}" {{if eq (printf "%s" .) $.Filter.Severity}}selected{{end}}>{{.}}</option>{{end}}
        </select>
      </div>
      <div class="form-group">
        <label>Category</label>
        <select name="category">
          <option value="">any</option>
          {{range .Categories}}<option value="{{.}}" {{if eq (printf "%s" .) $.Filter.Category}}selected{{end}}>{{.}}</option>{{end}}
        </select>
      </div>
      <div class="form-group">
        <label>Status</label>
        <select name="status">
          <option value="">any</option>
          {{range .Outcomes}}<option value="{{.}}" {{if eq (printf "%s" .) $.Filter.Status}}selected{{end}}>{{.}}</option>{{end}}
        </select>
      </div>
      <div class="form-group" style="flex:0 0 auto">
        <button type="submit" class="btn">Apply</button>
        <a href="/console/audit" class="btn btn-ghost">Clear</a>
      </div>
    </div>
    <div class="search-bar" style="margin-bottom:0">
      <span class="search-icon">&#x1f50d;</span>
      <input type="text" name="search" value="{{.Filter.Search}}" placeholder="Search action, resource, or username...">
    </div>
  </form>
</div>

<div class="card">
  <h2>Events
    <span style="margin-left:auto">
      <a href="/console/audit/export?{{.RawQuery}}" class="btn btn-sm btn-ghost">Export CSV</a>
    </span>
  </h2>
  {{if .Rows}}
  <table>
    <thead><tr><th>Time</th><th>User</th><th>Action</th><th>Resource</th><th>Category</th><th>Severity</th><th>Status</th><th>IP</th></tr></thead>
    <tbody>
    {{range .Rows}}
    <tr class="clickable" hx-get="/console/api/audit/{{.Entry.ID}}?{{$.RawQuery}}" hx-target="#panel-content" hx-swap="innerHTML">
      <td>{{.Entry.Timestamp}}</td>
      <td>{{.UserCell}}</td>
      <td>{{.Entry.Action}}</td>
      <td>{{.Entry.Resource}}</td>
      <td>{{.Entry.Category}}</td>
      <td><span class="sev-badge" style="color:{{.SevBadge.Color}}"><span class="sev-ic" style="background:{{.SevBadge.Color}}"></span>{{.Entry.Severity}}</span></td>
      <td><span class="sev-badge" style="color:{{.OutBadge.Color}}"><span class="sev-ic" style="background:{{.OutBadge.Color}}"></span>{{.Entry.Status}}</span></td>
      <td>{{.Entry.IPAddress}}</td>
    </tr>
    {{end}}
    </tbody>
  </table>
  {{else}}
  <div class="empty">No events match the current filters.</div>
  {{end}}
</div>
` + layoutFoot))

var auditDetailTmpl = template.Must(template.New("audit-detail").Parse(`
<div class="panel-header">
  <h3>Event Detail</h3>
  <button class="panel-close" onclick="closePanel()">&times;</button>
</div>
<div class="panel-body">
  <div class="field">
    <div class="field-label">Timestamp</div>
    <div class="field-value">{{.Entry.Timestamp}}</div>
  </div>
  <div class="field">
    <div class="field-label">User</div>
    <div class="field-value">{{.UserCell}} <span style="color:var(--text3)">({{.Entry.Actor.Role}})</span></div>
  </div>
  <div class="field">
    <div class="field-label">Action</div>
    <div class="field-value">{{.Entry.Action}}</div>
  </div>
  <div class="field">
    <div class="field-label">Resource</div>
    <div class="field-value">{{.Entry.Resource}}{{if .Entry.ResourceID}} / {{.Entry.ResourceID}}{{end}}</div>
  </div>
  <div class="field">
    <div class="field-label">Severity</div>
    <div class="field-value"><span class="sev-badge" style="color:{{.SevBadge.Color}}"><span class="sev-ic" style="background:{{.SevBadge.Color}}"></span>{{.Entry.Severity}}</span></div>
  </div>
  <div class="field">
    <div class="field-label">Category</div>
    <div class="field-value">{{.Entry.Category}}</div>
  </div>
  <div class="field">
    <div class="field-label">Status</div>
    <div class="field-value"><span class="sev-badge" style="color:{{.OutBadge.Color}}"><span class="sev-ic" style="background:{{.OutBadge.Color}}"></span>{{.Entry.Status}}</span></div>
  </div>
  <div class="field">
    <div class="field-label">IP Address</div>
    <div class="field-value">{{.Entry.IPAddress}}</div>
  </div>
  <div class="field">
    <div class="field-label">User Agent</div>
    <div class="field-value" style="font-size:0.72rem;color:var(--text2)">{{.Entry.UserAgent}}</div>
  </div>
  {{if .DetailsJSON}}
  <div class="field">
    <div class="field-label">Details</div>
    <pre>{{.DetailsJSON}}</pre>
  </div>
  {{end}}
</div>`))
