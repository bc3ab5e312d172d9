package dashboard

import "html/template"

var loginTmpl = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>callboard — console</title>
<style>
*{margin:0;padding:0;box-sizing:border-box}
:root{
  --bg:#0a0a0f;--surface:#12121a;--surface2:#1a1a26;--border:#2a2a3a;
  --text:#e0e0ee;--text2:#8888aa;--text3:#555570;
  --accent:#6366f1;--accent-light:#818cf8;--accent-dim:#4f46e5;
  --danger:#ef4444;--success:#22c55e;--warn:#f59e0b;
  --mono:'SF Mono','Fira Code','JetBrains Mono',monospace;
  --sans:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;
}
body{font-family:var(--sans);background:var(--bg);color:var(--text);min-height:100vh;display:flex;align-items:center;justify-content:center}
.login-card{background:var(--surface);border:1px solid var(--border);border-radius:12px;padding:48px 40px;max-width:400px;width:100%;text-align:center}
.logo{font-family:var(--mono);font-size:1.5rem;font-weight:700;letter-spacing:-0.5px;margin-bottom:8px}
.logo span{color:var(--accent-light)}
.subtitle{color:var(--text2);font-size:0.85rem;margin-bottom:32px}
.lock-icon{font-size:2.5rem;margin-bottom:16px;opacity:0.6}
.help{color:var(--text3);font-size:0.78rem;margin-bottom:24px;line-height:1.6}
.help code{background:var(--surface2);padding:2px 6px;border-radius:4px;font-family:var(--mono);font-size:0.75rem;color:var(--accent-light)}
input[type=text]{
  width:100%;padding:14px 16px;background:var(--bg);border:1px solid var(--border);
  border-radius:8px;color:var(--text);font-family:var(--mono);font-size:1.2rem;
  text-align:center;letter-spacing:4px;outline:none;transition:border-color 0.2s;
}
input[type=text]:focus{border-color:var(--accent)}
input[type=text]::placeholder{letter-spacing:0;font-size:0.85rem;color:var(--text3)}
button{
  width:100%;padding:12px;margin-top:16px;background:var(--accent);color:#fff;
  border:none;border-radius:8px;font-size:0.9rem;font-weight:600;cursor:pointer;
  transition:background 0.2s;
}
button:hover{background:var(--accent-dim)}
.error{color:var(--danger);font-size:0.82rem;margin-top:12px}
.footer{margin-top:32px;color:var(--text3);font-size:0.72rem}
</style>
</head>
<body>
<div class="login-card">
  <div class="lock-icon">&#x1f512;</div>
  <div class="logo">call<span>board</span></div>
  <div class="subtitle">Admin Console Access</div>
  <p class="help">Enter the access code shown in your terminal.<br>Run <code>callboard serve</code> to get a code.</p>
  <form method="POST" action="/console/login" autocomplete="off">
    <input type="text" name="code" placeholder="00000000" maxlength="8" pattern="\d{8}" inputmode="numeric" autofocus required>
    <button type="submit">Authenticate</button>
  </form>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  <p class="footer">Operator access only</p>
</div>
</body>
</html>`))

const layoutHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>callboard — {{.Title}}</title>
<script src="https://unpkg.com/htmx.org@2.0.4" integrity="sha384-HGfztofotfshcF7+8n44JQL2oJmowVChPTg48S+jvZoztPfvwD79OC/LTtG6dMp+" crossorigin="anonymous"></script>
<style>
*{margin:0;padding:0;box-sizing:border-box}
:root{
  --bg:#0a0a0f;--surface:#12121a;--surface2:#1a1a26;--border:#2a2a3a;
  --text:#e0e0ee;--text2:#8888aa;--text3:#555570;
  --accent:#6366f1;--accent-light:#818cf8;--accent-dim:#4f46e5;
  --danger:#ef4444;--success:#22c55e;--warn:#f59e0b;
  --mono:'SF Mono','Fira Code','JetBrains Mono',monospace;
  --sans:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;
}
body{font-family:var(--sans);background:var(--bg);color:var(--text);min-height:100vh}
.shell{display:flex;min-height:100vh}

/* Sidebar */
.sidebar{width:220px;background:var(--surface);border-right:1px solid var(--border);display:flex;flex-direction:column;position:sticky;top:0;height:100vh;transition:width 0.2s}
.sidebar.rail{width:56px}
.sidebar .logo{font-family:var(--mono);font-size:1.1rem;font-weight:700;letter-spacing:-0.5px;padding:16px;color:var(--text);text-decoration:none;white-space:nowrap;overflow:hidden}
.sidebar .logo span{color:var(--accent-light)}
.nav-link,.nav-sublink{display:flex;align-items:center;gap:10px;color:var(--text2);text-decoration:none;font-size:0.82rem;padding:10px 16px;transition:color 0.2s,background 0.2s;white-space:nowrap;overflow:hidden}
.nav-link:hover,.nav-sublink:hover{color:var(--text);background:var(--surface2)}
.nav-link.active{color:var(--accent-light);background:var(--surface2);border-right:2px solid var(--accent-light)}
.nav-sublink{padding-left:38px;font-size:0.78rem}
.nav-sublink.active{color:var(--accent-light);border-right:2px solid var(--accent-light)}
.nav-icon{width:18px;text-align:center;flex-shrink:0}
.sidebar.rail .nav-label,.sidebar.rail .chevron,.sidebar.rail .logo{display:none}
.sidebar.rail .nav-sublink{padding-left:16px}
.chevron{margin-left:auto;color:var(--text3);font-size:0.7rem}
.sidebar-foot{margin-top:auto;border-top:1px solid var(--border);padding:8px 0}
.rail-btn{background:none;border:none;color:var(--text3);cursor:pointer;font-size:0.9rem;padding:8px 16px;width:100%;text-align:left}
.rail-btn:hover{color:var(--text)}

/* Main */
.content{flex:1;min-width:0}
.topbar{background:var(--surface);border-bottom:1px solid var(--border);padding:0 24px;display:flex;align-items:center;height:52px;position:sticky;top:0;z-index:100}
.topbar h1{font-size:1rem;font-weight:600}
.topbar h1 span{color:var(--accent-light)}
.topbar .spacer{flex:1}
.topbar .badge{background:var(--surface2);color:var(--text3);font-size:0.7rem;padding:4px 10px;border-radius:12px;font-family:var(--mono)}
main{max-width:1100px;margin:0 auto;padding:32px 24px}
.page-desc{color:var(--text2);font-size:0.85rem;margin-bottom:28px}

/* Stats */
.stats{display:grid;grid-template-columns:repeat(4,1fr);gap:16px;margin-bottom:32px}
.stat{background:var(--surface);border:1px solid var(--border);border-radius:10px;padding:20px}
.stat .label{color:var(--text3);font-size:0.72rem;text-transform:uppercase;letter-spacing:1px;margin-bottom:6px}
.stat .value{font-family:var(--mono);font-size:1.8rem;font-weight:700}
.stat .value.success{color:var(--success)}
.stat .value.danger{color:var(--danger)}
.stat .value.warn{color:var(--warn)}

/* Card */
.card{background:var(--surface);border:1px solid var(--border);border-radius:10px;padding:20px;margin-bottom:20px}
.card h2{font-size:0.95rem;font-weight:600;margin-bottom:16px;display:flex;align-items:center;gap:8px}
.card h2 .dot{width:6px;height:6px;border-radius:50%;background:var(--success);animation:pulse 2s infinite}
@keyframes pulse{0%,100%{opacity:1}50%{opacity:0.4}}

/* Table */
table{width:100%;border-collapse:collapse;font-size:0.82rem}
th{text-align:left;color:var(--text3);font-size:0.7rem;text-transform:uppercase;letter-spacing:1px;padding:8px 12px;border-bottom:1px solid var(--border)}
td{padding:10px 12px;border-bottom:1px solid var(--border);color:var(--text2);font-family:var(--mono);font-size:0.78rem}
tr:hover td{background:var(--surface2)}
tr.clickable{cursor:pointer}
.agent-cell{display:inline-flex;align-items:center;gap:8px;color:var(--text)}
.avatar{border-radius:50%;flex-shrink:0;vertical-align:middle}

/* Badges */
.pill{padding:3px 8px;border-radius:4px;font-size:0.7rem;font-weight:600}
.badge-available{background:#22c55e20;color:var(--success)}
.badge-busy{background:#f59e0b20;color:var(--warn)}
.badge-offline{background:var(--surface2);color:var(--text3)}
.badge-reg{color:var(--success)}
.badge-unreg{color:var(--text3)}
.sev-badge{display:inline-flex;align-items:center;gap:5px;padding:2px 8px;border-radius:4px;font-size:0.7rem;font-weight:600;text-transform:uppercase;background:var(--surface2)}
.sev-badge .sev-ic{width:8px;height:8px;border-radius:50%;display:inline-block}

/* Search + filters */
.search-bar{position:relative;margin-bottom:16px}
.search-bar input{
  width:100%;padding:10px 16px 10px 36px;background:var(--bg);border:1px solid var(--border);
  border-radius:8px;color:var(--text);font-family:var(--mono);font-size:0.82rem;outline:none;transition:border-color 0.2s;
}
.search-bar input:focus{border-color:var(--accent)}
.search-bar input::placeholder{color:var(--text3)}
.search-bar .search-icon{position:absolute;left:12px;top:50%;transform:translateY(-50%);color:var(--text3);font-size:0.82rem;pointer-events:none}
.form-row{display:flex;gap:12px;margin-bottom:12px;align-items:flex-end;flex-wrap:wrap}
.form-group{flex:1;min-width:140px}
.form-group label{display:block;color:var(--text3);font-size:0.7rem;text-transform:uppercase;letter-spacing:1px;margin-bottom:4px}
.form-group input,.form-group select,.form-group textarea{
  width:100%;padding:8px 12px;background:var(--bg);border:1px solid var(--border);
  border-radius:6px;color:var(--text);font-family:var(--mono);font-size:0.82rem;outline:none;transition:border-color 0.2s;
}
.form-group input:focus,.form-group select:focus,.form-group textarea:focus{border-color:var(--accent)}
.form-group select{cursor:pointer;-webkit-appearance:none;appearance:none;background-image:url("data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' width='12' height='12' viewBox='0 0 12 12'%3E%3Cpath fill='%23555570' d='M6 8L1 3h10z'/%3E%3C/svg%3E");background-repeat:no-repeat;background-position:right 10px center;padding-right:28px}
.btn{display:inline-block;padding:8px 16px;background:var(--accent);color:#fff;border:none;border-radius:6px;font-size:0.82rem;font-weight:600;cursor:pointer;transition:background 0.2s;width:auto;margin:0;text-decoration:none}
.btn:hover{background:var(--accent-dim)}
.btn-sm{padding:4px 10px;font-size:0.72rem}
.btn-ghost{background:var(--surface2);color:var(--text2);border:1px solid var(--border)}
.btn-ghost:hover{background:var(--accent-dim);color:#fff}
.btn:disabled{opacity:0.4;cursor:not-allowed}
.empty{color:var(--text3);text-align:center;padding:40px 0;font-size:0.85rem}
.field-note{color:var(--text3);font-size:0.72rem;margin-top:4px}

/* Slide-in panel */
.panel-overlay{position:fixed;top:0;left:0;width:100%;height:100%;background:rgba(0,0,0,0.4);z-index:199;opacity:0;pointer-events:none;transition:opacity 0.3s ease}
.panel-overlay.open{opacity:1;pointer-events:auto}
.panel{position:fixed;top:0;right:0;width:480px;max-width:90vw;height:100%;background:var(--surface);border-left:1px solid var(--border);z-index:200;transform:translateX(100%);transition:transform 0.3s ease;overflow-y:auto;padding:0}
.panel.open{transform:translateX(0)}
.panel-header{display:flex;align-items:center;justify-content:space-between;padding:20px 24px;border-bottom:1px solid var(--border);position:sticky;top:0;background:var(--surface);z-index:1}
.panel-header h3{font-size:0.95rem;font-weight:600}
.panel-close{background:none;border:none;color:var(--text3);font-size:1.2rem;cursor:pointer;padding:4px 8px;border-radius:4px;transition:all 0.2s}
.panel-close:hover{color:var(--text);background:var(--surface2)}
.panel-body{padding:24px}
.panel-body .field{margin-bottom:16px}
.panel-body .field-label{color:var(--text3);font-size:0.7rem;text-transform:uppercase;letter-spacing:1px;margin-bottom:4px}
.panel-body .field-value{font-family:var(--mono);font-size:0.82rem;color:var(--text);word-break:break-all}
.panel-body pre{background:var(--bg);border:1px solid var(--border);border-radius:6px;padding:12px;font-family:var(--mono);font-size:0.72rem;color:var(--text2);overflow-x:auto}

@media(max-width:768px){
  .stats{grid-template-columns:repeat(2,1fr)}
  .panel{width:100%;max-width:100%}
  .sidebar{width:56px}
  .sidebar .nav-label,.sidebar .chevron,.sidebar .logo{display:none}
}
</style>
</head>
<body>
<div class="shell">
<aside class="sidebar{{if .Rail}} rail{{end}}">
  <a href="/console" class="logo">call<span>board</span></a>
  {{range .Nav}}
  <a href="{{.Href}}" class="nav-link{{if .Active}} active{{end}}" title="{{.Name}}">
    <span class="nav-icon">{{.Glyph}}</span><span class="nav-label">{{.Name}}</span>
    {{if .Collapsible}}<span class="chevron">{{if .Expanded}}&#9662;{{else}}&#9656;{{end}}</span>{{end}}
  </a>
  {{if .Expanded}}{{range .Subs}}
  <a href="{{.Href}}" class="nav-sublink{{if .Active}} active{{end}}" title="{{.Name}}">
    <span class="nav-icon">{{.Glyph}}</span><span class="nav-label">{{.Name}}</span>
  </a>
  {{end}}{{end}}
  {{end}}
  <div class="sidebar-foot">
    <form method="POST" action="/console/nav/rail"><button type="submit" class="rail-btn" title="Toggle sidebar">{{if .Rail}}&#187;{{else}}&#171; <span class="nav-label">collapse</span>{{end}}</button></form>
    <a href="/console/logout" class="nav-sublink" style="padding-left:16px"><span class="nav-icon">&#x23fb;</span><span class="nav-label">Logout</span></a>
  </div>
</aside>
<div class="content">
<header class="topbar"><h1>{{.Title}}</h1><div class="spacer"></div><span class="badge">{{.Backend}}</span></header>
<main>`

const layoutFoot = `</main>
</div>
</div>

<!-- Slide-in panel -->
<div class="panel-overlay" id="panel-overlay" onclick="closePanel()"></div>
<div class="panel" id="detail-panel">
  <div id="panel-content"></div>
</div>

<script>
function closePanel() {
  document.getElementById('detail-panel').classList.remove('open');
  document.getElementById('panel-overlay').classList.remove('open');
}
document.addEventListener('keydown', function(e) {
  if (e.key === 'Escape') closePanel();
});
document.body.addEventListener('htmx:afterSwap', function(e) {
  if (e.detail.target.id === 'panel-content') {
    document.getElementById('detail-panel').classList.add('open');
    document.getElementById('panel-overlay').classList.add('open');
  }
});
</script>
</body>
</html>`

var overviewTmpl = template.Must(template.New("overview").Parse(layoutHead + `
<p class="page-desc">Live view of the agent queue and recent administrative activity.</p>

<div class="stats">
  <div class="stat">
    <div class="label">Total Events</div>
    <div class="value">{{.Stats.TotalEvents}}</div>
  </div>
  <div class="stat">
    <div class="label">Success Rate</div>
    <div class="value success">{{printf "%.1f" .Stats.SuccessRate}}%</div>
  </div>
  <div class="stat">
    <div class="label">Warnings</div>
    <div class="value warn">{{.Stats.Warnings}}</div>
  </div>
  <div class="stat">
    <div class="label">Active Users</div>
    <div class="value">{{.Stats.ActiveUsers}}</div>
  </div>
</div>

<div class="card">
  <h2><span class="dot"></span> Agent Queue</h2>
  {{if .Snapshot}}
  <div class="stats" style="margin-bottom:0">
    <div class="stat"><div class="label">Agents</div><div class="value">{{.Snapshot.Summary.Total}}</div></div>
    <div class="stat"><div class="label">Available</div><div class="value success">{{.Snapshot.Summary.Available}}</div></div>
    <div class="stat"><div class="label">Busy</div><div class="value warn">{{.Snapshot.Summary.Busy}}</div></div>
    <div class="stat"><div class="label">Offline</div><div class="value">{{.Snapshot.Summary.Offline}}</div></div>
  </div>
  {{else}}
  <div class="empty">Queue not available yet. Waiting for the first backend poll.</div>
  {{end}}
</div>

<div class="card">
  <h2>Recent Audit Events</h2>
  {{if .Recent}}
  <table>
    <thead><tr><th>Time</th><th>User</th><th>Action</th><th>Resource</th><th>Severity</th><th>Status</th></tr></thead>
    <tbody>
    {{range .Recent}}
    <tr class="clickable" hx-get="/console/api/audit/{{.Entry.ID}}" hx-target="#panel-content" hx-swap="innerHTML">
      <td>{{.Entry.Timestamp}}</td>
      <td>{{.UserCell}}</td>
      <td>{{.Entry.Action}}</td>
      <td>{{.Entry.Resource}}</td>
      <td><span class="sev-badge" style="color:{{.SevBadge.Color}}"><span class="sev-ic" style="background:{{.SevBadge.Color}}"></span>{{.Entry.Severity}}</span></td>
      <td><span class="sev-badge" style="color:{{.OutBadge.Color}}"><span class="sev-ic" style="background:{{.OutBadge.Color}}"></span>{{.Entry.Status}}</span></td>
    </tr>
    {{end}}
    </tbody>
  </table>
  {{else}}
  <div class="empty">No audit events to show.</div>
  {{end}}
</div>
` + layoutFoot))

var agentsTmpl = template.Must(template.New("agents").Parse(layoutHead + `
<p class="page-desc">Agent availability and SIP registration. Refreshes every {{.IntervalSeconds}}s.</p>

<div id="queue-live" hx-get="/console/api/queue" hx-trigger="every {{.IntervalSeconds}}s" hx-swap="innerHTML">
` + queuePartial + `
</div>
` + layoutFoot))

var queuePartialTmpl = template.Must(template.New("queue-partial").Parse(queuePartial))

const queuePartial = `
{{if .Snapshot}}
<div class="stats">
  <div class="stat"><div class="label">Agents</div><div class="value">{{.Snapshot.Summary.Total}}</div></div>
  <div class="stat"><div class="label">Available</div><div class="value success">{{.Snapshot.Summary.Available}}</div></div>
  <div class="stat"><div class="label">Busy</div><div class="value warn">{{.Snapshot.Summary.Busy}}</div></div>
  <div class="stat"><div class="label">Offline</div><div class="value">{{.Snapshot.Summary.Offline}}</div></div>
</div>

<div class="card">
  <h2><span class="dot"></span> Agents</h2>
  {{if .Agents}}
  <table>
    <thead><tr><th>Agent</th><th>Status</th><th>SIP</th><th>Last Update</th><th>Set Status</th></tr></thead>
    <tbody>
    {{range .Agents}}
    <tr>
      <td>{{.Cell}}</td>
      <td>
        {{if eq .Agent.Status "available"}}<span class="pill badge-available">available</span>
        {{else if eq .Agent.Status "busy"}}<span class="pill badge-busy">busy</span>
        {{else}}<span class="pill badge-offline">offline</span>{{end}}
      </td>
      <td>{{if .Agent.SIPRegistered}}<span class="badge-reg">&#10003; registered</span>{{else}}<span class="badge-unreg">&mdash;</span>{{end}}</td>
      <td>{{.Agent.LastUpdate}}</td>
      <td>
        <form method="POST" action="/console/agents/{{.Agent.ID}}/status" style="display:flex;gap:6px;align-items:center">
          <select name="status" class="btn-ghost btn-sm" style="padding:4px 8px;border-radius:4px;background:var(--bg);color:var(--text);border:1px solid var(--border)">
            {{$cur := .Agent.Status}}
            <option value="available" {{if eq $cur "available"}}selected{{end}}>available</option>
            <option value="busy" {{if eq $cur "busy"}}selected{{end}}>busy</option>
            <option value="offline" {{if eq $cur "offline"}}selected{{end}}>offline</option>
          </select>
          <label style="font-size:0.7rem;color:var(--text3)"><input type="checkbox" name="sipRegistered" value="true" {{if .Agent.SIPRegistered}}checked{{end}}> SIP</label>
          <button type="submit" class="btn btn-sm">apply</button>
        </form>
      </td>
    </tr>
    {{end}}
    </tbody>
  </table>
  {{else}}
  <div class="empty">No agents in the queue.</div>
  {{end}}
</div>
{{else}}
<div class="card"><div class="empty">Queue not available. The backend has not answered yet; showing nothing rather than guesses.</div></div>
{{end}}`

var settingsTmpl = template.Must(template.New("settings").Parse(layoutHead + `
<p class="page-desc">{{.Description}}</p>

<div class="card">
  <h2>Configuration Areas</h2>
  <table>
    {{range .Subs}}
    <tr><td><a href="{{.Href}}" style="color:var(--accent-light);text-decoration:none">{{.Name}}</a></td><td style="color:var(--text3)">{{.Description}}</td></tr>
    {{end}}
  </table>
</div>
` + layoutFoot))

var telephonyTmpl = template.Must(template.New("telephony").Parse(layoutHead + `
<p class="page-desc">SIP trunk credentials for the Twilio integration. Fields are applied as you edit them.</p>

<div class="card">
  <h2>Twilio SIP Trunk</h2>
  <div class="form-row">
    <div class="form-group">
      <label>SIP Domain</label>
      <input type="text" name="sipDomain" value="{{.Config.SIPDomain}}" placeholder="example.sip.twilio.com"
        hx-post="/console/settings/telephony/field" hx-trigger="change" hx-swap="none">
    </div>
    <div class="form-group">
      <label>Username</label>
      <input type="text" name="username" value="{{.Config.Username}}" placeholder="trunk user"
        hx-post="/console/settings/telephony/field" hx-trigger="change" hx-swap="none">
    </div>
  </div>
  <div class="form-row">
    <div class="form-group">
      <label>Password</label>
      <input type="password" name="password" value="{{.Config.Password}}" placeholder="trunk password"
        hx-post="/console/settings/telephony/field" hx-trigger="change" hx-swap="none">
    </div>
    <div class="form-group">
      <label>Description</label>
      <input type="text" name="description" value="{{.Config.Description}}" placeholder="optional"
        hx-post="/console/settings/telephony/field" hx-trigger="change" hx-swap="none">
    </div>
  </div>
  <div class="form-row">
    <div class="form-group">
      <label>Active</label>
      <select name="isActive" hx-post="/console/settings/telephony/field" hx-trigger="change" hx-swap="none">
        <option value="true" {{if .Config.Active}}selected{{end}}>enabled</option>
        <option value="false" {{if not .Config.Active}}selected{{end}}>disabled</option>
      </select>
    </div>
  </div>
  <div class="form-row" style="margin-top:8px">
    <form method="POST" action="/console/settings/telephony/test" style="display:inline">
      <button type="submit" class="btn btn-ghost" {{if not .Complete}}disabled{{end}}>Test Connection</button>
    </form>
    <form method="POST" action="/console/settings/telephony/save" style="display:inline">
      <button type="submit" class="btn" {{if not .Complete}}disabled{{end}}>Save</button>
    </form>
  </div>
  {{if not .Complete}}<p class="field-note">SIP domain, username, and password are required before testing or saving.</p>{{end}}
  {{if .Notice}}<p class="field-note" style="color:var(--success)">{{.Notice}}</p>{{end}}
</div>
` + layoutFoot))

var settingsStubTmpl = template.Must(template.New("settings-stub").Parse(layoutHead + `
<p class="page-desc">{{.Description}}</p>

<div class="card">
  <div class="empty">Nothing to configure here yet.</div>
</div>
` + layoutFoot))
