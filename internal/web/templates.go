package web

import (
	"html/template"
	"net/http"

	"github.com/backbencherstudio/hamzaamjad-dashboard-sub001/internal/logging"
)

var pageTemplates = template.Must(template.New("pages").Funcs(template.FuncMap{
	"inc": func(n int) int { return n + 1 },
	"dec": func(n int) int { return n - 1 },
}).Parse(`
{{define "layout_top"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}} | SkyPath Pilot Training</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <script src="https://unpkg.com/htmx.org@1.9.12"></script>
  <link rel="stylesheet" href="/static/app.css">
</head>
<body>
<header class="site-header">
  <a class="brand" href="/">SkyPath</a>
  <nav>
    <a href="/faq">FAQ</a>
    <a href="/contact">Contact</a>
    <a href="/dashboard">Dashboard</a>
  </nav>
</header>
<main>{{end}}

{{define "layout_bottom"}}</main>
<footer class="site-footer">SkyPath Pilot Training</footer>
</body>
</html>{{end}}

{{define "home"}}{{template "layout_top" .}}
<section class="hero">
  <h1>Train for your MOT with working pilots</h1>
  <p>Memberships, e-books, podcasts and a digital logbook in one place.</p>
</section>
<section class="testimonials" hx-get="/testimonials" hx-trigger="load" hx-swap="innerHTML">
  <p>Loading testimonials…</p>
</section>
{{template "layout_bottom" .}}{{end}}

{{define "testimonials"}}
{{if .Testimonials}}
<ul class="testimonial-list">
  {{range .Testimonials}}<li><blockquote>{{.Quote}}</blockquote><cite>{{.Author}}{{if .RoleLine}}, {{.RoleLine}}{{end}}</cite></li>{{end}}
</ul>
{{else}}<p>{{.Err}}</p>{{end}}
{{end}}

{{define "faq"}}{{template "layout_top" .}}
<h1>Frequently asked questions</h1>
<dl class="faq">
  {{range .FAQs}}<dt>{{.Q}}</dt><dd>{{.A}}</dd>{{end}}
</dl>
{{template "layout_bottom" .}}{{end}}

{{define "contact"}}{{template "layout_top" .}}
<h1>Contact us</h1>
{{if .Sent}}<p class="flash flash-success">Thanks, we will get back to you.</p>{{end}}
{{if .Err}}<p class="flash flash-error">{{.Err}}</p>{{end}}
<form method="post" action="/contact">
  <label>Name <input name="name" required value="{{.Name}}"></label>
  <label>Email <input name="email" type="email" required value="{{.Email}}"></label>
  <label>Subject <input name="subject" value="{{.Subject}}"></label>
  <label>Message <textarea name="message" required>{{.Message}}</textarea></label>
  <button type="submit">Send</button>
</form>
{{template "layout_bottom" .}}{{end}}

{{define "login"}}{{template "layout_top" .}}
<h1>Operator sign in</h1>
{{if .Err}}<p class="flash flash-error">{{.Err}}</p>{{end}}
<form method="post" action="/login">
  <label>Email <input name="email" type="email" required></label>
  <label>Password <input name="password" type="password" required></label>
  <button type="submit">Sign in</button>
</form>
{{template "layout_bottom" .}}{{end}}

{{define "overview"}}{{template "layout_top" .}}
<h1>Dashboard</h1>
{{if .Err}}<p class="flash flash-error">{{.Err}}</p>{{end}}
<ul class="stat-grid">
  {{range .Stats}}<li><a href="{{.Link}}"><strong>{{.Count}}</strong> {{.Label}}</a></li>{{end}}
</ul>
{{template "layout_bottom" .}}{{end}}

{{define "entity_page"}}{{template "layout_top" .}}
<h1>{{.Title}}</h1>
<p class="toolbar"><a class="button" href="{{.Base}}/new">New</a></p>
<div id="table-region">{{template "entity_table" .}}</div>
{{template "layout_bottom" .}}{{end}}

{{define "entity_form"}}{{template "layout_top" .}}
<h1>{{.Title}}</h1>
{{if .Err}}<p class="flash flash-error">{{.Err}}</p>{{end}}
<form method="post" action="{{.Action}}"{{if .Multipart}} enctype="multipart/form-data"{{end}}>
  {{range .Fields}}
  <label>{{.Label}}
    {{if eq .Type "textarea"}}<textarea name="{{.Name}}"{{if .Required}} required{{end}}>{{.Value}}</textarea>
    {{else if .Options}}<select name="{{.Name}}">{{$cur := .Value}}{{range .Options}}<option value="{{.}}"{{if eq . $cur}} selected{{end}}>{{.}}</option>{{end}}</select>
    {{else}}<input name="{{.Name}}" type="{{.Type}}" value="{{.Value}}"{{if .Required}} required{{end}}>
    {{end}}
  </label>
  {{end}}
  <button type="submit">Save</button>
  <a class="button" href="{{.Back}}">Cancel</a>
</form>
{{template "layout_bottom" .}}{{end}}

{{define "entity_table"}}
{{if .Reload}}<div hx-get="{{.Base}}/table" hx-trigger="load delay:400ms" hx-target="#table-region" hx-swap="innerHTML"></div>{{end}}
{{range .Flashes}}<p class="flash flash-{{.Kind}}">{{.Message}}</p>{{end}}
{{if .Err}}<p class="flash flash-error">{{.Err}}</p>{{end}}
<form class="table-controls"
      hx-post="{{.Base}}/search" hx-target="#table-region" hx-swap="innerHTML"
      hx-trigger="input changed delay:100ms from:find input[name=search]">
  <input name="search" placeholder="Search…" value="{{.Search}}">
  {{if .StatusOptions}}
  <select name="status" hx-post="{{.Base}}/status" hx-target="#table-region" hx-swap="innerHTML" hx-trigger="change">
    <option value="ALL">All</option>
    {{$current := .Status}}
    {{range .StatusOptions}}<option value="{{.}}" {{if eq . $current}}selected{{end}}>{{.}}</option>{{end}}
  </select>
  {{end}}
</form>
<table class="data-table {{if .Loading}}is-loading{{end}}">
  <thead><tr>
    {{range .Headers}}<th>{{.}}</th>{{end}}
    {{if .CanToggle}}<th>Status</th>{{end}}
    <th></th>
  </tr></thead>
  <tbody>
  {{$v := .}}
  {{range .Rows}}
    <tr class="{{if .Busy}}row-busy{{end}}">
      {{range .Cells}}<td>{{.}}</td>{{end}}
      {{if $v.CanToggle}}<td><span class="badge badge-{{.Status}}">{{.Status}}</span></td>{{end}}
      <td class="row-actions">
        {{if $v.CanToggle}}
          {{if eq .Status "ACTIVE"}}
          <button hx-post="{{$v.Base}}/{{.ID}}/deactivate" hx-target="#table-region" hx-swap="innerHTML"
                  {{if .Busy}}disabled{{end}}>Deactivate</button>
          {{else}}
          <button hx-post="{{$v.Base}}/{{.ID}}/activate" hx-target="#table-region" hx-swap="innerHTML"
                  {{if .Busy}}disabled{{end}}>Activate</button>
          {{end}}
        {{end}}
        <button class="danger" hx-post="{{$v.Base}}/{{.ID}}/delete" hx-target="#table-region" hx-swap="innerHTML"
                hx-confirm="Delete this row?" {{if .Busy}}disabled{{end}}>Delete</button>
      </td>
    </tr>
  {{else}}
    <tr><td colspan="{{.Colspan}}">No records found.</td></tr>
  {{end}}
  </tbody>
</table>
<div class="pager">
  <span>{{.Total}} total</span>
  {{if gt .Page 1}}
  <button hx-post="{{.Base}}/page" hx-vals='{"page":"{{dec .Page}}"}' hx-target="#table-region" hx-swap="innerHTML">Prev</button>
  {{end}}
  <span>Page {{.Page}} of {{.TotalPages}}</span>
  {{if lt .Page .TotalPages}}
  <button hx-post="{{.Base}}/page" hx-vals='{"page":"{{inc .Page}}"}' hx-target="#table-region" hx-swap="innerHTML">Next</button>
  {{end}}
</div>
{{end}}
`))

// renderPage writes a named template; template errors are logged, not
// shown to the visitor.
func renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		logging.Error("template render failed", "template", name, "error", err.Error())
	}
}
