package http

import (
	"html/template"
	"slices"
)

const (
	templatePage   = "page"
	templateScreen = "screen"
)

type chartBlock struct {
	ID   string
	Spec any
}

type distributionsBlock struct {
	Prefix string
	Items  []distributionView
}

func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"chart": func(id string, spec any) chartBlock {
			return chartBlock{ID: id, Spec: spec}
		},
		"distributions": func(prefix string, items []distributionView) distributionsBlock {
			return distributionsBlock{Prefix: prefix, Items: items}
		},
		// withValue makes sure the current value is selectable even before
		// filter options have loaded.
		"withValue": func(list []string, value string) []string {
			if value == "" || slices.Contains(list, value) {
				return list
			}
			return append(slices.Clone(list), value)
		},
	}
	return template.Must(template.New(templatePage).Funcs(funcs).Parse(pageHTML))
}

const pageHTML = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Social Media Performance Dashboard</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"></script>
<script>
window.dashboardCharts = window.dashboardCharts || {};
function renderChart(id, spec) {
  var el = document.getElementById(id);
  if (!el || typeof Chart === "undefined") { return; }
  if (window.dashboardCharts[id]) { window.dashboardCharts[id].destroy(); }
  window.dashboardCharts[id] = new Chart(el, spec);
}
</script>
<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #f8fafc; color: #0f172a; }
main { max-width: 1100px; margin: 0 auto; padding: 1.5rem; }
nav form { display: inline; }
nav button { border: 0; background: none; padding: .5rem 1rem; cursor: pointer; font-size: 1rem; }
nav button.active { border-bottom: 3px solid #3b82f6; font-weight: 600; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 1rem; margin: 1rem 0; }
.card { background: #fff; border-radius: 8px; padding: 1rem; box-shadow: 0 1px 2px rgba(0,0,0,.08); }
.card .value { font-size: 1.5rem; font-weight: 600; }
.loading { color: #3b82f6; margin: .5rem 0; }
.chart { background: #fff; border-radius: 8px; padding: 1rem; margin: 1rem 0; }
table { width: 100%; border-collapse: collapse; background: #fff; }
th, td { text-align: left; padding: .4rem .6rem; border-bottom: 1px solid #e2e8f0; }
.chips form { display: inline; }
.chip { border: 1px solid #cbd5e1; border-radius: 999px; padding: .2rem .8rem; margin: .2rem; background: #fff; cursor: pointer; }
.chip.on { background: #3b82f6; color: #fff; border-color: #3b82f6; }
</style>
</head>
<body>
<main>
<h1>Social Media Performance Dashboard</h1>
{{template "screen" .}}
</main>
</body>
</html>{{end}}

{{define "screen"}}<div id="screen"{{if .Loading}} hx-get="/" hx-trigger="load delay:800ms" hx-swap="outerHTML"{{end}}>
<nav>{{range .Nav}}<form method="post" action="/screen" hx-post="/screen" hx-target="#screen" hx-swap="outerHTML"><button name="screen" value="{{.ID}}"{{if .Active}} class="active"{{end}}>{{.Title}}</button></form>{{end}}</nav>
{{if .Loading}}<div class="loading">Loading…</div>{{end}}
{{with .Landing}}{{template "landing" .}}{{end}}
{{with .Explore}}{{template "explore" .}}{{end}}
{{with .Recommend}}{{template "recommend" .}}{{end}}
{{with .Compare}}{{template "compare" .}}{{end}}
</div>{{end}}

{{define "chart"}}<div class="chart"><canvas id="{{.ID}}"></canvas></div>
<script>renderChart({{.ID}}, {{.Spec}});</script>{{end}}

{{define "distributions"}}{{if .Items}}<div class="cards">{{range $i, $d := .Items}}<div class="card">{{template "chart" (chart (printf "%s-%d" $.Prefix $i) $d.Chart)}}</div>{{end}}</div>{{end}}{{end}}

{{define "landing"}}<section>
<h2>Overview</h2>
{{with .Stats}}<div class="cards">
<div class="card"><div>Total posts</div><div class="value">{{.TotalPosts}}</div></div>
<div class="card"><div>Avg views</div><div class="value">{{.AvgViews}}</div></div>
<div class="card"><div>Avg engagement</div><div class="value">{{.AvgEngagementRate}}</div></div>
<div class="card"><div>Platforms</div><div class="value">{{.Platforms}}</div></div>
<div class="card"><div>Regions</div><div class="value">{{.Regions}}</div></div>
</div>
{{if .DateRange}}<p>Data covers {{.DateRange}}.</p>{{end}}
{{end}}<p>Use Explore to filter posts, Recommend for strategy advice and Compare to put platforms and regions side by side.</p>
</section>{{end}}

{{define "explore"}}<section>
<h2>Explore</h2>
<form method="post" action="/explore" hx-post="/explore" hx-target="#screen" hx-swap="outerHTML">
<label>Platform <select name="platform"><option value="">All</option>{{range $.Options.Platforms}}<option value="{{.}}"{{if eq . $.Filters.Platform}} selected{{end}}>{{.}}</option>{{end}}</select></label>
<label>Content type <select name="content_type"><option value="">All</option>{{range $.Options.ContentTypes}}<option value="{{.}}"{{if eq . $.Filters.ContentType}} selected{{end}}>{{.}}</option>{{end}}</select></label>
<label>Region <select name="region"><option value="">All</option>{{range $.Options.Regions}}<option value="{{.}}"{{if eq . $.Filters.Region}} selected{{end}}>{{.}}</option>{{end}}</select></label>
<label>From <input type="date" name="date_start" value="{{$.Filters.DateStart}}" min="{{$.Options.DateMin}}" max="{{$.Options.DateMax}}"></label>
<label>To <input type="date" name="date_end" value="{{$.Filters.DateEnd}}" min="{{$.Options.DateMin}}" max="{{$.Options.DateMax}}"></label>
<button type="submit">Apply Filters</button>
</form>
{{if $.Features.Presets}}<div class="presets">
<form method="post" action="/presets"><input name="name" placeholder="Preset name" required><button type="submit">Save filters</button></form>
{{range $.Presets}}<div>{{.Name}} <small>{{.Summary}}</small>
<form method="post" action="/presets/{{.ID}}/apply" style="display:inline"><button>Use</button></form>
<form method="post" action="/presets/{{.ID}}/delete" style="display:inline"><button>Delete</button></form></div>{{end}}
</div>{{end}}
{{with $.Result}}<div class="cards">
<div class="card"><div>Total posts</div><div class="value">{{.TotalPosts}}</div></div>
<div class="card"><div>Avg views</div><div class="value">{{.AvgViews}}</div></div>
<div class="card"><div>Avg likes</div><div class="value">{{.AvgLikes}}</div></div>
<div class="card"><div>Avg shares</div><div class="value">{{.AvgShares}}</div></div>
<div class="card"><div>Avg comments</div><div class="value">{{.AvgComments}}</div></div>
<div class="card"><div>Avg engagement</div><div class="value">{{.AvgEngagementRate}}</div></div>
</div>
{{if $.Features.Export}}<form method="post" action="/exports/explore"><button type="submit">Download CSV</button></form>{{end}}
{{with .Distribution}}{{template "chart" (chart "engagement-distribution" .)}}{{end}}
{{with .TimeSeries}}{{template "chart" (chart "engagement-time-series" .)}}{{end}}
{{if .Months}}<table><thead><tr><th>Month</th><th>Engagement</th><th>Views</th></tr></thead>
<tbody>{{range .Months}}<tr><td>{{.Month}}</td><td>{{.EngRate}}</td><td>{{.Views}}</td></tr>{{end}}</tbody></table>{{end}}
{{if .TopPosts}}<h3>Top posts</h3>
<table><thead><tr><th>Platform</th><th>Type</th><th>Region</th><th>Views</th><th>Likes</th><th>Shares</th><th>Comments</th><th>Engagement</th></tr></thead>
<tbody>{{range .TopPosts}}<tr><td>{{.Platform}}</td><td>{{.ContentType}}</td><td>{{.Region}}</td><td>{{.Views}}</td><td>{{.Likes}}</td><td>{{.Shares}}</td><td>{{.Comments}}</td><td>{{.EngRate}}</td></tr>{{end}}</tbody></table>{{end}}
{{end}}</section>{{end}}

{{define "recommend"}}<section>
<h2>Recommend</h2>
<form method="post" action="/recommend" hx-post="/recommend" hx-target="#screen" hx-swap="outerHTML">
<label>Platform <select name="platform">{{range withValue .Options.Platforms .Form.Platform}}<option value="{{.}}"{{if eq . $.Form.Platform}} selected{{end}}>{{.}}</option>{{end}}</select></label>
<label>Content type <select name="content_type">{{range withValue .Options.ContentTypes .Form.ContentType}}<option value="{{.}}"{{if eq . $.Form.ContentType}} selected{{end}}>{{.}}</option>{{end}}</select></label>
<label>Region <select name="region">{{range withValue .Options.Regions .Form.Region}}<option value="{{.}}"{{if eq . $.Form.Region}} selected{{end}}>{{.}}</option>{{end}}</select></label>
<label>Expected views <input type="number" min="0" name="expected_views" value="{{.ExpectedViews}}" placeholder="optional"></label>
<button type="submit">Get Recommendations</button>
</form>
{{with .Result}}<div class="cards">
<div class="card"><div>Confidence</div><div class="value">{{.Confidence}}</div></div>
<div class="card"><div>Avg engagement</div><div class="value">{{.AvgEngagementRate}}</div></div>
<div class="card"><div>Views p25 / p50 / p75</div><div class="value">{{.ViewsP25}} / {{.ViewsP50}} / {{.ViewsP75}}</div></div>
{{with .EngagementPercentiles}}<div class="card"><div>Engagement p25 / p50 / p75</div><div class="value">{{.P25}} / {{.P50}} / {{.P75}}</div></div>{{end}}
</div>
{{with .Segment}}<div class="card"><strong>{{.StrategySegment}}</strong><p>{{.StrategyDescription}}</p></div>{{end}}
{{if .Recommendations}}<h3>Recommendations</h3><ol>{{range .Recommendations}}<li>{{.}}</li>{{end}}</ol>{{end}}
{{end}}</section>{{end}}

{{define "compare"}}<section>
<h2>Compare platforms</h2>
<form method="post" action="/compare/platforms" hx-post="/compare/platforms" hx-target="#screen" hx-swap="outerHTML">
<label>Platform A <select name="platform_a">{{range withValue .Options.Platforms .PlatformA}}<option value="{{.}}"{{if eq . $.PlatformA}} selected{{end}}>{{.}}</option>{{end}}</select></label>
<label>Platform B <select name="platform_b">{{range withValue .Options.Platforms .PlatformB}}<option value="{{.}}"{{if eq . $.PlatformB}} selected{{end}}>{{.}}</option>{{end}}</select></label>
<button type="submit">Compare Platforms</button>
</form>
{{with .Platforms}}{{template "chart" (chart "platform-comparison" .Chart)}}
<table><thead><tr><th>Platform</th><th>Posts</th><th>Avg views</th><th>Engagement</th><th>Likes</th><th>Shares</th><th>Comments</th></tr></thead>
<tbody>{{range .Rows}}<tr><td>{{.Platform}}</td><td>{{.TotalPosts}}</td><td>{{.AvgViews}}</td><td>{{.AvgEngagementRate}}</td><td>{{.AvgLikes}}</td><td>{{.AvgShares}}</td><td>{{.AvgComments}}</td></tr>{{end}}</tbody></table>
{{template "distributions" (distributions "platform-distribution" .Distributions)}}
{{end}}
<h2>Compare regions</h2>
<div class="chips">{{range .Regions}}<form method="post" action="/compare/regions/toggle" hx-post="/compare/regions/toggle" hx-target="#screen" hx-swap="outerHTML"><input type="hidden" name="region" value="{{.Name}}"><button class="chip{{if .Selected}} on{{end}}">{{.Name}}</button></form>{{end}}</div>
<form method="post" action="/compare/regions" hx-post="/compare/regions" hx-target="#screen" hx-swap="outerHTML"><button type="submit">Compare Regions</button></form>
{{with .RegionResult}}{{template "chart" (chart "region-engagement" .Chart)}}
<table><thead><tr><th>Region</th><th>Posts</th><th>Avg views</th><th>Avg likes</th><th>Engagement</th></tr></thead>
<tbody>{{range .Rows}}<tr><td>{{.Region}}</td><td>{{.TotalPosts}}</td><td>{{.AvgViews}}</td><td>{{.AvgLikes}}</td><td>{{.AvgEngagementRate}}</td></tr>{{end}}</tbody></table>
{{template "distributions" (distributions "region-distribution" .Distributions)}}
{{end}}</section>{{end}}`
