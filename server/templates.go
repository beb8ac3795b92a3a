package server

import (
	"html/template"
	"net/http"
)

const pageTitle = "🩺 AI-driven Medical Report Analyzer"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; }
pre { white-space: pre-wrap; background: #f6f6f6; padding: 1rem; }
.warning { color: #8a6d03; }
.error { color: #a11; }
button { font-size: 1rem; padding: 0.5rem 1rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Usage}}
<p>Please provide a PDF link in the URL parameters to analyze a medical report.</p>
<h3>How to use this tool:</h3>
<ol>
<li>Add a PDF link to the URL as a query parameter: <code>?pdf_link=YOUR_PDF_URL</code></li>
<li>The AI will automatically analyze the medical report and provide insights</li>
</ol>
{{end}}
{{if .Link}}
<form method="post" action="/analyze">
<input type="hidden" name="pdf_link" value="{{.Link}}">
<button type="submit">🔍 Analyze PDF Report</button>
</form>
{{end}}
{{range .Warnings}}
<p class="warning">{{.}}</p>
{{end}}
{{if .Error}}
<p class="error">{{.Error}}</p>
{{end}}
{{if .Analysis}}
<h2>📊 Analysis Results:</h2>
<pre>{{.Analysis}}</pre>
{{end}}
</body>
</html>
`))

type page struct {
	Title string

	Usage bool
	Link  string

	Analysis string
	Warnings []string
	Error    string
}

func renderPage(w http.ResponseWriter, p page) {
	p.Title = pageTitle

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	pageTemplate.Execute(w, p)
}
