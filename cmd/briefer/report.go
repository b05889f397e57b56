package main

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"briefer"
)

// ReportData feeds the HTML report template.
type ReportData struct {
	URL     string
	Title   string
	Format  briefer.Format
	Summary string
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Article Summary</title>
<style>
body {
	font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
	max-width: 900px;
	margin: 0 auto;
	padding: 40px 20px;
	background-color: #f5f5f5;
	color: #333;
	line-height: 1.6;
}
.container { background: white; border-radius: 8px; padding: 40px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
h1 { color: #2c3e50; border-bottom: 3px solid #3498db; padding-bottom: 10px; margin-top: 0; }
.meta { color: #7f8c8d; font-size: 14px; margin-bottom: 30px; }
.meta a { color: #3498db; text-decoration: none; }
.summary { font-size: 16px; color: #2c3e50; line-height: 1.8; }
</style>
</head>
<body>
<div class="container">
<h1>{{if .Title}}{{.Title}}{{else}}Article Summary{{end}}</h1>
<div class="meta">
<strong>Source:</strong> <a href="{{.URL}}" target="_blank">{{.URL}}</a><br>
<strong>Format:</strong> {{.Format}}
</div>
<div class="summary">{{.SummaryHTML}}</div>
</div>
</body>
</html>
`))

// reportView is the template's view model: the summary text escaped and
// with line breaks preserved.
type reportView struct {
	URL         string
	Title       string
	Format      briefer.Format
	SummaryHTML template.HTML
}

// WriteReport renders the HTML report to w.
func WriteReport(w io.Writer, data ReportData) error {
	escaped := template.HTMLEscapeString(data.Summary)
	withBreaks := strings.ReplaceAll(escaped, "\n", "<br>\n")

	return reportTemplate.Execute(w, reportView{
		URL:         data.URL,
		Title:       data.Title,
		Format:      data.Format,
		SummaryHTML: template.HTML(withBreaks),
	})
}

// SaveReport writes the HTML report to a temp file and returns its path.
func SaveReport(data ReportData) (string, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("briefer_summary_%d.html", os.Getpid()))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteReport(f, data); err != nil {
		return "", err
	}
	return path, nil
}
