package rendering

import (
	"strings"
	"text/template"
)

// RenderError represents an error that occurred while producing the
// print document.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// printPage is the full print shell: a US letter sized page with the
// rendered body inlined, auto-printing on load.
const printPage = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <link href="https://fonts.googleapis.com/css2?family=Lato:wght@400;700&display=swap" rel="stylesheet" />
  <style>
    :root { --text:#111; --muted:#555; }
    * { box-sizing: border-box; }
    body { font-family: 'Lato', ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Arial, Noto Sans, sans-serif; color: var(--text); margin: 0; }
    .page { width: 8.5in; min-height: 11in; padding: 0.8in; margin: 0 auto; }
    h1 { font-size: 22px; margin: 0 0 6px; }
    h2 { font-size: 14px; margin: 18px 0 8px; font-weight: 700; text-transform: uppercase; letter-spacing: .3px; border-bottom: 1px solid #000; padding-bottom: 4px; }
    h3 { font-size: 13px; margin: 10px 0 6px; border-bottom: 1px solid #000; padding-bottom: 3px; }
    .section-title { font-weight:700; border-bottom:1px solid #000; padding-bottom:4px; margin:12px 0 8px; }
    .exp-row { display: flex; align-items: baseline; justify-content: space-between; }
    .exp-row .right { white-space: nowrap; }
    p { margin: 4px 0; line-height: 1.45; }
    .spacer { height: 6px; }
    ul { margin: 6px 0 10px 18px; padding: 0; }
    li { margin: 2px 0; line-height: 1.4; }
    header { margin-bottom: 8px; }
    @media print {
      @page { margin: 0; size: A4; }
      body { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
      .page { padding: 0.8in; }
      .actions { display: none !important; }
    }
  </style>
</head>
<body>
  <div class="page">
    {{.Body}}
  </div>
  <script>window.onload = () => { window.focus(); window.print(); };</script>
</body>
</html>
`

var printTemplate = template.Must(template.New("print").Parse(printPage))

// printData is the data structure passed to the print template.
type printData struct {
	Title string
	Body  string
}

// PrintDocument wraps canonical resume markdown in a complete,
// self-printing HTML document.
func PrintDocument(markdown, title string) (string, error) {
	if title == "" {
		title = "Resume"
	}

	var result strings.Builder
	err := printTemplate.Execute(&result, printData{
		Title: EscapeHTML(title),
		Body:  RenderHTML(markdown),
	})
	if err != nil {
		return "", &RenderError{
			Message: "failed to execute print template",
			Cause:   err,
		}
	}

	return result.String(), nil
}
