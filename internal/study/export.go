package study

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

const exportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 760px; margin: 2rem auto; padding: 0 1rem; color: #1f2328; line-height: 1.6; }
h1, h2, h3 { line-height: 1.25; }
code { background: #f6f8fa; padding: 0.15em 0.35em; border-radius: 4px; font-size: 0.92em; }
pre code { display: block; padding: 0.8em; overflow-x: auto; }
blockquote { border-left: 3px solid #d0d7de; margin-left: 0; padding-left: 1em; color: #57606a; }
ul { padding-left: 1.4em; }
</style>
</head>
<body>
{{.Content}}
</body>
</html>
`

type exportData struct {
	Title   string
	Content template.HTML
}

// ExportHTML renders markdown study material into a standalone HTML file.
func ExportHTML(title, markdown, outPath string) error {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	tmpl, err := template.New("export").Parse(exportTemplate)
	if err != nil {
		return fmt.Errorf("parsing export template: %w", err)
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, exportData{
		Title:   title,
		Content: template.HTML(buf.String()),
	})
}

// FlashcardsMarkdown renders flashcards as markdown for export.
func FlashcardsMarkdown(title string, cards []Flashcard) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", title)
	for i, c := range cards {
		fmt.Fprintf(&buf, "## Card %d\n\n**Q:** %s\n\n**A:** %s\n\n", i+1, c.Question, c.Answer)
	}
	return buf.String()
}
