package pdf

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Page holds the extracted text of a single PDF page.
type Page struct {
	Number int
	Text   string
}

// Document is the extracted content of one PDF file.
type Document struct {
	Path      string
	Title     string
	Pages     []Page
	PageCount int
	WordCount int
}

// Text returns the full document text with pages joined by blank lines.
func (d *Document) Text() string {
	parts := make([]string, 0, len(d.Pages))
	for _, p := range d.Pages {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n\n")
}

// Extract opens a PDF file and extracts the text of every page.
func Extract(ctx context.Context, path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if pageCount == 0 {
		return nil, fmt.Errorf("pdf %s has no pages", path)
	}

	d := &Document{
		Path:      path,
		Title:     TitleFromPath(path),
		Pages:     make([]Page, 0, pageCount),
		PageCount: pageCount,
	}

	for pageNum := 0; pageNum < pageCount; pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		text, err := doc.Text(pageNum)
		if err != nil {
			return nil, fmt.Errorf("extract page %d of %s: %w", pageNum+1, path, err)
		}

		d.Pages = append(d.Pages, Page{Number: pageNum + 1, Text: text})
		d.WordCount += CountWords(text)
	}

	return d, nil
}

// TitleFromPath derives a display title from a file path.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CountWords counts whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
