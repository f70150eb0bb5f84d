package textsplit

import "strings"

// Default chunking parameters for document ingestion.
const (
	DefaultChunkSize = 1000
	DefaultOverlap   = 200
)

// separators are tried in order. Paragraph breaks are preferred, then lines,
// then sentences, then words. The empty separator means a hard character cut.
var separators = []string{"\n\n", "\n", ". ", " "}

// Splitter breaks text into overlapping chunks suitable for embedding.
type Splitter struct {
	ChunkSize int
	Overlap   int
}

// New creates a Splitter. Non-positive size or overlap fall back to defaults.
func New(chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = DefaultOverlap
		if overlap >= chunkSize {
			overlap = chunkSize / 5
		}
	}
	return &Splitter{ChunkSize: chunkSize, Overlap: overlap}
}

// Split breaks text into chunks of at most ChunkSize characters, with
// consecutive chunks sharing roughly Overlap characters of context.
func (s *Splitter) Split(text string) []string {
	pieces := s.splitRecursive(text, separators)
	return s.merge(pieces)
}

// splitRecursive splits text on the first separator that is present, then
// recursively splits any piece still larger than ChunkSize on finer separators.
func (s *Splitter) splitRecursive(text string, seps []string) []string {
	if len(text) <= s.ChunkSize {
		return []string{text}
	}

	if len(seps) == 0 {
		// No separator left, hard cut.
		var out []string
		for len(text) > s.ChunkSize {
			out = append(out, text[:s.ChunkSize])
			text = text[s.ChunkSize:]
		}
		if text != "" {
			out = append(out, text)
		}
		return out
	}

	sep := seps[0]
	parts := strings.Split(text, sep)

	var out []string
	for i, p := range parts {
		// Keep the separator attached so merged chunks read naturally.
		if i < len(parts)-1 {
			p += sep
		}
		if len(p) > s.ChunkSize {
			out = append(out, s.splitRecursive(p, seps[1:])...)
		} else if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// merge joins pieces into chunks up to ChunkSize, carrying trailing pieces
// forward so consecutive chunks overlap.
func (s *Splitter) merge(pieces []string) []string {
	var chunks []string
	var current []string
	total := 0

	for _, p := range pieces {
		if total+len(p) > s.ChunkSize && len(current) > 0 {
			if c := strings.TrimSpace(strings.Join(current, "")); c != "" {
				chunks = append(chunks, c)
			}
			for len(current) > 0 && (total > s.Overlap || total+len(p) > s.ChunkSize) {
				total -= len(current[0])
				current = current[1:]
			}
		}
		current = append(current, p)
		total += len(p)
	}

	if c := strings.TrimSpace(strings.Join(current, "")); c != "" {
		chunks = append(chunks, c)
	}
	return chunks
}

// TruncateWords limits text to at most limit whitespace-separated words.
func TruncateWords(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) <= limit {
		return text
	}
	return strings.Join(words[:limit], " ")
}
