package textsplit

import (
	"fmt"
	"strings"
	"testing"
)

func TestSplitShortText(t *testing.T) {
	s := New(1000, 200)

	chunks := s.Split("a short paragraph that fits in one chunk")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "a short paragraph that fits in one chunk" {
		t.Errorf("unexpected chunk content: %q", chunks[0])
	}
}

func TestSplitEmptyText(t *testing.T) {
	s := New(1000, 200)

	if chunks := s.Split(""); len(chunks) != 0 {
		t.Errorf("expected no chunks for empty text, got %d", len(chunks))
	}
	if chunks := s.Split("   \n\n  "); len(chunks) != 0 {
		t.Errorf("expected no chunks for whitespace text, got %d", len(chunks))
	}
}

func TestSplitRespectsChunkSize(t *testing.T) {
	s := New(100, 20)

	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString("the quick brown fox jumps over the lazy dog. ")
	}

	chunks := s.Split(sb.String())
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 100 {
			t.Errorf("chunk %d exceeds size limit: %d chars", i, len(c))
		}
		if strings.TrimSpace(c) == "" {
			t.Errorf("chunk %d is empty", i)
		}
	}
}

func TestSplitPrefersParagraphBoundaries(t *testing.T) {
	s := New(60, 0)

	text := "first paragraph here.\n\nsecond paragraph here.\n\nthird paragraph here."
	chunks := s.Split(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if strings.Contains(c, "\n\n") && len(c) > 60 {
			t.Errorf("chunk %d crosses paragraph boundary while oversized: %q", i, c)
		}
	}
}

func TestSplitOverlap(t *testing.T) {
	s := New(100, 40)

	var sb strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&sb, "sentence number %02d ends here. ", i)
	}

	chunks := s.Split(sb.String())
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	// Each chunk should start with content carried over from the previous one.
	for i := 1; i < len(chunks); i++ {
		head := strings.TrimSpace(chunks[i][:20])
		if !strings.Contains(chunks[i-1], head) {
			t.Errorf("chunk %d does not overlap with previous chunk: head %q not in %q", i, head, chunks[i-1])
		}
	}
}

func TestSplitHardCutWithoutSeparators(t *testing.T) {
	s := New(50, 10)

	text := strings.Repeat("x", 175)
	chunks := s.Split(text)
	if len(chunks) < 3 {
		t.Fatalf("expected at least 3 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 50 {
			t.Errorf("chunk %d exceeds size limit: %d chars", i, len(c))
		}
	}
}

func TestNewDefaults(t *testing.T) {
	s := New(0, -1)
	if s.ChunkSize != DefaultChunkSize {
		t.Errorf("ChunkSize = %d, want %d", s.ChunkSize, DefaultChunkSize)
	}
	if s.Overlap != DefaultOverlap {
		t.Errorf("Overlap = %d, want %d", s.Overlap, DefaultOverlap)
	}
}

func TestTruncateWords(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"under limit", "one two three", 5, "one two three"},
		{"at limit", "one two three", 3, "one two three"},
		{"over limit", "one two three four five", 3, "one two three"},
		{"zero limit returns text", "one two", 0, "one two"},
		{"empty text", "", 10, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateWords(tc.text, tc.limit); got != tc.want {
				t.Errorf("TruncateWords(%q, %d) = %q, want %q", tc.text, tc.limit, got, tc.want)
			}
		})
	}
}
