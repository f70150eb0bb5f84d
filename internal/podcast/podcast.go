// Package podcast turns document text into a two-host dialogue script that
// is clean enough to hand to a text-to-speech engine.
package podcast

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/omarselim0/shopmate/internal/llm"
	"github.com/omarselim0/shopmate/internal/textsplit"
)

// scriptSourceWords caps how much source text is sent to the model.
const scriptSourceWords = 1500

const (
	// HostA opens the show and asks the questions.
	HostA = "Alex"
	// HostB brings the detail from the document.
	HostB = "Sam"
)

var scriptPrompt = fmt.Sprintf(`Write a short podcast episode script where two hosts, %s and %s, discuss the document below. %s asks curious questions and %s explains the content in plain language. Keep it conversational, about 12 exchanges. Format every line exactly as:
%s: <line>
%s: <line>

Document:`, HostA, HostB, HostA, HostB, HostA, HostB)

var (
	markdownChars = regexp.MustCompile("[_*#<>`~\\\\\\-]")
	literalBreaks = regexp.MustCompile(`\\n`)
	escapeWords   = regexp.MustCompile(`\\[a-zA-Z]+`)
	nonSpeech     = regexp.MustCompile(`[^\w\s.,?!]`)
)

// Segment is one spoken line attributed to a host.
type Segment struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Script is a generated episode: the cleaned full text plus per-speaker
// segments in order.
type Script struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
}

// Writer generates podcast scripts with an LLM.
type Writer struct {
	provider llm.Provider
}

// NewWriter creates a script writer.
func NewWriter(provider llm.Provider) *Writer {
	return &Writer{provider: provider}
}

// Generate writes an episode script for the given document text.
func (w *Writer) Generate(ctx context.Context, docText string) (*Script, error) {
	if strings.TrimSpace(docText) == "" {
		return nil, fmt.Errorf("no document text to script")
	}

	resp, err := w.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: scriptPrompt + "\n\n" + textsplit.TruncateWords(docText, scriptSourceWords),
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("completion: %w", err)
	}

	// Speaker prefixes carry a colon, which the TTS cleaner strips, so
	// split into segments first and clean each line after.
	segments := SplitSegments(resp.Content)
	if len(segments) == 0 {
		return nil, fmt.Errorf("no host lines found in model output")
	}
	for i := range segments {
		segments[i].Text = strings.TrimSpace(CleanForTTS(segments[i].Text))
	}

	return &Script{Text: CleanForTTS(resp.Content), Segments: segments}, nil
}

// CleanForTTS strips markdown control characters, literal escape sequences,
// and non-speech symbols. Letters, digits, whitespace and basic punctuation
// survive.
func CleanForTTS(text string) string {
	// Escape sequences go first; stripping markdown characters would eat
	// the backslashes they match on.
	text = literalBreaks.ReplaceAllString(text, " ")
	text = escapeWords.ReplaceAllString(text, "")
	text = markdownChars.ReplaceAllString(text, "")
	text = nonSpeech.ReplaceAllString(text, "")
	return text
}

// SplitSegments breaks a script into per-speaker lines. Lines without a
// known speaker prefix are appended to the previous segment; leading
// narration before the first host line is dropped.
func SplitSegments(script string) []Segment {
	var segments []Segment
	for _, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		speaker, text, ok := splitSpeaker(line)
		if !ok {
			if len(segments) > 0 {
				segments[len(segments)-1].Text += " " + line
			}
			continue
		}
		segments = append(segments, Segment{Speaker: speaker, Text: text})
	}
	return segments
}

func splitSpeaker(line string) (string, string, bool) {
	for _, host := range []string{HostA, HostB} {
		prefix := host + ":"
		if strings.HasPrefix(line, prefix) {
			return host, strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return "", "", false
}
