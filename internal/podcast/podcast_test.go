package podcast

import (
	"context"
	"strings"
	"testing"

	"github.com/omarselim0/shopmate/internal/llm"
)

type fakeProvider struct {
	response string
	prompts  []string
}

func (f *fakeProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.prompts = append(f.prompts, req.Messages[len(req.Messages)-1].Content)
	return &llm.CompletionResponse{Content: f.response}, nil
}

func (f *fakeProvider) Name() string { return "fake" }

func TestCleanForTTS(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"**bold** and _italic_", "bold and italic"},
		{"# Heading\ncode `here`", " Heading\ncode here"},
		{`line one\nline two`, "line one line two"},
		{`stray \alpha escape`, "stray  escape"},
		{"emoji 🎙 and (parens) stay out!", "emoji  and parens stay out!"},
		{"plain words, punctuation. fine? yes!", "plain words, punctuation. fine? yes!"},
	}

	for _, tc := range cases {
		if got := CleanForTTS(tc.in); got != tc.want {
			t.Errorf("CleanForTTS(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplitSegments(t *testing.T) {
	script := `Welcome to the show notes.
Alex: Hey Sam, what did you read today?
Sam: A document about shipping policy.
It covers refunds too.
Alex: Tell me more.`

	segments := SplitSegments(script)
	if len(segments) != 3 {
		t.Fatalf("segments = %d, want 3: %v", len(segments), segments)
	}
	if segments[0].Speaker != HostA || segments[1].Speaker != HostB {
		t.Errorf("speakers = %s, %s", segments[0].Speaker, segments[1].Speaker)
	}
	// The continuation line folds into Sam's segment.
	if !strings.Contains(segments[1].Text, "refunds too") {
		t.Errorf("segment = %q", segments[1].Text)
	}
}

func TestGenerate(t *testing.T) {
	provider := &fakeProvider{response: `Alex: So what is this **document** about?
Sam: It explains the store return policy.
Alex: Nice, give me the short version.
Sam: Thirty days, original packaging.`}
	writer := NewWriter(provider)

	script, err := writer.Generate(context.Background(), "return policy document text")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(script.Segments) != 4 {
		t.Fatalf("segments = %d, want 4", len(script.Segments))
	}
	if script.Segments[0].Text != "So what is this document about?" {
		t.Errorf("cleaned segment = %q", script.Segments[0].Text)
	}
	if strings.Contains(script.Text, "*") {
		t.Errorf("script text should be cleaned: %q", script.Text)
	}
	if !strings.Contains(provider.prompts[0], "return policy document text") {
		t.Errorf("prompt should carry the document text")
	}
}

func TestGenerateRejectsEmptyDocument(t *testing.T) {
	if _, err := NewWriter(&fakeProvider{}).Generate(context.Background(), " "); err == nil {
		t.Error("expected an error for empty document text")
	}
}

func TestGenerateRejectsScriptWithoutHosts(t *testing.T) {
	provider := &fakeProvider{response: "No dialogue here at all."}
	if _, err := NewWriter(provider).Generate(context.Background(), "text"); err == nil {
		t.Error("expected an error when no host lines parse")
	}
}
