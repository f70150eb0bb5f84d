package study

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/omarselim0/shopmate/internal/db"
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

func TestSummarizeSingleChunk(t *testing.T) {
	provider := &fakeProvider{response: "- point one\n- point two"}
	tutor := NewTutor(provider, 0)

	got, err := tutor.Summarize(context.Background(), "cells are the basic unit of life")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got != "- point one\n- point two" {
		t.Errorf("summary = %q", got)
	}
	if len(provider.prompts) != 1 {
		t.Fatalf("prompts = %d, want 1", len(provider.prompts))
	}
	if !strings.HasPrefix(provider.prompts[0], "Act as a professional teacher.") {
		t.Errorf("prompt = %q", provider.prompts[0])
	}
}

func TestSummarizeChunksLongNotes(t *testing.T) {
	provider := &fakeProvider{response: "partial summary"}
	tutor := NewTutor(provider, 0)

	// 3200 words force three chunks at the 1500-word chunk size.
	notes := strings.TrimSpace(strings.Repeat("word ", 3200))
	got, err := tutor.Summarize(context.Background(), notes)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(provider.prompts) != 3 {
		t.Errorf("prompts = %d, want 3", len(provider.prompts))
	}
	if got != "partial summary\npartial summary\npartial summary" {
		t.Errorf("summary = %q", got)
	}
}

func TestSummarizeEmptyNotes(t *testing.T) {
	tutor := NewTutor(&fakeProvider{}, 0)
	if _, err := tutor.Summarize(context.Background(), "   "); err == nil {
		t.Error("expected an error for empty notes")
	}
}

func TestAnswerTruncatesToWordLimit(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("answer ", 50))
	provider := &fakeProvider{response: long}
	tutor := NewTutor(provider, 10)

	got, err := tutor.Answer(context.Background(), "some notes", "what is this about")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if n := len(strings.Fields(got)); n != 10 {
		t.Errorf("answer words = %d, want 10", n)
	}
	if !strings.Contains(provider.prompts[0], "what is this about") {
		t.Errorf("prompt should carry the question: %q", provider.prompts[0])
	}
}

func TestAnswerRejectsEmptyQuestion(t *testing.T) {
	tutor := NewTutor(&fakeProvider{}, 0)
	if _, err := tutor.Answer(context.Background(), "notes", ""); err == nil {
		t.Error("expected an error for an empty question")
	}
}

func TestChunkWords(t *testing.T) {
	chunks := chunkWords("a b c d e", 2)
	want := []string{"a b", "c d", "e"}
	if len(chunks) != len(want) {
		t.Fatalf("chunks = %v", chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, chunks[i], want[i])
		}
	}
	if chunkWords("  ", 2) != nil {
		t.Error("blank input should produce no chunks")
	}
}

func TestGenerateQuizParsesModelOutput(t *testing.T) {
	provider := &fakeProvider{response: `Q: What powers the cell?
a) Ribosome
b) Mitochondria
c) Nucleus
d) Membrane
Answer: b

Q: What carries genetic information?
a) DNA
b) Lipids
c) Enzymes
d) Water
Answer: a`}
	tutor := NewTutor(provider, 0)

	quiz, err := tutor.GenerateQuiz(context.Background(), "biology notes")
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	if len(quiz) != 2 {
		t.Fatalf("questions = %d, want 2", len(quiz))
	}
	if quiz[0].Prompt != "What powers the cell?" {
		t.Errorf("prompt = %q", quiz[0].Prompt)
	}
	if quiz[0].Options["b"] != "Mitochondria" {
		t.Errorf("option b = %q", quiz[0].Options["b"])
	}
	if quiz[0].Answer != "b" || quiz[1].Answer != "a" {
		t.Errorf("answers = %q, %q", quiz[0].Answer, quiz[1].Answer)
	}
	if !strings.HasPrefix(provider.prompts[0], "Generate 3 multiple choice questions") {
		t.Errorf("prompt = %q", provider.prompts[0])
	}
}

func TestGenerateQuizRejectsUnparseableOutput(t *testing.T) {
	provider := &fakeProvider{response: "I cannot make a quiz from this."}
	tutor := NewTutor(provider, 0)

	if _, err := tutor.GenerateQuiz(context.Background(), "notes"); err == nil {
		t.Error("expected an error when no questions parse")
	}
}

func TestGrade(t *testing.T) {
	quiz := Quiz{
		{Prompt: "q1", Answer: "b"},
		{Prompt: "q2", Answer: "a"},
		{Prompt: "q3", Answer: "d"},
	}

	result := Grade(quiz, []string{"B", "c"})
	if result.Score != 1 || result.Total != 3 {
		t.Errorf("score = %d/%d, want 1/3", result.Score, result.Total)
	}
	if !result.Results[0].Correct {
		t.Error("case-insensitive answer should be correct")
	}
	if result.Results[1].Correct || result.Results[2].Correct {
		t.Error("wrong and missing answers should not be correct")
	}
	if result.Results[2].Given != "" {
		t.Errorf("missing answer recorded as %q", result.Results[2].Given)
	}
}

func TestParseFlashcards(t *testing.T) {
	raw := `Q: What is photosynthesis?
A: Converting light into chemical energy.

Q: Where does it happen?
A: In the chloroplasts.`

	cards := ParseFlashcards(raw)
	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2: %v", len(cards), cards)
	}
	if cards[0].Question != "What is photosynthesis?" {
		t.Errorf("question = %q", cards[0].Question)
	}
	if cards[1].Answer != "In the chloroplasts." {
		t.Errorf("answer = %q", cards[1].Answer)
	}
}

func TestBookmarkStore(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()

	store := NewBookmarkStore(database)
	ctx := context.Background()

	id, err := store.Save(ctx, "bio.pdf", 3, "What is osmosis?", "Diffusion of water across a membrane.")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Save(ctx, "", 0, "Second note", ""); err != nil {
		t.Fatalf("Save: %v", err)
	}

	bookmarks, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(bookmarks) != 2 {
		t.Fatalf("bookmarks = %d, want 2", len(bookmarks))
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, id); err == nil {
		t.Error("deleting a missing bookmark should error")
	}
}

func TestBookmarkSaveRejectsEmptyNote(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()

	if _, err := NewBookmarkStore(database).Save(context.Background(), "", 0, "  ", ""); err == nil {
		t.Error("expected an error for an empty note")
	}
}

func TestFormatBookmarks(t *testing.T) {
	if got := FormatBookmarks(nil); got != NoBookmarksMessage {
		t.Errorf("empty list = %q", got)
	}

	got := FormatBookmarks([]Bookmark{
		{Note: "What is osmosis?", Snippet: "Water diffusion.", SourceFile: "bio.pdf", Page: 3},
	})
	for _, want := range []string{"1. What is osmosis?", "Water diffusion.", "(bio.pdf, page 3)"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatted output missing %q:\n%s", want, got)
		}
	}
}

func TestExportHTML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "notes", "summary.html")

	err := ExportHTML("Biology Summary", "# Cells\n\n- basic unit of life\n", out)
	if err != nil {
		t.Fatalf("ExportHTML: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	for _, want := range []string{"<title>Biology Summary</title>", "<h1", "Cells", "<li>basic unit of life</li>"} {
		if !strings.Contains(html, want) {
			t.Errorf("exported HTML missing %q", want)
		}
	}
}

func TestFlashcardsMarkdown(t *testing.T) {
	md := FlashcardsMarkdown("Bio Cards", []Flashcard{{Question: "Q1?", Answer: "A1."}})
	for _, want := range []string{"# Bio Cards", "## Card 1", "**Q:** Q1?", "**A:** A1."} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}
