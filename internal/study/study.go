package study

import (
	"context"
	"fmt"
	"strings"

	"github.com/omarselim0/shopmate/internal/llm"
	"github.com/omarselim0/shopmate/internal/textsplit"
)

// summaryChunkWords caps how many words of notes are sent per summary request.
const summaryChunkWords = 1500

// DefaultAnswerWordLimit caps tutor answers unless the caller overrides it.
const DefaultAnswerWordLimit = 800

const summarizePrompt = "Act as a professional teacher. Summarize the following class notes in simple language with bullet points:"

const answerPrompt = `You are an expert AI teacher. Answer the student's question using the class notes below. Explain in simple language and finish with 3 bullet points recapping the answer.`

// Tutor turns class notes into study material: summaries, quizzes,
// flashcards, and tutored answers.
type Tutor struct {
	provider  llm.Provider
	wordLimit int
}

// NewTutor creates a tutor. wordLimit caps answer length in words; zero or
// negative selects the default.
func NewTutor(provider llm.Provider, wordLimit int) *Tutor {
	if wordLimit <= 0 {
		wordLimit = DefaultAnswerWordLimit
	}
	return &Tutor{provider: provider, wordLimit: wordLimit}
}

// Summarize condenses notes chunk by chunk and joins the partial summaries.
func (t *Tutor) Summarize(ctx context.Context, notes string) (string, error) {
	chunks := chunkWords(notes, summaryChunkWords)
	if len(chunks) == 0 {
		return "", fmt.Errorf("no notes to summarize")
	}

	var parts []string
	for _, chunk := range chunks {
		part, err := t.complete(ctx, summarizePrompt+"\n\n"+chunk)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "\n"), nil
}

// Answer responds to a question about the notes, truncated to the word limit.
func (t *Tutor) Answer(ctx context.Context, notes, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("question is empty")
	}

	prompt := fmt.Sprintf("%s\n\nNotes:\n%s\n\nQuestion: %s",
		answerPrompt, textsplit.TruncateWords(notes, summaryChunkWords), question)
	answer, err := t.complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return textsplit.TruncateWords(answer, t.wordLimit), nil
}

func (t *Tutor) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := t.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	return resp.Content, nil
}

// chunkWords splits text into pieces of at most limit words.
func chunkWords(text string, limit int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	for start := 0; start < len(words); start += limit {
		end := start + limit
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
