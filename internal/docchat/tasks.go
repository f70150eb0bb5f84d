package docchat

import (
	"context"
	"fmt"
	"strings"

	"github.com/omarselim0/shopmate/internal/llm"
)

// Task is a whole-document operation detected from the user's question.
type Task string

const (
	TaskQA           Task = "qa"
	TaskSummarize    Task = "summarize"
	TaskBulletPoints Task = "bullet_points"
	TaskCompare      Task = "compare"
	TaskMainTopic    Task = "main_topic"
)

// Each document task reads at most this many characters of a document.
const taskTextLimit = 5000

// taskKeywords maps trigger keywords to tasks, checked in order.
var taskKeywords = []struct {
	keyword string
	task    Task
}{
	{"summarize", TaskSummarize},
	{"summary", TaskSummarize},
	{"bullet", TaskBulletPoints},
	{"key points", TaskBulletPoints},
	{"compare", TaskCompare},
	{"main topic", TaskMainTopic},
}

// DetectTask classifies a question into a document task. Anything that
// matches no keyword is retrieval QA.
func DetectTask(input string) Task {
	lower := strings.ToLower(input)
	for _, kw := range taskKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.task
		}
	}
	return TaskQA
}

func (e *Engine) handleSummarize(ctx context.Context) (string, error) {
	text, err := e.allDocumentsText()
	if err != nil {
		return "", err
	}
	return e.complete(ctx, "Summarize the document with markdown headings:\n\n"+truncateChars(text, taskTextLimit))
}

func (e *Engine) handleBulletPoints(ctx context.Context) (string, error) {
	text, err := e.allDocumentsText()
	if err != nil {
		return "", err
	}
	return e.complete(ctx, "List the key points in bullet form:\n\n"+truncateChars(text, taskTextLimit))
}

func (e *Engine) handleCompare(ctx context.Context) (string, error) {
	if len(e.sources) < 2 {
		return "Please ingest at least 2 documents to compare.", nil
	}

	first := e.texts[e.sources[0]]
	second := e.texts[e.sources[1]]
	prompt := fmt.Sprintf("Compare these documents:\n\nDocument 1:\n%s\n\nDocument 2:\n%s",
		truncateChars(first, taskTextLimit), truncateChars(second, taskTextLimit))
	return e.complete(ctx, prompt)
}

func (e *Engine) handleMainTopic(ctx context.Context) (string, error) {
	text, err := e.allDocumentsText()
	if err != nil {
		return "", err
	}
	return e.complete(ctx, "State the main topic of the document in one short paragraph:\n\n"+truncateChars(text, taskTextLimit))
}

func (e *Engine) allDocumentsText() (string, error) {
	if len(e.sources) == 0 {
		return "", fmt.Errorf("no documents ingested")
	}
	parts := make([]string, 0, len(e.sources))
	for _, src := range e.sources {
		parts = append(parts, e.texts[src])
	}
	return strings.Join(parts, " "), nil
}

func (e *Engine) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	return resp.Content, nil
}

func truncateChars(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
