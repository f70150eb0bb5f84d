package docchat

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/omarselim0/shopmate/internal/db"
	"github.com/omarselim0/shopmate/internal/llm"
	"github.com/omarselim0/shopmate/internal/pdf"
	"github.com/omarselim0/shopmate/internal/textsplit"
	"github.com/omarselim0/shopmate/internal/vectordb"
)

const answerSystemPrompt = `You are a helpful document assistant. Answer the question using only the provided document excerpts. If the excerpts do not contain the answer, say so plainly. Keep answers concise.`

// Engine answers questions over ingested PDF documents: retrieval over the
// vector store for QA, whole-document prompts for summarize/bullet/compare
// tasks, and canned replies for small talk.
type Engine struct {
	provider       llm.Provider
	store          vectordb.VectorStore
	database       *db.DB
	splitter       *textsplit.Splitter
	retrievalLimit int

	// Full extracted text per source file, kept for the whole-document
	// task handlers. Sources are remembered in ingest order.
	texts   map[string]string
	sources []string
}

// NewEngine creates a doc-chat engine. The database is optional; without it
// chat memory is not persisted.
func NewEngine(provider llm.Provider, store vectordb.VectorStore, database *db.DB, splitter *textsplit.Splitter, retrievalLimit int) *Engine {
	if retrievalLimit <= 0 {
		retrievalLimit = 4
	}
	if splitter == nil {
		splitter = textsplit.New(textsplit.DefaultChunkSize, textsplit.DefaultOverlap)
	}
	return &Engine{
		provider:       provider,
		store:          store,
		database:       database,
		splitter:       splitter,
		retrievalLimit: retrievalLimit,
		texts:          make(map[string]string),
	}
}

// Sources returns the ingested source files in ingest order.
func (e *Engine) Sources() []string {
	out := make([]string, len(e.sources))
	copy(out, e.sources)
	return out
}

// ChunkCount returns the number of chunks in the vector store.
func (e *Engine) ChunkCount() int {
	return e.store.Count()
}

// IngestFile extracts one PDF and adds its chunks to the vector store.
// Returns the number of chunks added.
func (e *Engine) IngestFile(ctx context.Context, path string) (int, error) {
	doc, err := pdf.Extract(ctx, path)
	if err != nil {
		return 0, err
	}
	return e.ingestPages(ctx, doc.Path, doc.Title, doc.Pages)
}

// ingestPages chunks extracted pages and stores them with source metadata.
func (e *Engine) ingestPages(ctx context.Context, source, title string, pages []pdf.Page) (int, error) {
	// Re-ingesting a file replaces its previous chunks.
	if _, seen := e.texts[source]; seen {
		if err := e.store.DeleteBySourceFile(ctx, source); err != nil {
			return 0, fmt.Errorf("removing stale chunks for %s: %w", source, err)
		}
	}

	now := time.Now().UTC()
	var docs []vectordb.Document
	var fullText []string

	for _, page := range pages {
		fullText = append(fullText, page.Text)
		for i, chunk := range e.splitter.Split(page.Text) {
			docs = append(docs, vectordb.Document{
				ID:      fmt.Sprintf("%s:p%d:c%d", source, page.Number, i),
				Content: chunk,
				Metadata: vectordb.DocumentMetadata{
					SourceFile:  source,
					Title:       title,
					Page:        page.Number,
					ChunkIndex:  i,
					ContentHash: contentHash(chunk),
					LastUpdated: now,
				},
			})
		}
	}

	if err := e.store.AddDocuments(ctx, docs); err != nil {
		return 0, fmt.Errorf("adding chunks for %s: %w", source, err)
	}

	if _, seen := e.texts[source]; !seen {
		e.sources = append(e.sources, source)
	}
	e.texts[source] = strings.Join(fullText, " ")

	log.Printf("docchat: ingested %s (%d chunks)", source, len(docs))
	return len(docs), nil
}

// Ask processes one user question: small talk first, then document tasks,
// then retrieval QA. The turn is recorded in chat memory when a database
// is attached.
func (e *Engine) Ask(ctx context.Context, sessionID, question string) (string, error) {
	if reply, ok := SmallTalk(question); ok {
		e.remember(ctx, sessionID, question, reply)
		return reply, nil
	}

	var answer string
	var err error

	switch DetectTask(question) {
	case TaskSummarize:
		answer, err = e.handleSummarize(ctx)
	case TaskBulletPoints:
		answer, err = e.handleBulletPoints(ctx)
	case TaskCompare:
		answer, err = e.handleCompare(ctx)
	case TaskMainTopic:
		answer, err = e.handleMainTopic(ctx)
	default:
		answer, err = e.answerWithRetrieval(ctx, sessionID, question)
	}
	if err != nil {
		return "", err
	}

	e.remember(ctx, sessionID, question, answer)
	return answer, nil
}

// Search runs a raw semantic search over the ingested chunks.
func (e *Engine) Search(ctx context.Context, query string, limit int) ([]vectordb.SearchResult, error) {
	if limit <= 0 {
		limit = e.retrievalLimit
	}
	return e.store.Search(ctx, query, limit, nil)
}

func (e *Engine) answerWithRetrieval(ctx context.Context, sessionID, question string) (string, error) {
	results, err := e.store.Search(ctx, question, e.retrievalLimit, nil)
	if err != nil {
		return "", fmt.Errorf("retrieval: %w", err)
	}
	if len(results) == 0 {
		return "I don't have any documents to answer from yet. Ingest some PDFs first.", nil
	}

	var contextParts []string
	for _, r := range results {
		contextParts = append(contextParts, fmt.Sprintf("[%s, page %d]\n%s",
			r.Document.Metadata.SourceFile, r.Document.Metadata.Page, r.Document.Content))
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: answerSystemPrompt},
	}
	messages = append(messages, e.recentHistory(ctx, sessionID)...)
	messages = append(messages, llm.Message{
		Role: llm.RoleUser,
		Content: fmt.Sprintf("Document excerpts:\n\n%s\n\nQuestion: %s",
			strings.Join(contextParts, "\n\n"), question),
	})

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{Messages: messages})
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}

	return resp.Content + sourceAttribution(results), nil
}

// sourceAttribution lists the distinct source files behind the retrieved
// chunks, in retrieval order.
func sourceAttribution(results []vectordb.SearchResult) string {
	seen := make(map[string]bool)
	var sources []string
	for _, r := range results {
		src := r.Document.Metadata.SourceFile
		if src == "" || seen[src] {
			continue
		}
		seen[src] = true
		sources = append(sources, src)
	}
	if len(sources) == 0 {
		return ""
	}
	return "\n\nSources: " + strings.Join(sources, ", ")
}

// remember persists one exchange to chat memory. Failures are logged, not
// surfaced; memory is best-effort.
func (e *Engine) remember(ctx context.Context, sessionID, question, answer string) {
	if e.database == nil || sessionID == "" {
		return
	}

	now := time.Now().UTC()
	e.database.ExecContext(ctx,
		`INSERT OR IGNORE INTO chat_sessions (id, user_id, created_at, updated_at) VALUES (?, 'docchat', ?, ?)`,
		sessionID, now, now)

	for _, m := range []struct {
		role, content string
	}{
		{"user", question},
		{"assistant", answer},
	} {
		_, err := e.database.ExecContext(ctx,
			`INSERT INTO chat_messages (id, session_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)`,
			uuid.New().String(), sessionID, m.role, m.content, now)
		if err != nil {
			log.Printf("docchat: saving chat message: %v", err)
			return
		}
	}
}

// recentHistory loads prior turns for the session as LLM messages.
func (e *Engine) recentHistory(ctx context.Context, sessionID string) []llm.Message {
	if e.database == nil || sessionID == "" {
		return nil
	}

	rows, err := e.database.QueryContext(ctx,
		`SELECT role, content FROM chat_messages WHERE session_id = ? ORDER BY created_at ASC, id ASC`,
		sessionID)
	if err != nil {
		log.Printf("docchat: loading chat history: %v", err)
		return nil
	}
	defer rows.Close()

	var messages []llm.Message
	for rows.Next() {
		var role, content string
		if err := rows.Scan(&role, &content); err != nil {
			log.Printf("docchat: scanning chat history: %v", err)
			return nil
		}
		messages = append(messages, llm.Message{Role: llm.Role(role), Content: content})
	}
	return messages
}

// ResetSession deletes a session's chat memory.
func (e *Engine) ResetSession(ctx context.Context, sessionID string) error {
	if e.database == nil {
		return nil
	}
	_, err := e.database.ExecContext(ctx, `DELETE FROM chat_messages WHERE session_id = ?`, sessionID)
	return err
}

// Persist saves the vector store under dir.
func (e *Engine) Persist(ctx context.Context, dir string) error {
	return e.store.Persist(ctx, dir)
}

// Load restores the vector store from dir.
func (e *Engine) Load(ctx context.Context, dir string) error {
	return e.store.Load(ctx, dir)
}

func contentHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}
